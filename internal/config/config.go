// Package config reads the editor server's settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// Environment variable names.
const (
	EnvLogLevel     = "IMAGE_EDITOR_LOG_LEVEL"
	EnvHistoryCap   = "IMAGE_EDITOR_HISTORY_CAP"
	EnvEnforceCap   = "IMAGE_EDITOR_ENFORCE_CAP"
	EnvExportFormat = "IMAGE_EDITOR_EXPORT_FORMAT"
	EnvJPEGQuality  = "IMAGE_EDITOR_JPEG_QUALITY"
)

// Config holds server settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level

	// HistoryCap is the edit history capacity.
	HistoryCap int

	// EnforceCap trims the oldest undo entry once HistoryCap is exceeded.
	// Off by default: history then grows without limit.
	EnforceCap bool

	// ExportFormat is used when an export request names no format.
	ExportFormat string

	// JPEGQuality is used when a JPEG export request names no quality.
	JPEGQuality int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:     slog.LevelInfo,
		HistoryCap:   editor.DefaultHistoryCap,
		ExportFormat: imaging.FormatPNG,
		JPEGQuality:  imaging.DefaultJPEGQuality,
	}
}

// FromEnv reads settings from the process environment.
func FromEnv() (Config, error) {
	return Load(os.Getenv)
}

// Load reads settings through getenv. Unset or empty variables keep their
// defaults; malformed values are errors naming the variable.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvLogLevel); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	if v := getenv(EnvHistoryCap); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvHistoryCap, err)
		}
		if n <= 0 {
			return cfg, fmt.Errorf("%s: must be positive, got %d", EnvHistoryCap, n)
		}
		cfg.HistoryCap = n
	}

	if v := getenv(EnvEnforceCap); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvEnforceCap, err)
		}
		cfg.EnforceCap = b
	}

	if v := getenv(EnvExportFormat); v != "" {
		switch f := strings.ToLower(v); f {
		case imaging.FormatPNG, imaging.FormatJPEG, imaging.FormatBMP:
			cfg.ExportFormat = f
		case "jpg":
			cfg.ExportFormat = imaging.FormatJPEG
		default:
			return cfg, fmt.Errorf("%s: unsupported format %q", EnvExportFormat, v)
		}
	}

	if v := getenv(EnvJPEGQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvJPEGQuality, err)
		}
		if q < 1 || q > 100 {
			return cfg, fmt.Errorf("%s: must be 1-100, got %d", EnvJPEGQuality, q)
		}
		cfg.JPEGQuality = q
	}

	return cfg, nil
}

// SessionOptions converts the history settings into session options.
func (c Config) SessionOptions() []editor.Option {
	opts := []editor.Option{editor.WithHistoryCap(c.HistoryCap)}
	if c.EnforceCap {
		opts = append(opts, editor.WithEnforcedCap())
	}
	return opts
}
