package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
)

// Export format names.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
)

// DefaultJPEGQuality is used when ExportOptions.Quality is zero.
const DefaultJPEGQuality = 90

// ExportOptions controls how a frame is encoded.
type ExportOptions struct {
	// Format is "png", "jpeg" (or "jpg") or "bmp". Empty means png.
	Format string

	// Quality is the JPEG quality, 1-100. Zero means DefaultJPEGQuality.
	// Ignored for other formats.
	Quality int

	// Scale resizes the output (Lanczos). Zero or 1 keeps the frame size.
	Scale float64
}

// ExportResult holds an encoded frame.
type ExportResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int    `json:"size_bytes"`
	ImageBase64 string `json:"image_base64,omitempty"`
	DataURL     string `json:"data_url,omitempty"`
	Path        string `json:"path,omitempty"`
}

// FrameImage wraps a copy of f as an *image.NRGBA.
func FrameImage(f *editor.Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	return img
}

// Export encodes f and returns it as base64 and as a data URL.
//
// The frame is only read; Export has no way to write back to a session.
func Export(f *editor.Frame, opts ExportOptions) (*ExportResult, error) {
	data, res, err := encode(f, opts)
	if err != nil {
		return nil, err
	}
	res.ImageBase64 = base64.StdEncoding.EncodeToString(data)
	res.DataURL = "data:" + res.MimeType + ";base64," + res.ImageBase64
	return res, nil
}

// SaveFile encodes f and writes it to path. When opts.Format is empty the
// format is taken from the path's extension.
func SaveFile(f *editor.Frame, path string, opts ExportOptions) (*ExportResult, error) {
	if opts.Format == "" {
		opts.Format = formatFromExt(path)
	}
	data, res, err := encode(f, opts)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}
	res.Path = path
	return res, nil
}

func encode(f *editor.Frame, opts ExportOptions) ([]byte, *ExportResult, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	format, mime, enc, err := encoderFor(opts.Format, opts.Quality)
	if err != nil {
		return nil, nil, err
	}

	var img image.Image = FrameImage(f)
	if opts.Scale < 0 {
		return nil, nil, fmt.Errorf("invalid scale %.2f: must be positive", opts.Scale)
	}
	if opts.Scale != 0 && opts.Scale != 1.0 {
		w := max(1, int(float64(f.Width)*opts.Scale))
		h := max(1, int(float64(f.Height)*opts.Scale))
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return nil, nil, fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	b := img.Bounds()
	return buf.Bytes(), &ExportResult{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    format,
		MimeType:  mime,
		SizeBytes: buf.Len(),
	}, nil
}

func encoderFor(format string, quality int) (string, string, imgio.Encoder, error) {
	switch strings.ToLower(format) {
	case "", FormatPNG:
		return FormatPNG, "image/png", imgio.PNGEncoder(), nil
	case FormatJPEG, "jpg":
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		if quality < 1 || quality > 100 {
			return "", "", nil, fmt.Errorf("invalid JPEG quality %d: must be 1-100", quality)
		}
		return FormatJPEG, "image/jpeg", imgio.JPEGEncoder(quality), nil
	case FormatBMP:
		return FormatBMP, "image/bmp", imgio.BMPEncoder(), nil
	default:
		return "", "", nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".bmp":
		return FormatBMP
	default:
		return FormatPNG
	}
}
