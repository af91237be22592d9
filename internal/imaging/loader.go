package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/image-editor-mcp/internal/editor"
)

// ErrNoSource reports a Source with neither a path nor inline data.
var ErrNoSource = errors.New("no image source given")

// Source names where an image comes from. Exactly one field should be set.
type Source struct {
	// Path is a file on disk.
	Path string

	// Data is either a base64 payload or a "data:<mime>;base64,<payload>" URL.
	Data string
}

// SourceInfo describes a decoded image.
type SourceInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that recognized the data: "png", "jpeg", "gif",
	// "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// SizeBytes is the length of the encoded input.
	SizeBytes int `json:"size_bytes"`

	// Origin is "file" or "data".
	Origin string `json:"origin"`
}

type cachedFrame struct {
	frame *editor.Frame
	info  SourceInfo
}

// FrameCache keeps decoded frames keyed by file path so that reloading the
// same file skips disk I/O and decoding.
//
// FrameCache is safe for concurrent use. Entries stay until Evict or Clear.
// Callers always receive clones, so editing a loaded frame never changes
// the cached copy.
type FrameCache struct {
	mu     sync.RWMutex
	frames map[string]cachedFrame
}

// NewFrameCache creates an empty cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{
		frames: make(map[string]cachedFrame),
	}
}

func (c *FrameCache) get(path string) (*editor.Frame, *SourceInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.frames[path]
	if !ok {
		return nil, nil, false
	}
	info := e.info
	return e.frame.Clone(), &info, true
}

func (c *FrameCache) put(path string, f *editor.Frame, info SourceInfo) {
	c.mu.Lock()
	c.frames[path] = cachedFrame{frame: f.Clone(), info: info}
	c.mu.Unlock()
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.frames)
}

// Evict removes one path from the cache. Unknown paths are ignored.
func (c *FrameCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Clear removes every cached frame.
func (c *FrameCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]cachedFrame)
	c.mu.Unlock()
}

// Loader decodes image sources into editor frames.
type Loader struct {
	cache *FrameCache
}

// NewLoader creates a loader. cache may be nil to disable caching of files.
func NewLoader(cache *FrameCache) *Loader {
	return &Loader{cache: cache}
}

// Load decodes src into a frame.
//
// # Errors
//
//   - ErrNoSource if src has neither Path nor Data
//   - file open/read errors for Path
//   - base64 or data URL syntax errors for Data
//   - decode errors for unrecognized or corrupt images
func (l *Loader) Load(src Source) (*editor.Frame, *SourceInfo, error) {
	switch {
	case src.Path != "":
		return l.LoadFile(src.Path)
	case src.Data != "":
		data, err := DecodeInlineData(src.Data)
		if err != nil {
			return nil, nil, err
		}
		f, info, err := Decode(data)
		if err != nil {
			return nil, nil, err
		}
		info.Origin = "data"
		return f, info, nil
	default:
		return nil, nil, ErrNoSource
	}
}

// LoadFile decodes the image at path, using the cache when one is set.
func (l *Loader) LoadFile(path string) (*editor.Frame, *SourceInfo, error) {
	if l.cache != nil {
		if f, info, ok := l.cache.get(path); ok {
			return f, info, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	f, info, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	info.Origin = "file"

	if l.cache != nil {
		l.cache.put(path, f, *info)
	}
	return f, info, nil
}

// Decode decodes an encoded image into a frame, applying EXIF orientation
// and normalizing the pixels to non-premultiplied RGBA.
func Decode(data []byte) (*editor.Frame, *SourceInfo, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	f, err := FrameFromImage(img)
	if err != nil {
		return nil, nil, err
	}
	return f, &SourceInfo{
		Width:     f.Width,
		Height:    f.Height,
		Format:    format,
		SizeBytes: len(data),
	}, nil
}

// FrameFromImage copies any image into a new frame anchored at (0,0).
func FrameFromImage(img image.Image) (*editor.Frame, error) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	f := &editor.Frame{Width: b.Dx(), Height: b.Dy(), Pix: nrgba.Pix}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("decoded image unusable: %w", err)
	}
	return f, nil
}

// DecodeInlineData returns the bytes of a base64 payload or of a base64
// data URL such as "data:image/png;base64,iVBOR...".
func DecodeInlineData(s string) ([]byte, error) {
	payload := strings.TrimSpace(s)
	if strings.HasPrefix(payload, "data:") {
		meta, rest, ok := strings.Cut(payload[len("data:"):], ",")
		if !ok {
			return nil, fmt.Errorf("malformed data URL: missing comma")
		}
		if !strings.HasSuffix(meta, ";base64") {
			return nil, fmt.Errorf("unsupported data URL encoding %q: only base64 is accepted", meta)
		}
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image data: %w", err)
	}
	return data, nil
}
