// Package canvas provides an in-memory display surface for the editor.
//
// Surface is the authoritative raster an editor.Session reads and writes.
// Pixels are swapped in whole under a lock, so readers on other goroutines
// (an exporter, a status probe) always see a complete frame.
package canvas

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
)

// ErrInvalidSize reports a non-positive surface size or a frame whose size
// does not match the surface.
var ErrInvalidSize = errors.New("invalid surface size")

// Surface is an RGBA pixel surface implementing editor.Renderer.
//
// A new Surface has no size; Pixels and SetPixels fail with
// editor.ErrSurfaceUnavailable until Resize is called.
type Surface struct {
	mu       sync.RWMutex
	width    int
	height   int
	pix      []byte
	released bool
}

// New creates an unsized surface.
func New() *Surface {
	return &Surface{}
}

// Resize sets the surface size and clears it to transparent black.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	pix := make([]byte, width*height*editor.BytesPerPixel)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return editor.ErrSurfaceUnavailable
	}
	s.width, s.height, s.pix = width, height, pix
	return nil
}

// Size returns the current width and height. Both are zero before Resize.
func (s *Surface) Size() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// Pixels returns a copy of the surface contents.
func (s *Surface) Pixels() (*editor.Frame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.availableLocked(); err != nil {
		return nil, err
	}
	return editor.NewFrame(s.width, s.height, s.pix)
}

// SetPixels replaces the surface contents with a copy of f.
// f must have the surface's size.
func (s *Surface) SetPixels(f *editor.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.availableLocked(); err != nil {
		return err
	}
	if f.Width != s.width || f.Height != s.height {
		return fmt.Errorf("%w: frame is %dx%d, surface is %dx%d",
			ErrInvalidSize, f.Width, f.Height, s.width, s.height)
	}
	s.pix = pix
	return nil
}

// Draw writes one pixel directly to the surface. Writes made this way are
// invisible to any session's history.
func (s *Surface) Draw(x, y int, rgba [4]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.availableLocked(); err != nil {
		return err
	}
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return fmt.Errorf("coordinates (%d,%d) outside surface bounds %dx%d", x, y, s.width, s.height)
	}
	i := (y*s.width + x) * editor.BytesPerPixel
	copy(s.pix[i:i+editor.BytesPerPixel], rgba[:])
	return nil
}

// Release detaches the surface. Every later call reports
// editor.ErrSurfaceUnavailable.
func (s *Surface) Release() {
	s.mu.Lock()
	s.released = true
	s.pix = nil
	s.width, s.height = 0, 0
	s.mu.Unlock()
}

func (s *Surface) availableLocked() error {
	if s.released {
		return fmt.Errorf("%w: surface released", editor.ErrSurfaceUnavailable)
	}
	if s.pix == nil {
		return fmt.Errorf("%w: surface has no size", editor.ErrSurfaceUnavailable)
	}
	return nil
}
