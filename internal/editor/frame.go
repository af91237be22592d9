package editor

import (
	"bytes"
	"fmt"
)

// BytesPerPixel is the stride of one RGBA pixel in a Frame buffer.
const BytesPerPixel = 4

// Frame is an RGBA raster snapshot.
//
// Pix holds Width*Height pixels in row-major order, each stored as
// (R, G, B, A) bytes, non-premultiplied. A Frame's size never changes;
// producing a different size means producing a new Frame.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame creates a frame from a copy of pix.
//
// Returns ErrInvalidDimensions when width or height is not positive or when
// len(pix) != width*height*4.
func NewFrame(width, height int, pix []byte) (*Frame, error) {
	if err := checkDimensions(width, height, len(pix)); err != nil {
		return nil, err
	}
	buf := make([]byte, len(pix))
	copy(buf, pix)
	return &Frame{Width: width, Height: height, Pix: buf}, nil
}

// NewBlankFrame creates a fully transparent black frame.
func NewBlankFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

func checkDimensions(width, height, n int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := width * height * BytesPerPixel; n != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrInvalidDimensions, width, height, want, n)
	}
	return nil
}

// Validate reports whether the frame's buffer matches its dimensions.
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidDimensions)
	}
	return checkDimensions(f.Width, f.Height, len(f.Pix))
}

// Clone returns a deep copy. The copy shares no memory with f.
func (f *Frame) Clone() *Frame {
	buf := make([]byte, len(f.Pix))
	copy(buf, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: buf}
}

// Equal reports whether both frames have the same size and identical bytes.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Width == other.Width && f.Height == other.Height && bytes.Equal(f.Pix, other.Pix)
}

// SameSize reports whether other has f's width and height.
func (f *Frame) SameSize(other *Frame) bool {
	return f.Width == other.Width && f.Height == other.Height
}

// At returns the R, G, B, A bytes of the pixel at (x, y).
func (f *Frame) At(x, y int) ([4]byte, error) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return [4]byte{}, fmt.Errorf("coordinates (%d,%d) outside frame bounds %dx%d", x, y, f.Width, f.Height)
	}
	i := (y*f.Width + x) * BytesPerPixel
	return [4]byte{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}, nil
}
