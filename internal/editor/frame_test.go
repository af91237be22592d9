package editor

import (
	"errors"
	"testing"
)

func TestNewFrame_Validation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		n       int
		wantErr bool
	}{
		{"1x1", 1, 1, 4, false},
		{"3x2", 3, 2, 24, false},
		{"short buffer", 2, 2, 15, true},
		{"long buffer", 2, 2, 17, true},
		{"zero width", 0, 2, 0, true},
		{"zero height", 2, 0, 0, true},
		{"negative", -1, 4, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(tt.w, tt.h, make([]byte, tt.n))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got frame %dx%d", f.Width, f.Height)
				}
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Errorf("error %v is not ErrInvalidDimensions", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Width != tt.w || f.Height != tt.h {
				t.Errorf("got %dx%d, want %dx%d", f.Width, f.Height, tt.w, tt.h)
			}
		})
	}
}

func TestNewFrame_CopiesInput(t *testing.T) {
	pix := []byte{1, 2, 3, 4}
	f, err := NewFrame(1, 1, pix)
	if err != nil {
		t.Fatal(err)
	}
	pix[0] = 99
	if f.Pix[0] != 1 {
		t.Error("frame aliases the caller's buffer")
	}
}

func TestNewBlankFrame(t *testing.T) {
	f, err := NewBlankFrame(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Pix) != 48 {
		t.Errorf("len(Pix) = %d, want 48", len(f.Pix))
	}
	if _, err := NewBlankFrame(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewBlankFrame(0,3) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestFrame_CloneIsIndependent(t *testing.T) {
	f, _ := NewFrame(1, 1, []byte{10, 20, 30, 255})
	c := f.Clone()
	if !f.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Pix[0] = 0
	if f.Pix[0] != 10 {
		t.Error("modifying clone changed original")
	}
	if f.Equal(c) {
		t.Error("Equal should report the difference")
	}
}

func TestFrame_Equal(t *testing.T) {
	a, _ := NewFrame(2, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	b, _ := NewFrame(1, 2, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if a.Equal(b) {
		t.Error("frames with different shapes should not be equal")
	}
	var nilFrame *Frame
	if a.Equal(nilFrame) {
		t.Error("frame should not equal nil")
	}
	if !nilFrame.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestFrame_At(t *testing.T) {
	f, _ := NewFrame(2, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	px, err := f.At(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if px != [4]byte{5, 6, 7, 8} {
		t.Errorf("At(1,0) = %v", px)
	}
	if _, err := f.At(2, 0); err == nil {
		t.Error("At outside bounds should fail")
	}
}

func TestFrame_Validate(t *testing.T) {
	var nilFrame *Frame
	if err := nilFrame.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil Validate = %v", err)
	}
	f := &Frame{Width: 2, Height: 2, Pix: make([]byte, 4)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("short Validate = %v", err)
	}
}
