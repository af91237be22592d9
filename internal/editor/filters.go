package editor

import "fmt"

// Filter rewrites an RGBA pixel buffer in place, 4 bytes at a time.
//
// A filter must not change the buffer length, read or write outside it,
// or keep a reference to it after returning.
type Filter func(pix []byte)

// ITU-R BT.709 luma weights.
const (
	lumaR float32 = 0.2126
	lumaG float32 = 0.7152
	lumaB float32 = 0.0722
)

// Grayscale replaces R, G and B with the BT.709 luma of the pixel,
// truncated to 8 bits. Alpha is left as is.
func Grayscale(pix []byte) {
	for i := 0; i+3 < len(pix); i += BytesPerPixel {
		// Each product is converted explicitly so it is rounded on its own
		// and never fused into a multiply-add.
		y := float32(lumaR*float32(pix[i])) + float32(lumaG*float32(pix[i+1])) + float32(lumaB*float32(pix[i+2]))
		g := uint8(y)
		pix[i] = g
		pix[i+1] = g
		pix[i+2] = g
	}
}

// Invert replaces each of R, G and B with 255 minus its value.
func Invert(pix []byte) {
	for i := 0; i+3 < len(pix); i += BytesPerPixel {
		pix[i] = 255 - pix[i]
		pix[i+1] = 255 - pix[i+1]
		pix[i+2] = 255 - pix[i+2]
	}
}

// Brightness returns a filter that adds delta to R, G and B, clamping to
// [0, 255]. A zero delta leaves the buffer unchanged.
func Brightness(delta int) Filter {
	return func(pix []byte) {
		for i := 0; i+3 < len(pix); i += BytesPerPixel {
			pix[i] = clampChannel(int(pix[i]) + delta)
			pix[i+1] = clampChannel(int(pix[i+1]) + delta)
			pix[i+2] = clampChannel(int(pix[i+2]) + delta)
		}
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Filter names accepted by FilterByName.
const (
	FilterGrayscale  = "grayscale"
	FilterInvert     = "invert"
	FilterBrightness = "brightness"
)

// FilterNames lists the built-in filters in display order.
func FilterNames() []string {
	return []string{FilterGrayscale, FilterInvert, FilterBrightness}
}

// FilterByName maps a control name to its filter. delta is used only by
// brightness.
func FilterByName(name string, delta int) (Filter, error) {
	switch name {
	case FilterGrayscale:
		return Grayscale, nil
	case FilterInvert:
		return Invert, nil
	case FilterBrightness:
		return Brightness(delta), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}
