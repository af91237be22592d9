package imaging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel color in several representations.
type ColorResult struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor reads the pixel at (x, y) of f.
//
// Returns an error if the coordinates are outside the frame. The Hex value
// excludes alpha; use RGBA.A for transparency.
func SampleColor(f *editor.Frame, x, y int) (*ColorResult, error) {
	px, err := f.At(x, y)
	if err != nil {
		return nil, err
	}
	r, g, b, a := px[0], px[1], px[2], px[3]
	c := toColorful(r, g, b)

	return &ColorResult{
		X:    x,
		Y:    y,
		Hex:  strings.ToUpper(c.Hex()),
		RGB:  RGBColor{R: r, G: g, B: b},
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL:  toHSL(c),
	}, nil
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// toHSL converts to integer HSL, truncating each component.
func toHSL(c colorful.Color) HSLColor {
	h, s, l := c.Hsl()
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}

// ColorFrequency represents a color and its share of the frame.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
	HSL        HSLColor `json:"hsl"`        // HSL of the quantized color
}

// DominantColorsResult lists the most common colors, most frequent first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in f.
//
// Colors are quantized to multiples of 16 per channel before counting, so
// near-identical shades are grouped. Ties are ordered by hex value.
func DominantColors(f *editor.Frame, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid count %d: must be positive", count)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[RGBColor]int)
	total := 0
	for i := 0; i+3 < len(f.Pix); i += editor.BytesPerPixel {
		key := RGBColor{R: f.Pix[i] / 16 * 16, G: f.Pix[i+1] / 16 * 16, B: f.Pix[i+2] / 16 * 16}
		counts[key]++
		total++
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, n := range counts {
		c := toColorful(rgb.R, rgb.G, rgb.B)
		colors = append(colors, ColorFrequency{
			Hex:        strings.ToUpper(c.Hex()),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        rgb,
			HSL:        toHSL(c),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}
