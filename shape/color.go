package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// ErrInvalidColor is returned by ParseColor for malformed input.
var ErrInvalidColor = errors.New("invalid color")

// Color is a straight (non-premultiplied) RGBA color.
// Components are conventionally in [0,1] but nothing enforces it;
// out-of-range values are only clamped when converted to pixels.
type Color struct {
	R, G, B, A float32
}

// RGBA returns a Color from its four components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Transparent is the zero color.
var Transparent = Color{}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R) * alpha * 0xffff)
	g = uint32(clamp01(c.G) * alpha * 0xffff)
	b = uint32(clamp01(c.B) * alpha * 0xffff)
	a = uint32(alpha * 0xffff)
	return
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// HSV converts hue (0..1, wrapping), saturation and value to a Color.
func HSV(h, s, v, a float32) Color {
	h = h - math32.Floor(h)
	i := math32.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return Color{v, t, p, a}
	case 1:
		return Color{q, v, p, a}
	case 2:
		return Color{p, v, t, a}
	case 3:
		return Color{p, q, v, a}
	case 4:
		return Color{t, p, v, a}
	default:
		return Color{v, p, q, a}
	}
}

// ParseColor parses #RGB, #RRGGBB and #RRGGBBAA hex colors.
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	var r, g, b, a uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level color tables.
func MustParseColor(value string) Color {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

func to8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
