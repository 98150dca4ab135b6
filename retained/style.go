package retained

import (
	"log/slog"

	"github.com/agiangrant/overlay/shape"
)

// Built-in style names.
const (
	StyleDefaultContainer   = "defaultContainer"
	StyleDefaultButton      = "defaultButton"
	StyleDefaultSlider      = "defaultSlider"
	StyleDefaultCheck       = "defaultCheck"
	StyleDefaultInputBox    = "defaultInputBox"
	StyleDefaultColorPicker = "defaultColorPicker"
)

// StyleFunc maps element bounds and an accent color to draw commands.
// Styles must be pure: they are re-invoked for every element on every frame.
type StyleFunc func(bounds shape.Rect, accent shape.Color) []shape.DrawCommand

// StyleRegistry maps style names to generators. Styles are append-only.
type StyleRegistry struct {
	styles map[string]StyleFunc
}

// NewStyleRegistry returns a registry holding the built-in styles.
func NewStyleRegistry() *StyleRegistry {
	r := &StyleRegistry{styles: make(map[string]StyleFunc)}
	r.Register(StyleDefaultContainer, fillStyle)
	r.Register(StyleDefaultButton, fillStyle)
	r.Register(StyleDefaultSlider, sliderStyle)
	r.Register(StyleDefaultCheck, fillStyle)
	r.Register(StyleDefaultInputBox, inputBoxStyle)
	r.Register(StyleDefaultColorPicker, colorPickerStyle)
	return r
}

// Register adds a style. An existing name is logged and left unchanged.
func (r *StyleRegistry) Register(name string, fn StyleFunc) {
	if _, exists := r.styles[name]; exists {
		skip("style already registered", slog.String("style", name))
		return
	}
	if fn == nil {
		skip("nil style generator", slog.String("style", name))
		return
	}
	r.styles[name] = fn
}

// Has reports whether a style is registered.
func (r *StyleRegistry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Resolve returns the commands the named style produces for bounds and color.
// An unknown name is logged and produces nothing.
func (r *StyleRegistry) Resolve(name string, bounds shape.Rect, color shape.Color) []shape.DrawCommand {
	return r.appendResolved(nil, name, bounds, color)
}

func (r *StyleRegistry) appendResolved(dst []shape.DrawCommand, name string, bounds shape.Rect, color shape.Color) []shape.DrawCommand {
	fn, ok := r.styles[name]
	if !ok {
		skip("style not found", slog.String("style", name))
		return dst
	}
	return append(dst, fn(bounds, color)...)
}

// fillStyle is a single filled rectangle matching the bounds and rounding.
func fillStyle(b shape.Rect, accent shape.Color) []shape.DrawCommand {
	return []shape.DrawCommand{
		shape.NewRectangle(b.X, b.Y, b.Width, b.Height, b.Rounding, accent),
	}
}

// sliderStyle draws a groove one third of the track height, vertically centered.
func sliderStyle(b shape.Rect, accent shape.Color) []shape.DrawCommand {
	h := b.Height / 3
	return []shape.DrawCommand{
		shape.NewRectangle(b.X, b.Y+(b.Height-h)/2, b.Width, h, min(b.Rounding, h/2), accent),
	}
}

// inputBoxStyle is a filled box with a darker one-pixel underline.
func inputBoxStyle(b shape.Rect, accent shape.Color) []shape.DrawCommand {
	line := shape.RGBA(accent.R*0.6, accent.G*0.6, accent.B*0.6, accent.A)
	return []shape.DrawCommand{
		shape.NewRectangle(b.X, b.Y, b.Width, b.Height, b.Rounding, accent),
		shape.NewRectangle(b.X, b.Y+b.Height-1, b.Width, 1, 0, line),
	}
}

// colorPickerSegments is the number of hue bands drawn by the default picker.
const colorPickerSegments = 12

// colorPickerStyle draws a hue spectrum over the top three quarters of the
// bounds and a swatch of the accent (selected) color below it.
func colorPickerStyle(b shape.Rect, accent shape.Color) []shape.DrawCommand {
	stripH := b.Height * 0.75
	segW := b.Width / colorPickerSegments

	cmds := make([]shape.DrawCommand, 0, colorPickerSegments+1)
	for i := range colorPickerSegments {
		hue := (float32(i) + 0.5) / colorPickerSegments
		cmds = append(cmds, shape.NewRectangle(b.X+float32(i)*segW, b.Y, segW, stripH, 0, shape.HSV(hue, 1, 1, 1)))
	}
	cmds = append(cmds, shape.NewRectangle(b.X, b.Y+stripH, b.Width, b.Height-stripH, 0, accent))
	return cmds
}
