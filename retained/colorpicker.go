package retained

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

// ColorPickerHandler receives color picker events.
type ColorPickerHandler interface {
	OnColorChanged(p *ColorPicker)
	OnIdle(p *ColorPicker)
}

// ColorPickerFuncs adapts plain functions to a ColorPickerHandler. Nil fields are skipped.
type ColorPickerFuncs struct {
	ColorChanged func(*ColorPicker)
	Idle         func(*ColorPicker)
}

func (f ColorPickerFuncs) OnColorChanged(p *ColorPicker) {
	if f.ColorChanged != nil {
		f.ColorChanged(p)
	}
}

func (f ColorPickerFuncs) OnIdle(p *ColorPicker) {
	if f.Idle != nil {
		f.Idle(p)
	}
}

// ColorPicker is a horizontal hue strip. Holding the primary button over it
// writes a fully saturated color for the hue under the pointer through the
// caller-owned color pointer, keeping its alpha.
type ColorPicker struct {
	Name      string
	Container string
	Bounds    shape.Rect
	Style     string

	selected *shape.Color
	handler  ColorPickerHandler
}

// AddColorPicker registers a color picker under container. bounds are
// relative to the container origin. selected may be nil, in which case the
// picker owns its color, starting opaque white.
// A duplicate name or an unknown container is logged and ignored.
func (u *UI) AddColorPicker(container, name string, bounds shape.Rect, selected *shape.Color, h ColorPickerHandler, style string) {
	if _, exists := u.colorPickers.get(name); exists {
		skip("color picker already registered", slog.String("name", name))
		return
	}
	c, ok := u.resolveContainer(container, "colorPicker", name)
	if !ok {
		return
	}
	if style == "" {
		style = StyleDefaultColorPicker
	}
	if selected == nil {
		white := shape.RGBA(1, 1, 1, 1)
		selected = &white
	}
	if h == nil {
		h = ColorPickerFuncs{}
	}
	u.colorPickers.add(name, &ColorPicker{
		Name:      name,
		Container: container,
		Bounds:    bounds.Offset(c.Bounds.X, c.Bounds.Y),
		Style:     style,
		selected:  selected,
		handler:   h,
	})
}

// ColorPicker returns the named color picker, or nil.
func (u *UI) ColorPicker(name string) *ColorPicker {
	p, _ := u.colorPickers.get(name)
	return p
}

// Selected returns the current color.
func (p *ColorPicker) Selected() shape.Color {
	return *p.selected
}

// hueAt maps a screen x coordinate to a hue in [0,1].
func (p *ColorPicker) hueAt(x float32) float32 {
	if p.Bounds.Width <= 0 {
		return 0
	}
	return math32.Max(0, math32.Min(1, (x-p.Bounds.X)/p.Bounds.Width))
}

func (u *UI) updateColorPicker(p *ColorPicker, st input.State) {
	if !u.IsVisible(p.Container) {
		return
	}
	if !p.Bounds.Contains(st.X, st.Y) {
		p.handler.OnIdle(p)
		return
	}
	if !st.Primary {
		return
	}
	next := shape.HSV(p.hueAt(st.X), 1, 1, p.selected.A)
	if next != *p.selected {
		*p.selected = next
		p.handler.OnColorChanged(p)
	}
}

func (u *UI) drawColorPicker(dst []shape.DrawCommand, p *ColorPicker) []shape.DrawCommand {
	return u.styles.appendResolved(dst, p.Style, p.Bounds, *p.selected)
}
