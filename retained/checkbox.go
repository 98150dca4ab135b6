package retained

import (
	"log/slog"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

// CheckboxHandler receives checkbox events.
type CheckboxHandler interface {
	OnCheckedChanged(c *Checkbox)
	OnIdle(c *Checkbox)
}

// CheckboxFuncs adapts plain functions to a CheckboxHandler. Nil fields are skipped.
type CheckboxFuncs struct {
	CheckedChanged func(*Checkbox)
	Idle           func(*Checkbox)
}

func (f CheckboxFuncs) OnCheckedChanged(c *Checkbox) {
	if f.CheckedChanged != nil {
		f.CheckedChanged(c)
	}
}

func (f CheckboxFuncs) OnIdle(c *Checkbox) {
	if f.Idle != nil {
		f.Idle(c)
	}
}

// checkInset is the gap between the box edge and the check mark.
const checkInset = 3

// Checkbox is a box toggled by a click. Clicks share the UI-wide debounce.
type Checkbox struct {
	Name       string
	Container  string
	Bounds     shape.Rect
	Checked    bool
	CheckColor shape.Color
	Style      string // Box style
	CheckStyle string

	handler CheckboxHandler
}

// CheckboxConfig holds the optional checkbox attributes.
type CheckboxConfig struct {
	Style      string      // Defaults to StyleDefaultButton
	CheckStyle string      // Defaults to StyleDefaultCheck
	CheckColor shape.Color // Defaults to opaque white
}

// AddCheckbox registers a checkbox under container. bounds are relative to
// the container origin. A duplicate name or an unknown container is logged
// and ignored.
func (u *UI) AddCheckbox(container, name string, bounds shape.Rect, checked bool, h CheckboxHandler, cfg CheckboxConfig) {
	if _, exists := u.checkboxes.get(name); exists {
		skip("checkbox already registered", slog.String("name", name))
		return
	}
	c, ok := u.resolveContainer(container, "checkbox", name)
	if !ok {
		return
	}
	if cfg.Style == "" {
		cfg.Style = StyleDefaultButton
	}
	if cfg.CheckStyle == "" {
		cfg.CheckStyle = StyleDefaultCheck
	}
	if cfg.CheckColor == (shape.Color{}) {
		cfg.CheckColor = shape.RGBA(1, 1, 1, 1)
	}
	if h == nil {
		h = CheckboxFuncs{}
	}
	u.checkboxes.add(name, &Checkbox{
		Name:       name,
		Container:  container,
		Bounds:     bounds.Offset(c.Bounds.X, c.Bounds.Y),
		Checked:    checked,
		CheckColor: cfg.CheckColor,
		Style:      cfg.Style,
		CheckStyle: cfg.CheckStyle,
		handler:    h,
	})
}

// Checkbox returns the named checkbox, or nil.
func (u *UI) Checkbox(name string) *Checkbox {
	c, _ := u.checkboxes.get(name)
	return c
}

func (u *UI) updateCheckbox(c *Checkbox, st input.State, f *frame) {
	if !u.IsVisible(c.Container) {
		return
	}
	if !c.Bounds.Contains(st.X, st.Y) {
		c.handler.OnIdle(c)
		return
	}
	if st.Primary && u.takeClick(f) {
		c.Checked = !c.Checked
		c.handler.OnCheckedChanged(c)
	}
}

func (u *UI) drawCheckbox(dst []shape.DrawCommand, c *Checkbox) []shape.DrawCommand {
	dst = u.styles.appendResolved(dst, c.Style, c.Bounds, c.Bounds.Color)
	if c.Checked {
		mark := c.Bounds.Inset(checkInset)
		mark.Rounding = max(0, c.Bounds.Rounding-checkInset)
		dst = u.styles.appendResolved(dst, c.CheckStyle, mark, c.CheckColor)
	}
	return dst
}
