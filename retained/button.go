package retained

import (
	"log/slog"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

// ButtonHandler receives a button's per-frame pointer events.
// Handlers may mutate the button (for example its fill color); the change
// shows on the next draw.
type ButtonHandler interface {
	OnClick(b *Button)
	OnHover(b *Button)
	OnIdle(b *Button)
}

// ButtonFuncs adapts plain functions to a ButtonHandler. Nil fields are skipped.
type ButtonFuncs struct {
	Click func(*Button)
	Hover func(*Button)
	Idle  func(*Button)
}

func (f ButtonFuncs) OnClick(b *Button) {
	if f.Click != nil {
		f.Click(b)
	}
}

func (f ButtonFuncs) OnHover(b *Button) {
	if f.Hover != nil {
		f.Hover(b)
	}
}

func (f ButtonFuncs) OnIdle(b *Button) {
	if f.Idle != nil {
		f.Idle(b)
	}
}

// Button is a clickable rectangle.
type Button struct {
	Name      string
	Container string
	Bounds    shape.Rect // Absolute screen coordinates; Color is the fill
	Style     string

	handler ButtonHandler
}

// AddButton registers a button under container. bounds are relative to the
// container origin and are converted to screen coordinates here, once.
// A duplicate name or an unknown container is logged and ignored.
func (u *UI) AddButton(container, name string, bounds shape.Rect, h ButtonHandler, style string) {
	if _, exists := u.buttons.get(name); exists {
		skip("button already registered", slog.String("name", name))
		return
	}
	c, ok := u.resolveContainer(container, "button", name)
	if !ok {
		return
	}
	if style == "" {
		style = StyleDefaultButton
	}
	if h == nil {
		h = ButtonFuncs{}
	}
	u.buttons.add(name, &Button{
		Name:      name,
		Container: container,
		Bounds:    bounds.Offset(c.Bounds.X, c.Bounds.Y),
		Style:     style,
		handler:   h,
	})
}

// Button returns the named button, or nil.
func (u *UI) Button(name string) *Button {
	b, _ := u.buttons.get(name)
	return b
}

func (u *UI) updateButton(b *Button, st input.State, f *frame) {
	if !u.IsVisible(b.Container) {
		return
	}
	if !b.Bounds.Contains(st.X, st.Y) {
		b.handler.OnIdle(b)
		return
	}
	if st.Primary && u.takeClick(f) {
		b.handler.OnClick(b)
		return
	}
	b.handler.OnHover(b)
}

func (u *UI) drawButton(dst []shape.DrawCommand, b *Button) []shape.DrawCommand {
	return u.styles.appendResolved(dst, b.Style, b.Bounds, b.Bounds.Color)
}
