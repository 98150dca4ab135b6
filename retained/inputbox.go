package retained

import (
	"log/slog"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

// InputBoxHandler receives input box events.
type InputBoxHandler interface {
	OnTextChanged(b *InputBox)
	OnIdle(b *InputBox)
}

// InputBoxFuncs adapts plain functions to an InputBoxHandler. Nil fields are skipped.
type InputBoxFuncs struct {
	TextChanged func(*InputBox)
	Idle        func(*InputBox)
}

func (f InputBoxFuncs) OnTextChanged(b *InputBox) {
	if f.TextChanged != nil {
		f.TextChanged(b)
	}
}

func (f InputBoxFuncs) OnIdle(b *InputBox) {
	if f.Idle != nil {
		f.Idle(b)
	}
}

// InputBox holds editable text. A click inside focuses it (sharing the
// UI-wide click debounce); a press outside blurs it. At most one input box
// is focused per UI, and only the focused box receives typed text.
type InputBox struct {
	Name      string
	Container string
	Bounds    shape.Rect
	Text      string
	Style     string

	handler InputBoxHandler
}

// AddInputBox registers an input box under container. bounds are relative
// to the container origin. A duplicate name or an unknown container is
// logged and ignored.
func (u *UI) AddInputBox(container, name string, bounds shape.Rect, text string, h InputBoxHandler, style string) {
	if _, exists := u.inputBoxes.get(name); exists {
		skip("input box already registered", slog.String("name", name))
		return
	}
	c, ok := u.resolveContainer(container, "inputBox", name)
	if !ok {
		return
	}
	if style == "" {
		style = StyleDefaultInputBox
	}
	if h == nil {
		h = InputBoxFuncs{}
	}
	u.inputBoxes.add(name, &InputBox{
		Name:      name,
		Container: container,
		Bounds:    bounds.Offset(c.Bounds.X, c.Bounds.Y),
		Text:      text,
		Style:     style,
		handler:   h,
	})
}

// InputBox returns the named input box, or nil.
func (u *UI) InputBox(name string) *InputBox {
	b, _ := u.inputBoxes.get(name)
	return b
}

// Focused returns the focused input box, or nil.
func (u *UI) Focused() *InputBox {
	if u.focused == "" {
		return nil
	}
	return u.InputBox(u.focused)
}

func (u *UI) updateInputBox(b *InputBox, st input.State, f *frame) {
	if !u.IsVisible(b.Container) {
		if u.focused == b.Name {
			u.focused = ""
		}
		return
	}

	inside := b.Bounds.Contains(st.X, st.Y)
	switch {
	case inside && st.Primary && u.focused != b.Name && u.takeClick(f):
		u.focused = b.Name
	case !inside && st.Primary && u.focused == b.Name:
		u.focused = ""
	}

	if u.focused == b.Name {
		if applyTyping(b, st) {
			b.handler.OnTextChanged(b)
		}
		return
	}
	if !inside {
		b.handler.OnIdle(b)
	}
}

// applyTyping applies backspaces then typed runes and reports whether the
// text changed.
func applyTyping(b *InputBox, st input.State) bool {
	if st.Backspaces == 0 && len(st.Text) == 0 {
		return false
	}
	before := b.Text
	runes := []rune(b.Text)
	n := min(st.Backspaces, len(runes))
	runes = append(runes[:len(runes)-n], st.Text...)
	b.Text = string(runes)
	return b.Text != before
}

func (u *UI) drawInputBox(dst []shape.DrawCommand, b *InputBox) []shape.DrawCommand {
	return u.styles.appendResolved(dst, b.Style, b.Bounds, b.Bounds.Color)
}
