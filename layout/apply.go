package layout

import (
	"errors"
	"fmt"
	"time"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/render"
	"github.com/agiangrant/overlay/retained"
	"github.com/agiangrant/overlay/shape"
)

// Bindings exposes the values a layout created so the host can read them.
type Bindings struct {
	Values map[string]*float32     // Slider name → value
	Colors map[string]*shape.Color // Color picker name → selection
}

// Apply registers everything in doc on ui. Raw elements go to batches,
// which may be nil when doc has none.
//
// The whole document is validated first; on error nothing is registered.
// Registration itself follows the UI's policies, so duplicate names and
// unknown containers are logged and skipped.
func Apply(doc *Document, ui *retained.UI, batches *render.Batches, actions *Actions) (*Bindings, error) {
	if actions == nil {
		actions = NewActions(ui, nil)
	}
	b := &Bindings{
		Values: make(map[string]*float32),
		Colors: make(map[string]*shape.Color),
	}
	p := &planner{actions: actions}

	for _, c := range doc.Containers {
		p.container(ui, c)
	}
	for _, s := range doc.Buttons {
		p.button(ui, s)
	}
	for _, s := range doc.Sliders {
		p.slider(ui, b, s)
	}
	for _, s := range doc.Checkboxes {
		p.checkbox(ui, s)
	}
	for _, s := range doc.ColorPickers {
		p.colorPicker(ui, b, s)
	}
	for _, s := range doc.InputBoxes {
		p.inputBox(ui, s)
	}
	for _, s := range doc.Hotkeys {
		p.hotkey(ui, s)
	}
	if len(doc.Elements) > 0 {
		if batches == nil {
			p.fail("elements", "", errors.New("layout has elements but no batches to draw them"))
		}
		for _, e := range doc.Elements {
			p.element(batches, e)
		}
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	for _, step := range p.steps {
		step()
	}
	return b, nil
}

// planner validates specs and queues their registration.
type planner struct {
	actions *Actions
	steps   []func()
	errs    []error
}

func (p *planner) fail(kind, name string, err error) {
	if name == "" {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", kind, err))
		return
	}
	p.errs = append(p.errs, fmt.Errorf("%s %q: %w", kind, name, err))
}

func (p *planner) rect(kind, name string, r RectSpec) shape.Rect {
	out := shape.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H, Rounding: r.Rounding}
	if r.Color == "" {
		return out
	}
	c, err := shape.ParseColor(r.Color)
	if err != nil {
		p.fail(kind, name, err)
	}
	out.Color = c
	return out
}

func (p *planner) color(kind, name, hex string, fallback shape.Color) shape.Color {
	if hex == "" {
		return fallback
	}
	c, err := shape.ParseColor(hex)
	if err != nil {
		p.fail(kind, name, err)
		return fallback
	}
	return c
}

func (p *planner) action(kind, name, action string) func() {
	fn, err := p.actions.Resolve(action)
	if err != nil {
		p.fail(kind, name, err)
	}
	return fn
}

func (p *planner) container(ui *retained.UI, s ContainerSpec) {
	bounds := p.rect("container", s.Name, s.Bounds)
	cfg := retained.ContainerConfig{
		Style:     s.Style,
		PaddingX:  s.PaddingX,
		PaddingY:  s.PaddingY,
		MaxWidth:  s.MaxWidth,
		MaxHeight: s.MaxHeight,
	}
	p.steps = append(p.steps, func() {
		fresh := ui.Container(s.Name) == nil
		ui.AddContainer(s.Name, bounds, cfg)
		if fresh && s.Visible {
			ui.ToggleVisibility(s.Name)
		}
	})
}

func (p *planner) button(ui *retained.UI, s ButtonSpec) {
	bounds := p.rect("button", s.Name, s.Bounds)
	click := p.action("button", s.Name, s.OnClick)

	h := retained.ButtonFuncs{}
	if click != nil {
		h.Click = func(*retained.Button) { click() }
	}
	if s.HoverColor != "" {
		hover := p.color("button", s.Name, s.HoverColor, bounds.Color)
		base := bounds.Color
		h.Hover = func(b *retained.Button) { b.Bounds.Color = hover }
		h.Idle = func(b *retained.Button) { b.Bounds.Color = base }
	}
	p.steps = append(p.steps, func() {
		ui.AddButton(s.Container, s.Name, bounds, h, s.Style)
	})
}

func (p *planner) slider(ui *retained.UI, b *Bindings, s SliderSpec) {
	track := p.rect("slider", s.Name, s.Track)
	thumb := p.rect("slider", s.Name, s.Thumb)
	changed := p.action("slider", s.Name, s.OnChange)
	if s.Max < s.Min {
		p.fail("slider", s.Name, fmt.Errorf("max %v is below min %v", s.Max, s.Min))
	}

	h := retained.SliderFuncs{}
	if changed != nil {
		h.ValueChanged = func(*retained.Slider) { changed() }
	}
	cfg := retained.SliderConfig{Style: s.Style, ThumbStyle: s.ThumbStyle}
	p.steps = append(p.steps, func() {
		if ui.Slider(s.Name) != nil {
			ui.AddSlider(s.Container, s.Name, track, thumb, s.Min, s.Max, nil, h, cfg)
			return
		}
		value := new(float32)
		ui.AddSlider(s.Container, s.Name, track, thumb, s.Min, s.Max, value, h, cfg)
		if sl := ui.Slider(s.Name); sl != nil {
			sl.SetValue(s.Value)
			b.Values[s.Name] = value
		}
	})
}

func (p *planner) checkbox(ui *retained.UI, s CheckboxSpec) {
	bounds := p.rect("checkbox", s.Name, s.Bounds)
	changed := p.action("checkbox", s.Name, s.OnChange)
	cfg := retained.CheckboxConfig{}
	if s.CheckColor != "" {
		cfg.CheckColor = p.color("checkbox", s.Name, s.CheckColor, shape.Color{})
	}

	h := retained.CheckboxFuncs{}
	if changed != nil {
		h.CheckedChanged = func(*retained.Checkbox) { changed() }
	}
	p.steps = append(p.steps, func() {
		ui.AddCheckbox(s.Container, s.Name, bounds, s.Checked, h, cfg)
	})
}

func (p *planner) colorPicker(ui *retained.UI, b *Bindings, s ColorPickerSpec) {
	bounds := p.rect("color picker", s.Name, s.Bounds)
	initial := p.color("color picker", s.Name, s.Initial, shape.RGBA(1, 1, 1, 1))
	changed := p.action("color picker", s.Name, s.OnChange)

	h := retained.ColorPickerFuncs{}
	if changed != nil {
		h.ColorChanged = func(*retained.ColorPicker) { changed() }
	}
	p.steps = append(p.steps, func() {
		fresh := ui.ColorPicker(s.Name) == nil
		selected := new(shape.Color)
		*selected = initial
		ui.AddColorPicker(s.Container, s.Name, bounds, selected, h, "")
		if fresh && ui.ColorPicker(s.Name) != nil {
			b.Colors[s.Name] = selected
		}
	})
}

func (p *planner) inputBox(ui *retained.UI, s InputBoxSpec) {
	bounds := p.rect("input box", s.Name, s.Bounds)
	changed := p.action("input box", s.Name, s.OnChange)

	h := retained.InputBoxFuncs{}
	if changed != nil {
		h.TextChanged = func(*retained.InputBox) { changed() }
	}
	p.steps = append(p.steps, func() {
		ui.AddInputBox(s.Container, s.Name, bounds, s.Text, h, "")
	})
}

func (p *planner) hotkey(ui *retained.UI, s HotkeySpec) {
	vk, err := input.KeyByName(s.Key)
	if err != nil {
		p.fail("hotkey", s.Key, err)
		return
	}
	if s.Action == "" {
		p.fail("hotkey", s.Key, errors.New("no action"))
		return
	}
	fn := p.action("hotkey", s.Key, s.Action)
	rate := time.Duration(s.RateLimitMs) * time.Millisecond
	p.steps = append(p.steps, func() {
		ui.AddHotkey(s.Container, vk, fn, rate)
	})
}

func (p *planner) element(batches *render.Batches, s ElementSpec) {
	cmds := make([]shape.DrawCommand, 0, len(s.Shapes))
	for i, sh := range s.Shapes {
		switch {
		case sh.Rect != nil:
			cmds = append(cmds, shape.NewRect(p.rect("element", s.Name, *sh.Rect)))
		case sh.Circle != nil:
			c := sh.Circle
			color := p.color("element", s.Name, c.Color, shape.Color{})
			cmds = append(cmds, shape.NewCircleSegments(c.X, c.Y, c.Radius, color, c.Segments))
		case sh.Triangle != nil:
			t := sh.Triangle
			color := p.color("element", s.Name, t.Color, shape.Color{})
			pt := t.Points
			cmds = append(cmds, shape.NewTriangle(pt[0], pt[1], pt[2], pt[3], pt[4], pt[5], color))
		default:
			p.fail("element", s.Name, fmt.Errorf("shape %d has no rect, circle or triangle", i))
		}
	}
	if batches == nil {
		return
	}
	p.steps = append(p.steps, func() {
		batches.RegisterElement(s.Name, s.Priority, cmds)
	})
}
