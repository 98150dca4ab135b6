// Package retained is the retained-widget layer of the overlay: registries of
// containers, widgets, hotkeys and styles, reconciled against polled input and
// redrawn once per frame.
//
// A UI is driven from one goroutine. Each frame the host calls HandleInput
// then DrawAllElements. Handlers run synchronously inside HandleInput and
// must not call HandleInput or DrawAllElements themselves.
//
// Registration never fails loudly: duplicate names and unknown containers
// are logged at debug level (see SetLogger) and ignored, so a configuration
// mistake never stops the overlay.
package retained

import (
	"time"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/render"
	"github.com/agiangrant/overlay/shape"
)

// UI owns every registry and borrows the rasterizer and the input source.
type UI struct {
	target render.Rasterizer
	source input.Source
	opts   options

	styles *StyleRegistry

	containers   registry[string, *Container]
	buttons      registry[string, *Button]
	sliders      registry[string, *Slider]
	checkboxes   registry[string, *Checkbox]
	colorPickers registry[string, *ColorPicker]
	inputBoxes   registry[string, *InputBox]
	hotkeys      registry[int, *Hotkey]

	batches []*render.Batches

	// Shared by every clickable widget. Zero means no click yet.
	lastClickTime time.Time

	focused string // Name of the focused input box
	master  bool
}

// frame is the single reading of input and time used for a whole HandleInput pass.
type frame struct {
	now   time.Time
	state input.State
}

// New returns a UI drawing into target and polling source.
// The master switch starts on; containers start hidden.
func New(target render.Rasterizer, source input.Source, opts ...Option) *UI {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &UI{
		target:       target,
		source:       source,
		opts:         o,
		styles:       NewStyleRegistry(),
		containers:   newRegistry[string, *Container](),
		buttons:      newRegistry[string, *Button](),
		sliders:      newRegistry[string, *Slider](),
		checkboxes:   newRegistry[string, *Checkbox](),
		colorPickers: newRegistry[string, *ColorPicker](),
		inputBoxes:   newRegistry[string, *InputBox](),
		hotkeys:      newRegistry[int, *Hotkey](),
		master:       true,
	}
}

// Styles returns the style registry, for registering custom styles.
func (u *UI) Styles() *StyleRegistry {
	return u.styles
}

// RegisterStyle is shorthand for u.Styles().Register.
func (u *UI) RegisterStyle(name string, fn StyleFunc) {
	u.styles.Register(name, fn)
}

// AttachBatches draws b after the widgets on every frame while the master
// switch is on.
func (u *UI) AttachBatches(b *render.Batches) {
	if b != nil {
		u.batches = append(u.batches, b)
	}
}

// MasterToggle flips the master switch. It takes effect on the next
// HandleInput / DrawAllElements pair.
func (u *UI) MasterToggle() {
	u.master = !u.master
}

// MasterSwitch reports the master switch.
func (u *UI) MasterSwitch() bool {
	return u.master
}

// HandleInput polls input once and reconciles it against every widget, then
// every hotkey. Widgets of hidden containers are frozen: no handler fires.
func (u *UI) HandleInput() {
	f := &frame{
		now:   u.opts.clock.Now(),
		state: u.source.Poll(),
	}
	st := f.state

	for _, b := range u.buttons.order {
		u.updateButton(b, st, f)
	}
	for _, c := range u.checkboxes.order {
		u.updateCheckbox(c, st, f)
	}
	for _, b := range u.inputBoxes.order {
		u.updateInputBox(b, st, f)
	}
	for _, s := range u.sliders.order {
		u.updateSlider(s, st)
	}
	for _, p := range u.colorPickers.order {
		u.updateColorPicker(p, st)
	}
	for _, h := range u.hotkeys.order {
		u.updateHotkey(h, f.now)
	}
}

// takeClick consumes the shared debounced click if the window has elapsed.
// At most one widget per debounce window gets the click.
func (u *UI) takeClick(f *frame) bool {
	if f.now.Sub(u.lastClickTime) <= u.opts.clickDebounce {
		return false
	}
	u.lastClickTime = f.now
	return true
}

// DrawAllElements clears the frame, draws every visible container and the
// widgets of visible containers through their styles, then any attached
// batches, and presents. With the master switch off the frame is cleared
// and presented empty.
//
// Order is containers, buttons, sliders, checkboxes, color pickers and input
// boxes, each in registration order.
func (u *UI) DrawAllElements() {
	cc := u.opts.clearColor
	u.target.ClearScreen(cc.R, cc.G, cc.B, cc.A)

	if !u.master {
		u.target.Present()
		return
	}

	cmds := render.AcquireCommands()
	cmds = u.appendFrame(cmds)
	render.DrawAll(u.target, cmds)
	render.ReleaseCommands(cmds)

	for _, b := range u.batches {
		b.DrawAll()
	}

	u.target.Present()
}

// Commands returns the widget commands DrawAllElements would submit now,
// without touching the rasterizer. Attached batches are not included.
func (u *UI) Commands() []shape.DrawCommand {
	if !u.master {
		return nil
	}
	return u.appendFrame(nil)
}

func (u *UI) appendFrame(dst []shape.DrawCommand) []shape.DrawCommand {
	for _, c := range u.containers.order {
		if c.visible {
			dst = u.styles.appendResolved(dst, c.Style, c.Bounds, c.Bounds.Color)
		}
	}
	for _, b := range u.buttons.order {
		if u.IsVisible(b.Container) {
			dst = u.drawButton(dst, b)
		}
	}
	for _, s := range u.sliders.order {
		if u.IsVisible(s.Container) {
			dst = u.drawSlider(dst, s)
		}
	}
	for _, c := range u.checkboxes.order {
		if u.IsVisible(c.Container) {
			dst = u.drawCheckbox(dst, c)
		}
	}
	for _, p := range u.colorPickers.order {
		if u.IsVisible(p.Container) {
			dst = u.drawColorPicker(dst, p)
		}
	}
	for _, b := range u.inputBoxes.order {
		if u.IsVisible(b.Container) {
			dst = u.drawInputBox(dst, b)
		}
	}
	return dst
}

// Counts reports how many entries each registry holds.
type Counts struct {
	Containers, Buttons, Sliders, Checkboxes, ColorPickers, InputBoxes, Hotkeys int
}

// Counts returns the registry sizes.
func (u *UI) Counts() Counts {
	return Counts{
		Containers:   u.containers.len(),
		Buttons:      u.buttons.len(),
		Sliders:      u.sliders.len(),
		Checkboxes:   u.checkboxes.len(),
		ColorPickers: u.colorPickers.len(),
		InputBoxes:   u.inputBoxes.len(),
		Hotkeys:      u.hotkeys.len(),
	}
}
