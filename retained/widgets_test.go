package retained

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

func TestSliderDragWritesThroughPointer(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 100, 0)

	value := float32(0)
	changes, idles := 0, 0
	h.ui.AddSlider("A", "volume",
		shape.Rect{X: 0, Y: 10, Width: 200, Height: 10},
		shape.Rect{X: -5, Y: 5, Width: 10, Height: 20},
		0, 100, &value,
		SliderFuncs{
			ValueChanged: func(*Slider) { changes++ },
			Idle:         func(*Slider) { idles++ },
		}, SliderConfig{})

	s := h.ui.Slider("volume")
	require.NotNil(t, s)
	assert.Equal(t, float32(100), s.Track.X)

	// Press at the middle of the track.
	h.script.MoveTo(200, 15).Press(true)
	h.ui.HandleInput()
	assert.True(t, s.Dragging())
	assert.Equal(t, float32(50), value)
	assert.Equal(t, float32(195), s.Thumb.X, "thumb centered on the value")
	assert.Equal(t, 1, changes)

	// Dragging past the end clamps, even outside the track.
	h.script.MoveTo(900, 400)
	h.ui.HandleInput()
	assert.Equal(t, float32(100), value)
	assert.Equal(t, 2, changes)

	// No change, no event.
	h.ui.HandleInput()
	assert.Equal(t, 2, changes)
	assert.Zero(t, idles)

	// Release ends the drag; the pointer is outside so idle fires.
	h.script.Press(false)
	h.ui.HandleInput()
	assert.False(t, s.Dragging())
	assert.Equal(t, 1, idles)
}

func TestSliderOwnsValueWhenNil(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddSlider("A", "s", shape.Rect{Width: 10, Height: 10}, shape.Rect{Width: 2, Height: 10}, 5, 15, nil, nil, SliderConfig{})

	s := h.ui.Slider("s")
	assert.Equal(t, float32(5), s.Value())
	assert.True(t, s.SetValue(40))
	assert.Equal(t, float32(15), s.Value())
	assert.False(t, s.SetValue(15))
}

func TestSliderDrawsTrackAndThumb(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddSlider("A", "s", shape.Rect{Width: 90, Height: 9}, shape.Rect{Width: 4, Height: 9}, 0, 1, nil, nil, SliderConfig{})

	cmds := h.ui.Commands()
	require.Len(t, cmds, 3)
	groove := cmds[1].(shape.RectCommand)
	assert.Equal(t, float32(3), groove.Height)
	assert.Equal(t, float32(3), groove.Y)
}

func TestCheckboxToggleSharesDebounce(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)

	var toggled []bool
	h.ui.AddCheckbox("A", "cb", shape.Rect{X: 0, Y: 0, Width: 20, Height: 20}, false, CheckboxFuncs{
		CheckedChanged: func(c *Checkbox) { toggled = append(toggled, c.Checked) },
	}, CheckboxConfig{})
	var counts buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{X: 0, Y: 0, Width: 20, Height: 20}, counts.handler(), "")

	h.script.MoveTo(10, 10).Press(true)
	h.ui.HandleInput()
	assert.Equal(t, 1, counts.click, "buttons are reconciled first")
	assert.Empty(t, toggled)

	h.clock.Advance(300 * time.Millisecond)
	h.ui.Button("b").Bounds.X = 1000 // move the button away
	h.ui.HandleInput()
	assert.Equal(t, []bool{true}, toggled)
	assert.True(t, h.ui.Checkbox("cb").Checked)
}

func TestCheckboxDrawsMarkWhenChecked(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddCheckbox("A", "cb", shape.Rect{X: 10, Y: 10, Width: 20, Height: 20}, true, nil, CheckboxConfig{})

	cmds := h.ui.Commands()
	require.Len(t, cmds, 3)
	mark := cmds[2].(shape.RectCommand)
	assert.Equal(t, float32(13), mark.X)
	assert.Equal(t, float32(14), mark.Width)
	assert.Equal(t, shape.RGBA(1, 1, 1, 1), mark.Color)

	h.ui.Checkbox("cb").Checked = false
	assert.Len(t, h.ui.Commands(), 2)
}

func TestColorPickerPicksHue(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)

	color := shape.RGBA(1, 1, 1, 0.5)
	changes := 0
	h.ui.AddColorPicker("A", "pick", shape.Rect{X: 0, Y: 0, Width: 120, Height: 20}, &color, ColorPickerFuncs{
		ColorChanged: func(*ColorPicker) { changes++ },
	}, "")

	h.script.MoveTo(0, 10).Press(true)
	h.ui.HandleInput()
	assert.Equal(t, shape.RGBA(1, 0, 0, 0.5), color, "hue 0 is red, alpha kept")
	assert.Equal(t, 1, changes)

	h.ui.HandleInput()
	assert.Equal(t, 1, changes, "same hue, no event")

	// Hovering without pressing does not pick.
	h.script.MoveTo(60, 10).Press(false)
	h.ui.HandleInput()
	assert.Equal(t, 1, changes)

	cmds := h.ui.Commands()
	require.Len(t, cmds, 1+colorPickerSegments+1)
	swatch := cmds[len(cmds)-1].(shape.RectCommand)
	assert.Equal(t, color, swatch.Color)
}

func TestInputBoxFocusAndTyping(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)

	var texts []string
	idles := 0
	h.ui.AddInputBox("A", "name", shape.Rect{X: 0, Y: 0, Width: 100, Height: 20}, "ab", InputBoxFuncs{
		TextChanged: func(b *InputBox) { texts = append(texts, b.Text) },
		Idle:        func(*InputBox) { idles++ },
	}, "")

	// Typing while unfocused goes nowhere.
	h.script.MoveTo(300, 300).Type("zz")
	h.ui.HandleInput()
	assert.Empty(t, texts)
	assert.Equal(t, 1, idles)

	h.script.MoveTo(10, 10).Press(true)
	h.ui.HandleInput()
	require.NotNil(t, h.ui.Focused())
	assert.Equal(t, "name", h.ui.Focused().Name)

	h.script.Press(false).Type("cé").Backspace(1)
	h.ui.HandleInput()
	assert.Equal(t, []string{"acé"}, texts)

	h.script.Backspace(10)
	h.ui.HandleInput()
	assert.Equal(t, "", h.ui.InputBox("name").Text)

	// A press outside blurs.
	h.script.MoveTo(300, 300).Press(true)
	h.ui.HandleInput()
	assert.Nil(t, h.ui.Focused())
}

func TestInputBoxBlursWhenHidden(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddInputBox("A", "box", shape.Rect{Width: 10, Height: 10}, "", nil, "")

	h.script.MoveTo(5, 5).Press(true)
	h.ui.HandleInput()
	require.NotNil(t, h.ui.Focused())

	h.ui.ToggleVisibility("A")
	h.ui.HandleInput()
	assert.Nil(t, h.ui.Focused())
}

func TestHotkeyRateLimit(t *testing.T) {
	h := newHarness(t)
	fired := 0
	h.ui.AddHotkey("", input.VKEnd, func() { fired++ }, 250*time.Millisecond)

	h.script.Hold(input.VKEnd, true)

	// Held at registration time: the first window has not elapsed yet.
	h.ui.HandleInput()
	assert.Zero(t, fired)

	// Held continuously for two seconds at 60 FPS.
	for range 120 {
		h.clock.Advance(time.Second / 60)
		h.ui.HandleInput()
	}
	assert.GreaterOrEqual(t, fired, 7)
	assert.LessOrEqual(t, fired, 8, "at most once per 250ms window")

	last := h.ui.Hotkey(input.VKEnd).LastUse()
	h.script.Hold(input.VKEnd, false)
	h.clock.Advance(time.Second)
	h.ui.HandleInput()
	assert.Equal(t, last, h.ui.Hotkey(input.VKEnd).LastUse(), "released keys do not fire")
}

func TestHotkeyDuplicateAndDefaultRate(t *testing.T) {
	h := newHarness(t, WithHotkeyRateLimit(time.Second))
	first, second := 0, 0
	h.ui.AddHotkey("", input.VKHome, func() { first++ }, 0)
	h.ui.AddHotkey("", input.VKHome, func() { second++ }, 0)

	assert.Equal(t, time.Second, h.ui.Hotkey(input.VKHome).RateLimit)

	h.script.Hold(input.VKHome, true)
	h.clock.Advance(1001 * time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, 1, first)
	assert.Zero(t, second)
}

func TestHotkeyIgnoresContainerByDefault(t *testing.T) {
	h := newHarness(t)
	h.ui.AddContainer("A", shape.Rect{}, ContainerConfig{})
	fired := 0
	h.ui.AddHotkey("A", input.VKInsert, func() { fired++ }, 0)

	h.ui.MasterToggle()
	h.script.Hold(input.VKInsert, true)
	h.clock.Advance(time.Second)
	h.ui.HandleInput()
	assert.Equal(t, 1, fired, "fires with hidden container and master off")
}

func TestHotkeysFollowContainer(t *testing.T) {
	h := newHarness(t, WithHotkeysFollowContainer(true))
	h.ui.AddContainer("A", shape.Rect{}, ContainerConfig{})
	gated, free := 0, 0
	h.ui.AddHotkey("A", input.VKInsert, func() { gated++ }, 0)
	h.ui.AddHotkey("", input.VKHome, func() { free++ }, 0)

	h.script.Hold(input.VKInsert, true).Hold(input.VKHome, true)
	h.clock.Advance(time.Second)
	h.ui.HandleInput()
	assert.Zero(t, gated)
	assert.Equal(t, 1, free)

	h.ui.ToggleVisibility("A")
	h.ui.MasterToggle() // master never gates hotkeys
	h.ui.HandleInput()
	assert.Equal(t, 1, gated)
}

func TestMasterToggleHotkey(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddHotkey("A", input.VKHome, h.ui.MasterToggle, 0)

	h.script.Hold(input.VKHome, true)
	h.clock.Advance(300 * time.Millisecond)
	h.ui.HandleInput()
	assert.False(t, h.ui.MasterSwitch())

	h.ui.DrawAllElements()
	assert.Empty(t, h.rec.Commands())
}

func TestStyleRegistry(t *testing.T) {
	r := NewStyleRegistry()
	for _, name := range []string{StyleDefaultContainer, StyleDefaultButton, StyleDefaultSlider, StyleDefaultCheck, StyleDefaultInputBox, StyleDefaultColorPicker} {
		assert.True(t, r.Has(name), name)
	}

	bounds := shape.Rect{X: 1, Y: 2, Width: 3, Height: 4, Rounding: 1}
	cmds := r.Resolve(StyleDefaultButton, bounds, grey)
	require.Len(t, cmds, 1)
	rect := cmds[0].(shape.RectCommand)
	assert.Equal(t, float32(1), rect.Rounding)
	assert.Equal(t, grey, rect.Color)

	r.Register(StyleDefaultButton, func(shape.Rect, shape.Color) []shape.DrawCommand { return nil })
	assert.Len(t, r.Resolve(StyleDefaultButton, bounds, grey), 1, "built-ins cannot be replaced")

	r.Register("outline", func(b shape.Rect, c shape.Color) []shape.DrawCommand {
		return []shape.DrawCommand{
			shape.NewRect(b),
			shape.NewTriangle(b.X, b.Y, b.X+b.Width, b.Y, b.X, b.Y+b.Height, c),
		}
	})
	assert.Len(t, r.Resolve("outline", bounds, grey), 2)
	assert.Empty(t, r.Resolve("missing", bounds, grey))
}

func TestCustomStyleUsedByButton(t *testing.T) {
	h := newHarness(t)
	h.ui.RegisterStyle("dot", func(b shape.Rect, c shape.Color) []shape.DrawCommand {
		x, y := b.Center()
		return []shape.DrawCommand{shape.NewCircle(x, y, b.Height/2, c)}
	})
	h.visibleContainer("A", 0, 0)
	h.ui.AddButton("A", "b", shape.Rect{X: 0, Y: 0, Width: 10, Height: 10, Color: grey}, nil, "dot")

	cmds := h.ui.Commands()
	require.Len(t, cmds, 2)
	circle := cmds[1].(shape.CircleCommand)
	assert.Equal(t, float32(5), circle.CenterX)
	assert.Equal(t, float32(5), circle.Radius)
}
