package retained

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/render"
	"github.com/agiangrant/overlay/shape"
)

var (
	grey  = shape.RGBA(0.45, 0.45, 0.45, 1)
	light = shape.RGBA(0.7, 0.7, 0.7, 1)
)

type harness struct {
	ui     *UI
	rec    *render.Recorder
	script *input.Script
	clock  *input.ManualClock
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		rec:    &render.Recorder{},
		script: input.NewScript(),
		clock:  input.NewManualClock(time.Unix(1_000_000, 0)),
	}
	h.ui = New(h.rec, h.script, append([]Option{WithClock(h.clock)}, opts...)...)
	return h
}

// visibleContainer registers a visible container at (x, y).
func (h *harness) visibleContainer(name string, x, y float32) {
	h.ui.AddContainer(name, shape.Rect{X: x, Y: y, Width: 400, Height: 400}, ContainerConfig{})
	h.ui.ToggleVisibility(name)
}

type buttonCounts struct {
	click, hover, idle int
}

func (c *buttonCounts) handler() ButtonFuncs {
	return ButtonFuncs{
		Click: func(*Button) { c.click++ },
		Hover: func(*Button) { c.hover++ },
		Idle:  func(*Button) { c.idle++ },
	}
}

func TestContainersStartHidden(t *testing.T) {
	h := newHarness(t)
	h.ui.AddContainer("A", shape.Rect{X: 1, Y: 1, Width: 10, Height: 10}, ContainerConfig{})

	assert.False(t, h.ui.IsVisible("A"))
	assert.Equal(t, StyleDefaultContainer, h.ui.Container("A").Style)
	assert.False(t, h.ui.IsVisible("missing"))
}

func TestToggleVisibilityIsInvolution(t *testing.T) {
	h := newHarness(t)
	h.ui.AddContainer("A", shape.Rect{}, ContainerConfig{})

	before := h.ui.IsVisible("A")
	h.ui.ToggleVisibility("A")
	assert.NotEqual(t, before, h.ui.IsVisible("A"))
	h.ui.ToggleVisibility("A")
	assert.Equal(t, before, h.ui.IsVisible("A"))

	h.ui.ToggleVisibility("missing") // logged, no panic
	assert.Nil(t, h.ui.Container("missing"))
}

func TestMasterSwitchHidesEveryContainer(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.visibleContainer("B", 0, 0)
	require.True(t, h.ui.IsVisible("A"))

	h.ui.MasterToggle()
	assert.False(t, h.ui.MasterSwitch())
	assert.False(t, h.ui.IsVisible("A"))
	assert.False(t, h.ui.IsVisible("B"))
	assert.True(t, h.ui.Container("A").Visible(), "own flag is untouched")

	h.ui.MasterToggle()
	assert.True(t, h.ui.IsVisible("A"))
}

func TestDuplicateContainerKeepsFirst(t *testing.T) {
	h := newHarness(t)
	h.ui.AddContainer("A", shape.Rect{X: 5}, ContainerConfig{})
	h.ui.AddContainer("A", shape.Rect{X: 99}, ContainerConfig{Style: "other"})

	assert.Equal(t, float32(5), h.ui.Container("A").Bounds.X)
	assert.Equal(t, 1, h.ui.Counts().Containers)
}

func TestButtonBoundsBakedInOnce(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 100, 100)
	h.ui.AddButton("A", "b", shape.Rect{X: 10, Y: 20, Width: 40, Height: 20}, nil, "")

	b := h.ui.Button("b")
	require.NotNil(t, b)
	assert.Equal(t, float32(110), b.Bounds.X)
	assert.Equal(t, float32(120), b.Bounds.Y)
	assert.Equal(t, StyleDefaultButton, b.Style)

	// Moving the container afterwards does not move the button.
	h.ui.Container("A").Bounds.X = 500
	assert.Equal(t, float32(110), h.ui.Button("b").Bounds.X)
}

func TestDuplicateButtonRejected(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)

	var first, second buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{X: 10, Y: 10, Width: 100, Height: 20, Color: grey}, first.handler(), "")
	h.ui.AddButton("A", "b", shape.Rect{X: 300, Y: 300, Width: 5, Height: 5, Color: light}, second.handler(), "")

	b := h.ui.Button("b")
	assert.Equal(t, float32(10), b.Bounds.X)
	assert.Equal(t, grey, b.Bounds.Color)

	h.script.MoveTo(50, 20).Press(true)
	h.ui.HandleInput()
	assert.Equal(t, 1, first.click)
	assert.Zero(t, second.click+second.hover+second.idle)
}

func TestButtonUnderUnknownContainerHasNoEffect(t *testing.T) {
	h := newHarness(t)
	var counts buttonCounts
	h.ui.AddButton("nope", "b", shape.Rect{X: 0, Y: 0, Width: 100, Height: 100}, counts.handler(), "")

	assert.Nil(t, h.ui.Button("b"))
	assert.Zero(t, h.ui.Counts().Buttons)

	h.script.MoveTo(10, 10).Press(true)
	h.ui.HandleInput()
	h.ui.DrawAllElements()
	assert.Equal(t, buttonCounts{}, counts)
	assert.Empty(t, h.rec.Commands())
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	var counts buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{X: 10, Y: 10, Width: 100, Height: 20}, counts.handler(), "")

	h.script.MoveTo(50, 20).Press(true)
	h.ui.HandleInput()

	assert.Equal(t, buttonCounts{click: 1}, counts)
}

func TestButtonIdleOutside(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	var counts buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{X: 10, Y: 10, Width: 100, Height: 20}, counts.handler(), "")

	h.script.MoveTo(200, 200).Press(true)
	h.ui.HandleInput()

	assert.Equal(t, buttonCounts{idle: 1}, counts)
}

func TestButtonHoverWithinDebounce(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	var counts buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{X: 10, Y: 10, Width: 100, Height: 20}, counts.handler(), "")

	h.script.MoveTo(50, 20).Press(false)
	h.ui.HandleInput()
	assert.Equal(t, buttonCounts{hover: 1}, counts)

	h.script.Press(true)
	h.ui.HandleInput()
	assert.Equal(t, 1, counts.click)

	// Still held, inside the debounce window: hover, not click.
	h.clock.Advance(100 * time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, buttonCounts{click: 1, hover: 2}, counts)

	// Exactly at the window is not enough; the elapsed time must exceed it.
	h.clock.Advance(150 * time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, 1, counts.click)

	h.clock.Advance(time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, 2, counts.click)
}

func TestClickDebounceIsShared(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	var a, b buttonCounts
	rect := shape.Rect{X: 0, Y: 0, Width: 50, Height: 50}
	h.ui.AddButton("A", "a", rect, a.handler(), "")
	h.ui.AddButton("A", "b", rect, b.handler(), "")

	h.script.MoveTo(25, 25).Press(true)
	h.ui.HandleInput()
	assert.Equal(t, 1, a.click+b.click, "one click per frame")
	assert.Equal(t, 1, a.hover+b.hover)

	h.clock.Advance(200 * time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, 1, a.click+b.click, "second button waits for the window")

	h.clock.Advance(100 * time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, 2, a.click+b.click)
}

func TestWithClickDebounce(t *testing.T) {
	h := newHarness(t, WithClickDebounce(10*time.Millisecond))
	h.visibleContainer("A", 0, 0)
	var counts buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{Width: 10, Height: 10}, counts.handler(), "")

	h.script.MoveTo(5, 5).Press(true)
	h.ui.HandleInput()
	h.clock.Advance(11 * time.Millisecond)
	h.ui.HandleInput()
	assert.Equal(t, 2, counts.click)
}

func TestHiddenContainerFreezesWidgets(t *testing.T) {
	h := newHarness(t)
	h.ui.AddContainer("A", shape.Rect{}, ContainerConfig{})
	var counts buttonCounts
	h.ui.AddButton("A", "b", shape.Rect{Width: 10, Height: 10}, counts.handler(), "")

	h.script.MoveTo(5, 5).Press(true)
	h.ui.HandleInput()
	h.script.MoveTo(500, 500)
	h.ui.HandleInput()
	assert.Equal(t, buttonCounts{}, counts)

	h.ui.ToggleVisibility("A")
	h.ui.MasterToggle()
	h.ui.HandleInput()
	assert.Equal(t, buttonCounts{}, counts, "master switch off freezes too")
}

func TestHandlerRepaintsByMutation(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddButton("A", "b", shape.Rect{X: 10, Y: 10, Width: 40, Height: 20, Color: grey}, ButtonFuncs{
		Hover: func(b *Button) { b.Bounds.Color = light },
		Idle:  func(b *Button) { b.Bounds.Color = grey },
	}, "")

	h.script.MoveTo(20, 20)
	h.ui.HandleInput()
	h.ui.DrawAllElements()

	cmds := h.rec.Commands()
	require.Len(t, cmds, 2) // container + button
	assert.Equal(t, light, cmds[1].(shape.RectCommand).Color)

	h.rec.Reset()
	h.script.MoveTo(300, 300)
	h.ui.HandleInput()
	h.ui.DrawAllElements()
	assert.Equal(t, grey, h.rec.Commands()[1].(shape.RectCommand).Color)
}

func TestDrawAllElements(t *testing.T) {
	h := newHarness(t, WithClearColor(shape.RGBA(0, 0, 0, 0.5)))
	h.visibleContainer("A", 0, 0)
	h.ui.AddContainer("hidden", shape.Rect{}, ContainerConfig{})
	h.ui.AddButton("A", "shown", shape.Rect{Width: 1, Height: 1}, nil, "")
	h.ui.AddButton("hidden", "gone", shape.Rect{Width: 1, Height: 1}, nil, "")

	h.ui.DrawAllElements()

	calls := h.rec.Calls
	require.Len(t, calls, 4)
	assert.Equal(t, render.CallClear, calls[0].Kind)
	assert.Equal(t, float32(0.5), calls[0].Clear.A)
	assert.Equal(t, render.CallDraw, calls[1].Kind)
	assert.Equal(t, render.CallDraw, calls[2].Kind)
	assert.Equal(t, render.CallPresent, calls[3].Kind)
}

func TestDrawMasterOffPresentsEmptyFrame(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddButton("A", "b", shape.Rect{Width: 1, Height: 1}, nil, "")
	batches := render.NewBatches(h.rec)
	batches.RegisterElement("hud", 0, []shape.DrawCommand{shape.NewCircle(1, 1, 1, grey)})
	h.ui.AttachBatches(batches)

	h.ui.MasterToggle()
	h.ui.DrawAllElements()

	require.Len(t, h.rec.Calls, 2)
	assert.Equal(t, render.CallClear, h.rec.Calls[0].Kind)
	assert.Equal(t, render.CallPresent, h.rec.Calls[1].Kind)
	assert.Nil(t, h.ui.Commands())
}

func TestAttachedBatchesDrawAfterWidgets(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	batches := render.NewBatches(h.rec)
	batches.RegisterElement("hud", 0, []shape.DrawCommand{shape.NewCircle(1, 1, 1, grey)})
	h.ui.AttachBatches(batches)

	h.ui.DrawAllElements()

	cmds := h.rec.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, shape.KindRectangle, cmds[0].Kind())
	assert.Equal(t, shape.KindCircle, cmds[1].Kind())
}

func TestDrawOrderFollowsRegistration(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	for i, name := range []string{"c", "a", "b"} {
		h.ui.AddButton("A", name, shape.Rect{X: float32(i), Width: 1, Height: 1}, nil, "")
	}

	cmds := h.ui.Commands()
	require.Len(t, cmds, 4)
	for i := range 3 {
		assert.Equal(t, float32(i), cmds[i+1].(shape.RectCommand).X)
	}
}

func TestUnknownStyleDrawsNothing(t *testing.T) {
	h := newHarness(t)
	h.visibleContainer("A", 0, 0)
	h.ui.AddButton("A", "styled", shape.Rect{Width: 1, Height: 1}, nil, "doesNotExist")
	h.ui.AddButton("A", "plain", shape.Rect{Width: 1, Height: 1}, nil, "")

	assert.Len(t, h.ui.Commands(), 2, "container and plain button only")
}
