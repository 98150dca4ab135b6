// Package input defines the per-frame pointer/keyboard snapshot consumed by
// the widget layer, the polling Source contract, and clocks.
package input

import "time"

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// State is a single reading of the pointer and text entry, taken once per frame.
type State struct {
	// Pointer position in screen coordinates
	X, Y float32

	Primary   bool // Primary (left) button held
	Secondary bool // Secondary (right) button held

	// Text typed since the previous poll, and the number of backspaces.
	Text       []rune
	Backspaces int
}

// Down reports whether the given button is held.
func (s State) Down(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return s.Primary
	case MouseButtonRight:
		return s.Secondary
	}
	return false
}

// Source polls raw input. Poll is called once per frame; KeyDown is
// level-triggered and reports whether the virtual key is currently held.
type Source interface {
	Poll() State
	KeyDown(vk int) bool
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a simulated clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
