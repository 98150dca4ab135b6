package retained

import (
	"time"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/shape"
)

const (
	// DefaultClickDebounce is the minimum time between two accepted clicks,
	// shared by every clickable widget.
	DefaultClickDebounce = 250 * time.Millisecond

	// DefaultHotkeyRateLimit is used by AddHotkey when no rate limit is given.
	DefaultHotkeyRateLimit = 250 * time.Millisecond
)

type options struct {
	clock                  input.Clock
	clickDebounce          time.Duration
	hotkeyRateLimit        time.Duration
	hotkeysFollowContainer bool
	clearColor             shape.Color
}

func defaultOptions() options {
	return options{
		clock:           input.SystemClock{},
		clickDebounce:   DefaultClickDebounce,
		hotkeyRateLimit: DefaultHotkeyRateLimit,
	}
}

// Option configures a UI.
type Option func(*options)

// WithClock replaces the monotonic clock, typically with an input.ManualClock in tests.
func WithClock(c input.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithClickDebounce sets the shared click debounce window.
func WithClickDebounce(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.clickDebounce = d
		}
	}
}

// WithHotkeyRateLimit sets the rate limit applied to hotkeys registered without one.
func WithHotkeyRateLimit(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.hotkeyRateLimit = d
		}
	}
}

// WithHotkeysFollowContainer gates hotkey firing on the own visibility flag
// of the hotkey's container. Off by default: hotkeys fire regardless of
// their container. The master switch never gates hotkeys.
func WithHotkeysFollowContainer(follow bool) Option {
	return func(o *options) {
		o.hotkeysFollowContainer = follow
	}
}

// WithClearColor sets the color the frame is cleared to. Defaults to fully transparent.
func WithClearColor(c shape.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}
