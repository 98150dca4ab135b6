package retained

import (
	"log/slog"
	"time"
)

// Hotkey is a global key binding. It is level-triggered: while the key is
// held it fires again every time the rate limit has elapsed.
type Hotkey struct {
	Key       int    // Virtual key code
	Container string // Recorded association, consulted only with WithHotkeysFollowContainer
	RateLimit time.Duration

	lastUse time.Time
	fn      func()
}

// LastUse returns when the hotkey last fired, or its registration time.
func (h *Hotkey) LastUse() time.Time {
	return h.lastUse
}

// AddHotkey binds fn to a virtual key. container may be empty. A rateLimit
// of zero uses the UI default. A key that is already bound is logged and ignored.
//
// The rate limit also applies from registration: a key held at startup
// fires only once the first interval has passed.
func (u *UI) AddHotkey(container string, vk int, fn func(), rateLimit time.Duration) {
	if _, exists := u.hotkeys.get(vk); exists {
		skip("hotkey already bound", slog.Int("key", vk))
		return
	}
	if rateLimit <= 0 {
		rateLimit = u.opts.hotkeyRateLimit
	}
	if fn == nil {
		fn = func() {}
	}
	u.hotkeys.add(vk, &Hotkey{
		Key:       vk,
		Container: container,
		RateLimit: rateLimit,
		lastUse:   u.opts.clock.Now(),
		fn:        fn,
	})
}

// Hotkey returns the binding for a virtual key, or nil.
func (u *UI) Hotkey(vk int) *Hotkey {
	h, _ := u.hotkeys.get(vk)
	return h
}

func (u *UI) updateHotkey(h *Hotkey, now time.Time) {
	if u.opts.hotkeysFollowContainer && h.Container != "" {
		c, ok := u.containers.get(h.Container)
		if !ok || !c.visible {
			return
		}
	}
	if !u.source.KeyDown(h.Key) {
		return
	}
	if now.Sub(h.lastUse) <= h.RateLimit {
		return
	}
	h.lastUse = now
	h.fn()
}
