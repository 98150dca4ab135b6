package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Virtual key codes. The numbering follows the Win32 virtual-key space,
// which the platform pollers translate from.
const (
	VKLButton = 0x01
	VKRButton = 0x02
	VKMButton = 0x04
	VKBack    = 0x08
	VKTab     = 0x09
	VKReturn  = 0x0D
	VKShift   = 0x10
	VKControl = 0x11
	VKMenu    = 0x12 // Alt
	VKPause   = 0x13
	VKEscape  = 0x1B
	VKSpace   = 0x20
	VKPrior   = 0x21 // Page up
	VKNext    = 0x22 // Page down
	VKEnd     = 0x23
	VKHome    = 0x24
	VKLeft    = 0x25
	VKUp      = 0x26
	VKRight   = 0x27
	VKDown    = 0x28
	VKInsert  = 0x2D
	VKDelete  = 0x2E
	VKF1      = 0x70
	VKF12     = 0x7B
)

// ErrUnknownKey is returned by KeyByName for names it cannot resolve.
var ErrUnknownKey = errors.New("unknown key")

// VKKey returns the virtual key for an ASCII letter or digit.
func VKKey(c rune) int {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return int(c)
}

// VKFunction returns the virtual key for F1..F12.
func VKFunction(n int) int {
	return VKF1 + n - 1
}

var keyNames = map[string]int{
	"lbutton":   VKLButton,
	"rbutton":   VKRButton,
	"mbutton":   VKMButton,
	"backspace": VKBack,
	"tab":       VKTab,
	"enter":     VKReturn,
	"return":    VKReturn,
	"shift":     VKShift,
	"ctrl":      VKControl,
	"control":   VKControl,
	"alt":       VKMenu,
	"pause":     VKPause,
	"esc":       VKEscape,
	"escape":    VKEscape,
	"space":     VKSpace,
	"pageup":    VKPrior,
	"pagedown":  VKNext,
	"end":       VKEnd,
	"home":      VKHome,
	"left":      VKLeft,
	"up":        VKUp,
	"right":     VKRight,
	"down":      VKDown,
	"insert":    VKInsert,
	"delete":    VKDelete,
}

// KeyByName resolves a key name ("end", "F5", "a", "0x24") to a virtual key.
func KeyByName(name string) (int, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if vk, ok := keyNames[n]; ok {
		return vk, nil
	}

	if len(n) == 1 {
		c := rune(n[0])
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return VKKey(c), nil
		}
	}

	if len(n) >= 2 && n[0] == 'f' {
		if fn, err := strconv.Atoi(n[1:]); err == nil && fn >= 1 && fn <= 12 {
			return VKFunction(fn), nil
		}
	}

	if strings.HasPrefix(n, "0x") {
		if vk, err := strconv.ParseInt(n[2:], 16, 32); err == nil && vk > 0 && vk < 0x100 {
			return int(vk), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
