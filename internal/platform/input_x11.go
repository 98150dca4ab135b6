//go:build linux && !android

package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ebitengine/purego"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/render"
)

// Pointer button masks from X.h.
const (
	button1Mask = 1 << 8
	button2Mask = 1 << 9
	button3Mask = 1 << 10
)

var libX11Names = []string{"libX11.so.6", "libX11.so"}

// x11Source polls the X server through libX11 loaded with purego.
type x11Source struct {
	display uintptr
	root    uintptr

	queryPointer    func(display, window uintptr, rootReturn, childReturn *uintptr, rootX, rootY, winX, winY *int32, mask *uint32) int32
	queryKeymap     func(display uintptr, keys *[32]byte) int32
	keysymToKeycode func(display uintptr, keysym uintptr) uint8

	keycodes map[int]uint8 // vk → keycode, 0 = unmapped
}

// NewSource opens the display named by $DISPLAY.
func NewSource() (input.Source, error) {
	lib, err := openX11()
	if err != nil {
		return nil, err
	}

	var (
		openDisplay       func(name string) uintptr
		defaultRootWindow func(display uintptr) uintptr
	)
	s := &x11Source{keycodes: make(map[int]uint8)}
	purego.RegisterLibFunc(&openDisplay, lib, "XOpenDisplay")
	purego.RegisterLibFunc(&defaultRootWindow, lib, "XDefaultRootWindow")
	purego.RegisterLibFunc(&s.queryPointer, lib, "XQueryPointer")
	purego.RegisterLibFunc(&s.queryKeymap, lib, "XQueryKeymap")
	purego.RegisterLibFunc(&s.keysymToKeycode, lib, "XKeysymToKeycode")

	name := os.Getenv("DISPLAY")
	if name == "" {
		return nil, errors.New("DISPLAY is not set")
	}
	s.display = openDisplay(name)
	if s.display == 0 {
		return nil, fmt.Errorf("failed to open display %q", name)
	}
	s.root = defaultRootWindow(s.display)

	render.Logger().Info("x11 input source opened", slog.String("display", name))
	return s, nil
}

func openX11() (uintptr, error) {
	var errs []error
	for _, name := range libX11Names {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, err)
	}
	return 0, fmt.Errorf("failed to load libX11: %w", errors.Join(errs...))
}

func (s *x11Source) Poll() input.State {
	var (
		root, child          uintptr
		rootX, rootY, wx, wy int32
		mask                 uint32
	)
	s.queryPointer(s.display, s.root, &root, &child, &rootX, &rootY, &wx, &wy, &mask)
	return input.State{
		X:         float32(rootX),
		Y:         float32(rootY),
		Primary:   mask&button1Mask != 0,
		Secondary: mask&button3Mask != 0,
	}
}

func (s *x11Source) KeyDown(vk int) bool {
	switch vk {
	case input.VKLButton, input.VKRButton, input.VKMButton:
		return s.buttonDown(vk)
	}

	code, ok := s.keycodes[vk]
	if !ok {
		if sym := keysymFor(vk); sym != 0 {
			code = s.keysymToKeycode(s.display, sym)
		}
		s.keycodes[vk] = code
	}
	if code == 0 {
		return false
	}

	var keys [32]byte
	s.queryKeymap(s.display, &keys)
	return keys[code/8]&(1<<(code%8)) != 0
}

func (s *x11Source) buttonDown(vk int) bool {
	var (
		root, child          uintptr
		rootX, rootY, wx, wy int32
		mask                 uint32
	)
	s.queryPointer(s.display, s.root, &root, &child, &rootX, &rootY, &wx, &wy, &mask)
	switch vk {
	case input.VKLButton:
		return mask&button1Mask != 0
	case input.VKMButton:
		return mask&button2Mask != 0
	default:
		return mask&button3Mask != 0
	}
}

// keysymFor maps a virtual key to an X keysym (keysymdef.h), or 0.
func keysymFor(vk int) uintptr {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return uintptr(vk - 'A' + 'a')
	case vk >= '0' && vk <= '9':
		return uintptr(vk)
	case vk >= input.VKF1 && vk <= input.VKF12:
		return uintptr(0xffbe + vk - input.VKF1)
	}
	switch vk {
	case input.VKBack:
		return 0xff08
	case input.VKTab:
		return 0xff09
	case input.VKReturn:
		return 0xff0d
	case input.VKShift:
		return 0xffe1
	case input.VKControl:
		return 0xffe3
	case input.VKMenu:
		return 0xffe9
	case input.VKPause:
		return 0xff13
	case input.VKEscape:
		return 0xff1b
	case input.VKSpace:
		return 0x20
	case input.VKPrior:
		return 0xff55
	case input.VKNext:
		return 0xff56
	case input.VKEnd:
		return 0xff57
	case input.VKHome:
		return 0xff50
	case input.VKLeft:
		return 0xff51
	case input.VKUp:
		return 0xff52
	case input.VKRight:
		return 0xff53
	case input.VKDown:
		return 0xff54
	case input.VKInsert:
		return 0xff63
	case input.VKDelete:
		return 0xffff
	}
	return 0
}
