//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/agiangrant/overlay/input"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// keyPressedMask is the "currently down" bit of GetAsyncKeyState.
const keyPressedMask = 0x8000

type winPoint struct {
	X, Y int32
}

type win32Source struct{}

// NewSource returns a poller backed by user32.dll.
func NewSource() (input.Source, error) {
	for _, p := range []*windows.LazyProc{procGetCursorPos, procGetAsyncKeyState} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", p.Name, err)
		}
	}
	return win32Source{}, nil
}

func (win32Source) Poll() input.State {
	var pt winPoint
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	return input.State{
		X:         float32(pt.X),
		Y:         float32(pt.Y),
		Primary:   keyDown(input.VKLButton),
		Secondary: keyDown(input.VKRButton),
	}
}

func (win32Source) KeyDown(vk int) bool {
	return keyDown(vk)
}

func keyDown(vk int) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(r)&keyPressedMask != 0
}
