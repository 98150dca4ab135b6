package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agiangrant/overlay/retained"
)

// ErrUnknownAction is returned when a layout names an action nobody registered.
var ErrUnknownAction = errors.New("unknown action")

// Built-in action names.
const (
	ActionQuit         = "quit"
	ActionToggleMaster = "toggle-master"

	// actionTogglePrefix is followed by a container name: "toggle:A".
	actionTogglePrefix = "toggle:"
)

// Actions maps action names to callbacks.
type Actions struct {
	ui    *retained.UI
	funcs map[string]func()
}

// NewActions returns the built-in actions for ui. quit backs the "quit"
// action and may be nil, leaving "quit" unregistered.
func NewActions(ui *retained.UI, quit func()) *Actions {
	a := &Actions{ui: ui, funcs: make(map[string]func())}
	a.Register(ActionToggleMaster, ui.MasterToggle)
	if quit != nil {
		a.Register(ActionQuit, quit)
	}
	return a
}

// Register adds or replaces an action.
func (a *Actions) Register(name string, fn func()) {
	a.funcs[name] = fn
}

// Resolve returns the callback for name. The empty name resolves to nil.
func (a *Actions) Resolve(name string) (func(), error) {
	if name == "" {
		return nil, nil
	}
	if fn, ok := a.funcs[name]; ok {
		return fn, nil
	}
	if container, ok := strings.CutPrefix(name, actionTogglePrefix); ok && container != "" {
		ui := a.ui
		return func() { ui.ToggleVisibility(container) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
