package retained

import (
	"log/slog"

	"github.com/agiangrant/overlay/shape"
)

// Container is a named, absolutely positioned visibility group.
// Widgets registered under a container are offset by its origin once, at
// registration, and are shown only while it is visible.
//
// Moving a container after widgets were added does not move them.
type Container struct {
	Name   string
	Bounds shape.Rect
	Style  string

	PaddingX, PaddingY float32

	// MaxWidth and MaxHeight are recorded for auto-sizing; layout does not enforce them.
	MaxWidth, MaxHeight float32

	visible bool
}

// Visible reports the container's own flag, ignoring the master switch.
func (c *Container) Visible() bool {
	return c.visible
}

// ContainerConfig holds the optional container attributes.
type ContainerConfig struct {
	Style              string // Defaults to StyleDefaultContainer
	PaddingX, PaddingY float32
	MaxWidth           float32
	MaxHeight          float32
}

// AddContainer registers a hidden container. A duplicate name is logged and ignored.
func (u *UI) AddContainer(name string, bounds shape.Rect, cfg ContainerConfig) {
	if cfg.Style == "" {
		cfg.Style = StyleDefaultContainer
	}
	c := &Container{
		Name:      name,
		Bounds:    bounds,
		Style:     cfg.Style,
		PaddingX:  cfg.PaddingX,
		PaddingY:  cfg.PaddingY,
		MaxWidth:  cfg.MaxWidth,
		MaxHeight: cfg.MaxHeight,
	}
	if !u.containers.add(name, c) {
		skip("container already registered", slog.String("container", name))
	}
}

// ToggleVisibility flips a container's visibility flag.
// An unknown name is logged and ignored.
func (u *UI) ToggleVisibility(name string) {
	c, ok := u.containers.get(name)
	if !ok {
		skip("toggle of unknown container", slog.String("container", name))
		return
	}
	c.visible = !c.visible
}

// IsVisible reports whether widgets of the named container are shown and
// interactive: the master switch is on, the container exists and its flag is set.
func (u *UI) IsVisible(name string) bool {
	if !u.master {
		return false
	}
	c, ok := u.containers.get(name)
	return ok && c.visible
}

// Container returns the named container, or nil.
func (u *UI) Container(name string) *Container {
	c, _ := u.containers.get(name)
	return c
}

// resolveContainer looks up the owner of a widget being registered.
func (u *UI) resolveContainer(container, kind, name string) (*Container, bool) {
	c, ok := u.containers.get(container)
	if !ok {
		skip("container not found", slog.String("kind", kind), slog.String("name", name), slog.String("container", container))
	}
	return c, ok
}
