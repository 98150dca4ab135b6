package render

import (
	"log/slog"

	"github.com/agiangrant/overlay/shape"
)

// Element is a named batch of draw commands with a compositing priority.
type Element struct {
	Name     string
	Priority int // Compositing order (lower = further back)
	Commands []shape.DrawCommand
}

// Batches is the raw element path: callers register whole command batches
// under a name and draw them individually or all at once in priority order.
// It is independent of the widget registries.
//
// Batches is not safe for concurrent use.
type Batches struct {
	target Rasterizer

	// Kept sorted by (Priority, Name)
	elements []*Element
	byName   map[string]*Element
}

// NewBatches returns an empty batch set drawing into r.
func NewBatches(r Rasterizer) *Batches {
	return &Batches{
		target: r,
		byName: make(map[string]*Element),
	}
}

// RegisterElement stores a batch under name, replacing any previous batch
// with the same name. The commands slice is copied.
func (b *Batches) RegisterElement(name string, priority int, cmds []shape.DrawCommand) {
	e := &Element{
		Name:     name,
		Priority: priority,
		Commands: append([]shape.DrawCommand(nil), cmds...),
	}

	if old, ok := b.byName[name]; ok {
		for i, el := range b.elements {
			if el == old {
				b.elements = append(b.elements[:i], b.elements[i+1:]...)
				break
			}
		}
	}

	b.elements = append(b.elements, e)
	b.byName[name] = e
	b.sortElements()
}

// DrawElement draws a single batch. Unknown names are logged and ignored.
func (b *Batches) DrawElement(name string) {
	e, ok := b.byName[name]
	if !ok {
		Logger().Debug("element not found", slog.String("name", name))
		return
	}
	DrawAll(b.target, e.Commands)
}

// DrawAll draws every batch in ascending priority.
func (b *Batches) DrawAll() {
	for _, e := range b.elements {
		DrawAll(b.target, e.Commands)
	}
}

// Clear removes every batch.
func (b *Batches) Clear() {
	b.elements = nil
	b.byName = make(map[string]*Element)
}

// Element returns the batch registered under name, or nil.
func (b *Batches) Element(name string) *Element {
	return b.byName[name]
}

// Len returns the number of registered batches.
func (b *Batches) Len() int {
	return len(b.elements)
}

// sortElements sorts by Priority, then Name.
func (b *Batches) sortElements() {
	// Simple insertion sort since element count is typically small
	for i := 1; i < len(b.elements); i++ {
		for j := i; j > 0 && less(b.elements[j], b.elements[j-1]); j-- {
			b.elements[j], b.elements[j-1] = b.elements[j-1], b.elements[j]
		}
	}
}

func less(a, b *Element) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Name < b.Name
}
