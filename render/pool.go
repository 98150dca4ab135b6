package render

import (
	"sync"

	"github.com/agiangrant/overlay/shape"
)

// ============================================================================
// Command Slice Pooling
// ============================================================================
//
// Styles are re-resolved for every element on every frame. Pooling the
// command slices keeps the draw pass from allocating per element.
//
// Usage:
//   cmds := AcquireCommands()
//   cmds = append(cmds, styleCommands...)
//   ... draw cmds ...
//   ReleaseCommands(cmds)

var commandPool = sync.Pool{
	New: func() any {
		s := make([]shape.DrawCommand, 0, 8)
		return &s
	},
}

// AcquireCommands returns an empty command slice from the pool.
// Callers must hand it back with ReleaseCommands.
func AcquireCommands() []shape.DrawCommand {
	return (*commandPool.Get().(*[]shape.DrawCommand))[:0]
}

// ReleaseCommands returns a command slice to the pool.
// The slice must not be used afterwards.
func ReleaseCommands(cmds []shape.DrawCommand) {
	if cmds == nil {
		return
	}

	// Clear to avoid holding references
	clear(cmds)

	// Only pool slices up to a reasonable size to avoid memory bloat
	if cap(cmds) <= 256 {
		cmds = cmds[:0]
		commandPool.Put(&cmds)
	}
}
