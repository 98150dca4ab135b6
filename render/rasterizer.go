// Package render defines the rasterizer contract consumed by the widget layer
// and the priority-ordered element batches of the raw drawing path.
package render

import "github.com/agiangrant/overlay/shape"

// Rasterizer turns draw commands into pixels.
//
// A frame is ClearScreen, any number of Draw calls, then Present.
// Implementations are driven from a single goroutine and need not be
// safe for concurrent use.
type Rasterizer interface {
	// ClearScreen clears the frame buffer to the given color.
	ClearScreen(r, g, b, a float32)

	// Present displays the frame buffer.
	Present()

	// Draw submits one shape. Rectangles with Rounding > 0 are tessellated
	// with rounded corners, Rounding == 0 draws a sharp quad.
	Draw(cmd shape.DrawCommand)
}

// DrawAll submits every command in order.
func DrawAll(r Rasterizer, cmds []shape.DrawCommand) {
	for _, cmd := range cmds {
		r.Draw(cmd)
	}
}
