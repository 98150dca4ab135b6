// Package shape defines the geometry, color and draw-command values shared
// by the widget layer and the rasterizers.
package shape

// DefaultCircleSegments is the segment count used by NewCircle.
const DefaultCircleSegments = 48

// Rect is an axis-aligned rectangle with optional corner rounding.
// It is used both as widget bounds and as a draw primitive.
type Rect struct {
	X, Y          float32 // Top-left corner in screen coordinates
	Width, Height float32
	Rounding      float32 // Corner radius, 0 = square corners
	Color         Color
}

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns r shrunk by d on every side. Sizes never go negative.
func (r Rect) Inset(d float32) Rect {
	r.X += d
	r.Y += d
	r.Width -= 2 * d
	r.Height -= 2 * d
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// LocalPoint converts screen coordinates to coordinates relative to the top-left corner.
func (r Rect) LocalPoint(screenX, screenY float32) (localX, localY float32) {
	return screenX - r.X, screenY - r.Y
}

// Circle is a filled circle approximated by Segments edges.
type Circle struct {
	CenterX, CenterY float32
	Radius           float32
	Color            Color
	Segments         int
}

// Triangle is a filled triangle.
type Triangle struct {
	X1, Y1 float32
	X2, Y2 float32
	X3, Y3 float32
	Color  Color
}
