package shape

// Kind identifies the variant held by a DrawCommand.
type Kind uint8

const (
	KindRectangle Kind = iota
	KindCircle
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	}
	return "unknown"
}

// DrawCommand describes one shape submission. It is a closed sum type:
// the only implementations are RectCommand, CircleCommand and TriangleCommand.
// Consumers switch on the concrete type.
type DrawCommand interface {
	Kind() Kind
	drawCommand()
}

// RectCommand draws a filled, optionally rounded, rectangle.
type RectCommand struct{ Rect }

// CircleCommand draws a filled circle.
type CircleCommand struct{ Circle }

// TriangleCommand draws a filled triangle.
type TriangleCommand struct{ Triangle }

func (RectCommand) Kind() Kind     { return KindRectangle }
func (CircleCommand) Kind() Kind   { return KindCircle }
func (TriangleCommand) Kind() Kind { return KindTriangle }

func (RectCommand) drawCommand()     {}
func (CircleCommand) drawCommand()   {}
func (TriangleCommand) drawCommand() {}

// NewRectangle returns a rectangle command.
func NewRectangle(x, y, width, height, rounding float32, color Color) DrawCommand {
	return RectCommand{Rect{X: x, Y: y, Width: width, Height: height, Rounding: rounding, Color: color}}
}

// NewRect returns a rectangle command drawing r as-is.
func NewRect(r Rect) DrawCommand {
	return RectCommand{r}
}

// NewCircle returns a circle command with DefaultCircleSegments segments.
func NewCircle(centerX, centerY, radius float32, color Color) DrawCommand {
	return NewCircleSegments(centerX, centerY, radius, color, DefaultCircleSegments)
}

// NewCircleSegments returns a circle command with an explicit segment count.
func NewCircleSegments(centerX, centerY, radius float32, color Color, segments int) DrawCommand {
	return CircleCommand{Circle{CenterX: centerX, CenterY: centerY, Radius: radius, Color: color, Segments: segments}}
}

// NewTriangle returns a triangle command.
func NewTriangle(x1, y1, x2, y2, x3, y3 float32, color Color) DrawCommand {
	return TriangleCommand{Triangle{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3, Color: color}}
}
