// Package raster provides a CPU rasterizer for draw commands. It stands in
// for the GPU renderer in headless runs and snapshot tests.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/agiangrant/overlay/render"
	"github.com/agiangrant/overlay/shape"
)

const (
	// defaultSegments is used for circles submitted with no segment count.
	defaultSegments = 64

	// minCornerSegments bounds the tessellation of each rounded corner.
	minCornerSegments = 4
)

type point struct{ x, y float32 }

// Software draws into an *image.RGBA with source-over compositing.
//
// Every Draw reuses one vector.Rasterizer and one point buffer, so a
// Software must be driven from a single goroutine.
type Software struct {
	img *image.RGBA
	ras *vector.Rasterizer
	pts []point

	// Corner tessellation for rounded rectangles, per full circle.
	segments int

	frames    uint64
	onPresent func(frame *image.RGBA)
}

var _ render.Rasterizer = (*Software)(nil)

// New returns a rasterizer with a transparent width x height frame.
func New(width, height int) *Software {
	return &Software{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:      vector.NewRasterizer(width, height),
		segments: defaultSegments,
	}
}

// OnPresent registers fn to receive the frame on every Present.
// The image is reused by the next frame; copy it to keep it.
func (s *Software) OnPresent(fn func(frame *image.RGBA)) {
	s.onPresent = fn
}

// Image returns the frame buffer.
func (s *Software) Image() *image.RGBA {
	return s.img
}

// Frames returns the number of presented frames.
func (s *Software) Frames() uint64 {
	return s.frames
}

func (s *Software) ClearScreen(r, g, b, a float32) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(shape.RGBA(r, g, b, a)), image.Point{}, draw.Src)
}

func (s *Software) Present() {
	s.frames++
	if s.onPresent != nil {
		s.onPresent(s.img)
	}
}

func (s *Software) Draw(cmd shape.DrawCommand) {
	switch c := cmd.(type) {
	case shape.RectCommand:
		s.drawRect(c.Rect)
	case shape.CircleCommand:
		s.drawCircle(c.Circle)
	case shape.TriangleCommand:
		t := c.Triangle
		s.pts = append(s.pts[:0], point{t.X1, t.Y1}, point{t.X2, t.Y2}, point{t.X3, t.Y3})
		s.fill(t.Color)
	default:
		render.Logger().Debug("unsupported draw command", slog.String("type", fmt.Sprintf("%T", cmd)))
	}
}

// WritePNG encodes the current frame.
func (s *Software) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

func (s *Software) drawRect(r shape.Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	radius := math32.Min(r.Rounding, math32.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		s.pts = append(s.pts[:0],
			point{r.X, r.Y},
			point{r.X + r.Width, r.Y},
			point{r.X + r.Width, r.Y + r.Height},
			point{r.X, r.Y + r.Height},
		)
		s.fill(r.Color)
		return
	}

	steps := max(minCornerSegments, s.segments/4)
	s.pts = s.pts[:0]
	// Corners clockwise on screen (y grows downward): top-left, top-right,
	// bottom-right, bottom-left, each sweeping 90°.
	corners := [4]struct {
		cx, cy float32
		start  float32
	}{
		{r.X + radius, r.Y + radius, math32.Pi},
		{r.X + r.Width - radius, r.Y + radius, 1.5 * math32.Pi},
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, 0.5 * math32.Pi},
	}
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			theta := c.start + (math32.Pi/2)*float32(i)/float32(steps)
			s.pts = append(s.pts, point{c.cx + radius*math32.Cos(theta), c.cy + radius*math32.Sin(theta)})
		}
	}
	s.fill(r.Color)
}

func (s *Software) drawCircle(c shape.Circle) {
	if c.Radius <= 0 {
		return
	}
	segments := c.Segments
	if segments < 3 {
		segments = defaultSegments
	}
	s.pts = s.pts[:0]
	for i := range segments {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		s.pts = append(s.pts, point{c.CenterX + c.Radius*math32.Cos(theta), c.CenterY + c.Radius*math32.Sin(theta)})
	}
	s.fill(c.Color)
}

// fill rasterizes the closed polygon in s.pts.
func (s *Software) fill(c shape.Color) {
	if len(s.pts) < 3 {
		return
	}
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over

	s.ras.MoveTo(s.pts[0].x, s.pts[0].y)
	for _, p := range s.pts[1:] {
		s.ras.LineTo(p.x, p.y)
	}
	s.ras.ClosePath()
	s.ras.Draw(s.img, b, image.NewUniform(c), image.Point{})
}
