package raster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/overlay/shape"
)

var red = shape.RGBA(1, 0, 0, 1)

func assertOpaqueRed(t *testing.T, img *image.RGBA, x, y int) {
	t.Helper()
	c := img.RGBAAt(x, y)
	assert.Greater(t, c.R, uint8(250), "R at (%d,%d)", x, y)
	assert.Zero(t, c.G)
	assert.Greater(t, c.A, uint8(250), "A at (%d,%d)", x, y)
}

func assertEmpty(t *testing.T, img *image.RGBA, x, y int) {
	t.Helper()
	assert.Zero(t, img.RGBAAt(x, y).A, "alpha at (%d,%d)", x, y)
}

func TestClearScreen(t *testing.T) {
	s := New(4, 4)
	s.ClearScreen(0, 0, 1, 1)
	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, uint8(255), s.Image().RGBAAt(x, y).B)
		}
	}

	s.ClearScreen(0, 0, 0, 0)
	assertEmpty(t, s.Image(), 2, 2)
}

func TestDrawSharpRectangle(t *testing.T) {
	s := New(20, 20)
	s.Draw(shape.NewRectangle(5, 5, 10, 10, 0, red))

	assertOpaqueRed(t, s.Image(), 5, 5)
	assertOpaqueRed(t, s.Image(), 14, 14)
	assertEmpty(t, s.Image(), 4, 4)
	assertEmpty(t, s.Image(), 15, 15)
}

func TestDrawRoundedRectangleCutsCorners(t *testing.T) {
	s := New(40, 40)
	s.Draw(shape.NewRectangle(0, 0, 40, 40, 10, red))

	assertEmpty(t, s.Image(), 0, 0)
	assertEmpty(t, s.Image(), 39, 39)
	assertOpaqueRed(t, s.Image(), 20, 20)
	assertOpaqueRed(t, s.Image(), 20, 0)
	assertOpaqueRed(t, s.Image(), 0, 20)
}

func TestDrawCircle(t *testing.T) {
	s := New(40, 40)
	s.Draw(shape.NewCircleSegments(20, 20, 10, red, 0))

	assertOpaqueRed(t, s.Image(), 20, 20)
	assertOpaqueRed(t, s.Image(), 12, 20)
	assertEmpty(t, s.Image(), 11, 11)
	assertEmpty(t, s.Image(), 35, 20)
}

func TestDrawTriangle(t *testing.T) {
	s := New(20, 20)
	s.Draw(shape.NewTriangle(0, 0, 20, 0, 0, 20, red))

	assertOpaqueRed(t, s.Image(), 2, 2)
	assertEmpty(t, s.Image(), 18, 18)
}

func TestDegenerateShapesDrawNothing(t *testing.T) {
	s := New(10, 10)
	s.Draw(shape.NewRectangle(2, 2, 0, 5, 0, red))
	s.Draw(shape.NewCircle(5, 5, 0, red))

	for y := range 10 {
		for x := range 10 {
			assertEmpty(t, s.Image(), x, y)
		}
	}
}

func TestSourceOverBlending(t *testing.T) {
	s := New(4, 4)
	s.ClearScreen(0, 0, 1, 1)
	s.Draw(shape.NewRectangle(0, 0, 4, 4, 0, shape.RGBA(1, 0, 0, 0.5)))

	c := s.Image().RGBAAt(1, 1)
	assert.InDelta(t, 128, int(c.R), 3)
	assert.InDelta(t, 128, int(c.B), 3)
	assert.Equal(t, uint8(255), c.A)
}

func TestPresentAndPNG(t *testing.T) {
	s := New(8, 8)
	presented := 0
	s.OnPresent(func(frame *image.RGBA) {
		presented++
		assert.Same(t, s.Image(), frame)
	})

	s.Draw(shape.NewRectangle(0, 0, 8, 8, 0, red))
	s.Present()
	s.Present()
	assert.Equal(t, 2, presented)
	assert.Equal(t, uint64(2), s.Frames())

	var buf bytes.Buffer
	require.NoError(t, s.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}
