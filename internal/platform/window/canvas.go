package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/jumper/internal/core"
)

// Canvas draws jump game shapes onto an Ebitengine image.
type Canvas struct {
	dst    *ebiten.Image
	square *ebiten.Image // 1x1 white pixel scaled into rotated squares
}

// NewCanvas creates a canvas. Call Begin before drawing each frame.
func NewCanvas() *Canvas {
	square := ebiten.NewImage(1, 1)
	square.Fill(color.White)
	return &Canvas{square: square}
}

// Begin sets the frame's destination image.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the whole frame.
func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

// FillRect draws a filled axis-aligned rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

// FillSquare draws a square of side size rotated by angle around center.
func (c *Canvas) FillSquare(center core.Point, size int, angle float64, col core.Color) {
	if size <= 0 {
		return
	}
	half := float64(size) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size), float64(size))
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.ColorScale.ScaleWithColor(rgba(col))
	c.dst.DrawImage(c.square, op)
}
