package scroller

import "github.com/vovakirdan/jumper/internal/core"

// Obstacle is a fixed-size rectangle scrolling from right to left.
type Obstacle struct {
	X      int // Left edge in screen pixels
	Y      int // Top edge in screen pixels
	Width  int // Fixed at creation
	Height int // Fixed at creation
}

// Rect returns the obstacle's rectangle in screen coordinates.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Corners returns the draw coordinates (x0, y0, x1, y1) of the obstacle.
func (o Obstacle) Corners() (x0, y0, x1, y1 float64) {
	return o.Rect().Corners()
}
