// Package core provides fundamental types and utilities shared by the game
// logic and its hosts. It contains no external dependencies (no Bubble Tea, no
// Ebitengine) to keep game logic pure and testable.
package core

// Point is an integer position in screen pixel coordinates.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners creates a rectangle spanning (x0, y0) to (x1, y1), exclusive.
func RectFromCorners(x0, y0, x1, y1 int) Rect {
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Corners returns the draw coordinates (x0, y0, x1, y1) of the rectangle.
func (r Rect) Corners() (x0, y0, x1, y1 float64) {
	return float64(r.X), float64(r.Y), float64(r.Right()), float64(r.Bottom())
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
