package core

// Projection maps pixel-space geometry onto a grid of character cells.
// Each cell covers CellW x CellH pixels.
type Projection struct {
	CellW int
	CellH int
}

// NewProjection creates a projection, treating non-positive cell sizes as 1.
func NewProjection(cellW, cellH int) Projection {
	return Projection{CellW: Max(cellW, 1), CellH: Max(cellH, 1)}
}

// Viewport returns the pixel size covered by a grid of cols x rows cells.
func (p Projection) Viewport(cols, rows int) (w, h int) {
	return cols * p.CellW, rows * p.CellH
}

// CellRect returns the smallest cell rectangle covering the pixel rectangle r.
// A non-empty pixel rectangle always covers at least one cell.
func (p Projection) CellRect(r Rect) Rect {
	if r.Empty() {
		return Rect{}
	}
	x0 := floorDiv(r.X, p.CellW)
	y0 := floorDiv(r.Y, p.CellH)
	x1 := ceilDiv(r.Right(), p.CellW)
	y1 := ceilDiv(r.Bottom(), p.CellH)
	return RectFromCorners(x0, y0, x1, y1)
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity. b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
