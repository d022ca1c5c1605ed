package tui

import (
	"math"

	"github.com/vovakirdan/jumper/internal/core"
)

// Glyphs used when projecting pixels onto cells.
const (
	GroundChar     = '═'
	ObstacleChar   = '▓'
	RunnerFlatChar = '■'
	RunnerTiltChar = '◆'
)

// CellCanvas draws pixel-space shapes onto a character Screen.
// Every cell touched by a shape is filled.
type CellCanvas struct {
	screen *core.Screen
	proj   core.Projection
}

// NewCellCanvas creates a canvas over screen using the given projection.
func NewCellCanvas(screen *core.Screen, proj core.Projection) *CellCanvas {
	return &CellCanvas{screen: screen, proj: proj}
}

// Viewport returns the pixel size covered by the screen.
func (c *CellCanvas) Viewport() (w, h int) {
	return c.proj.Viewport(c.screen.Width(), c.screen.Height())
}

// Clear blanks the screen. The terminal background stands in for the
// window's grey.
func (c *CellCanvas) Clear(core.Color) {
	c.screen.Clear()
}

// FillRect fills every cell covered by r.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	c.screen.DrawRect(c.proj.CellRect(r), glyphFor(col), col)
}

// FillSquare fills the cells covered by the bounding box of a square of side
// size rotated by angle around center.
func (c *CellCanvas) FillSquare(center core.Point, size int, angle float64, col core.Color) {
	sin, cos := math.Sincos(angle)
	half := float64(size) / 2 * (math.Abs(cos) + math.Abs(sin))
	ext := int(math.Ceil(half))

	box := core.RectFromCorners(center.X-ext, center.Y-ext, center.X+ext, center.Y+ext)

	glyph := RunnerFlatChar
	// Within 22.5 degrees of a diagonal the square reads as a diamond.
	if q := math.Mod(angle, math.Pi/2); math.Abs(q-math.Pi/4) < math.Pi/8 {
		glyph = RunnerTiltChar
	}
	c.screen.DrawRect(c.proj.CellRect(box), glyph, col)
}

func glyphFor(col core.Color) rune {
	switch col {
	case core.ColorGround:
		return GroundChar
	case core.ColorObstacle:
		return ObstacleChar
	default:
		return '█'
	}
}
