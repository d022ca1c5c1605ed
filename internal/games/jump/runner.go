package jump

import (
	"math"

	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/scroller"
)

// Runner is the rotating square resting on the ground line. It is purely
// cosmetic and never interacts with obstacles.
type Runner struct {
	X     int     // Left edge in pixels
	Size  int     // Side length in pixels
	Spin  float64 // Radians per second
	Angle float64 // Current rotation in radians, kept in [0, 2*Pi)
}

// Update advances the rotation by dt seconds.
func (r *Runner) Update(dt float64) {
	if dt <= 0 {
		return
	}
	r.Angle = math.Mod(r.Angle+r.Spin*dt, 2*math.Pi)
	if r.Angle < 0 {
		r.Angle += 2 * math.Pi
	}
}

// Center returns the square's center for a viewport height.
func (r Runner) Center(viewH int) core.Point {
	half := r.Size / 2
	return core.Point{X: r.X + half, Y: scroller.GroundY(viewH) - half}
}
