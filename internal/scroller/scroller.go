// Package scroller maintains the obstacle stream of the side-scroller: obstacles
// spawn past the right edge, drift left by a time-accumulated amount and are
// culled once they leave the left edge.
//
// A Scroller is owned by a single update loop and is not safe for concurrent use.
package scroller

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/jumper/internal/core"
)

// Rand is the random source used to jitter obstacle spacing.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Options configures obstacle geometry, spacing and speed.
type Options struct {
	Width      int     // Obstacle width in pixels
	Height     int     // Obstacle height in pixels
	MinOffset  int     // Spawn offset past the right edge, inclusive
	MaxOffset  int     // Spawn offset past the right edge, exclusive
	StartSpeed float64 // Initial scroll speed in pixels per second
	SpeedStep  float64 // Speed added after every tick
}

// DefaultOptions returns 10x20 obstacles with a spawn offset of 25-300 px,
// scrolling from 200 px/s and gaining 0.001 px/s per tick.
func DefaultOptions() Options {
	return Options{
		Width:      10,
		Height:     20,
		MinOffset:  25,
		MaxOffset:  300,
		StartSpeed: 200,
		SpeedStep:  0.001,
	}
}

// normalized replaces unusable fields with their defaults. Only negative
// speeds are unusable: a zero StartSpeed or SpeedStep is kept, so a scroller
// may stand still or never accelerate.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.MinOffset >= o.MaxOffset {
		o.MinOffset, o.MaxOffset = def.MinOffset, def.MaxOffset
	}
	if o.StartSpeed < 0 {
		o.StartSpeed = def.StartSpeed
	}
	if o.SpeedStep < 0 {
		o.SpeedStep = def.SpeedStep
	}
	return o
}

// Scroller owns the ordered obstacle sequence. Index 0 is the oldest and
// leftmost obstacle; the last element is the most recently spawned.
type Scroller struct {
	opts      Options
	obstacles []Obstacle
	pending   float64 // Fractional displacement not yet applied
	speed     float64 // Pixels per second
	viewW     int
	viewH     int
	rng       Rand
}

// New creates an empty scroller. A nil rng uses a math/rand source seeded with 1.
func New(opts Options, rng Rand) *Scroller {
	s := &Scroller{
		opts:      opts.normalized(),
		obstacles: make([]Obstacle, 0, 8),
	}
	s.Reset(rng)
	return s
}

// Reset clears all obstacles and restores the starting speed.
func (s *Scroller) Reset(rng Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s.rng = rng
	s.obstacles = s.obstacles[:0]
	s.pending = 0
	s.speed = s.opts.StartSpeed
}

// Tick runs one update step: advance, cull, spawn, then speed up.
// Negative dt and viewport sizes are treated as zero.
func (s *Scroller) Tick(dt float64, viewW, viewH int) {
	s.viewW = max(viewW, 0)
	s.viewH = max(viewH, 0)

	s.Advance(dt)
	s.Cull()
	s.MaybeSpawn(s.viewW, s.viewH)

	s.speed += s.opts.SpeedStep
}

// Advance accumulates speed*dt and shifts every obstacle left by the whole
// pixels accumulated so far. The fractional remainder carries to the next call.
func (s *Scroller) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.pending += s.speed * dt

	px := int(s.pending)
	if px < 1 {
		return
	}
	for i := range s.obstacles {
		s.obstacles[i].X -= px
	}
	s.pending -= float64(px)
}

// MaybeSpawn appends one obstacle when the sequence is empty or the newest
// obstacle has scrolled left of viewW. It reports whether it spawned.
func (s *Scroller) MaybeSpawn(viewW, viewH int) bool {
	if n := len(s.obstacles); n > 0 && s.obstacles[n-1].X >= viewW {
		return false
	}

	offset := s.opts.MinOffset + s.rng.Intn(s.opts.MaxOffset-s.opts.MinOffset)
	s.obstacles = append(s.obstacles, Obstacle{
		X:      viewW - s.opts.Width + offset,
		Y:      GroundY(viewH) - s.opts.Height,
		Width:  s.opts.Width,
		Height: s.opts.Height,
	})
	return true
}

// Cull removes the oldest obstacle once it is left of x = 0.
// At most one obstacle is removed per call.
func (s *Scroller) Cull() bool {
	if len(s.obstacles) == 0 || s.obstacles[0].X >= 0 {
		return false
	}
	// Shift in place to keep the backing array.
	n := copy(s.obstacles, s.obstacles[1:])
	s.obstacles = s.obstacles[:n]
	return true
}

// GroundY returns the y coordinate of the ground line for a viewport height.
func GroundY(viewH int) int {
	return viewH * 2 / 3
}

// Obstacles returns the live obstacle sequence, oldest first.
// Callers must not modify it.
func (s *Scroller) Obstacles() []Obstacle {
	return s.obstacles
}

// Rects yields the rectangle of every obstacle, oldest first.
// Ranging over it again restarts from the current state.
func (s *Scroller) Rects() iter.Seq[core.Rect] {
	return func(yield func(core.Rect) bool) {
		for _, o := range s.obstacles {
			if !yield(o.Rect()) {
				return
			}
		}
	}
}

// Len returns the number of live obstacles.
func (s *Scroller) Len() int {
	return len(s.obstacles)
}

// Speed returns the current scroll speed in pixels per second.
func (s *Scroller) Speed() float64 {
	return s.speed
}

// Pending returns the accumulated displacement not yet applied.
func (s *Scroller) Pending() float64 {
	return s.pending
}

// Viewport returns the viewport recorded by the last Tick.
func (s *Scroller) Viewport() (w, h int) {
	return s.viewW, s.viewH
}

// Options returns the effective options.
func (s *Scroller) Options() Options {
	return s.opts
}
