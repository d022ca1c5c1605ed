// Package jump implements the side-scrolling obstacle game: a rotating square
// on a ground line while obstacles stream in from the right at an ever
// increasing speed. There is no collision, scoring or game over.
package jump

import (
	"math/rand"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/scroller"
)

// Canvas is the drawing surface a host provides, in pixel coordinates.
type Canvas interface {
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	FillSquare(center core.Point, size int, angle float64, c core.Color)
}

// Stats is a snapshot of the simulation counters.
type Stats struct {
	Ticks     int     // Unpaused ticks since the last reset
	Elapsed   float64 // Seconds simulated since the last reset
	Speed     float64 // Current scroll speed in pixels per second
	Obstacles int     // Live obstacles
}

// Game owns the scroller and the runner.
type Game struct {
	cfg      config.JumpConfig
	scroller *scroller.Scroller
	runner   Runner
	ticks    int
	elapsed  float64
	paused   bool
}

// New creates a game from a configuration, seeding obstacle spacing with seed.
func New(cfg config.JumpConfig, seed int64) *Game {
	g := &Game{
		cfg:      cfg,
		scroller: scroller.New(ScrollerOptions(cfg), nil),
	}
	g.Reset(seed)
	return g
}

// ScrollerOptions converts the obstacle and scroll sections of a config.
func ScrollerOptions(cfg config.JumpConfig) scroller.Options {
	return scroller.Options{
		Width:      cfg.Obstacles.Width,
		Height:     cfg.Obstacles.Height,
		MinOffset:  cfg.Obstacles.MinOffset,
		MaxOffset:  cfg.Obstacles.MaxOffset,
		StartSpeed: cfg.Scroll.StartSpeed,
		SpeedStep:  cfg.Scroll.SpeedStep,
	}
}

// Reset clears obstacles and counters and reseeds the spacing jitter.
func (g *Game) Reset(seed int64) {
	g.scroller.Reset(rand.New(rand.NewSource(seed)))
	g.runner = Runner{
		X:    g.cfg.Runner.X,
		Size: g.cfg.Runner.Size,
		Spin: g.cfg.Runner.Spin,
	}
	g.ticks = 0
	g.elapsed = 0
	g.paused = false
}

// Update advances the game by dt seconds on a viewW x viewH pixel viewport.
func (g *Game) Update(dt float64, viewW, viewH int) {
	if g.paused {
		return
	}
	if dt < 0 {
		dt = 0
	}

	g.ticks++
	g.elapsed += dt

	g.scroller.Tick(dt, viewW, viewH)
	g.runner.Update(dt)
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Stats returns the current counters.
func (g *Game) Stats() Stats {
	return Stats{
		Ticks:     g.ticks,
		Elapsed:   g.elapsed,
		Speed:     g.scroller.Speed(),
		Obstacles: g.scroller.Len(),
	}
}

// Scroller exposes the obstacle stream for read access.
func (g *Game) Scroller() *scroller.Scroller {
	return g.scroller
}

// Runner returns the runner state.
func (g *Game) Runner() Runner {
	return g.runner
}

// Draw renders one frame: background, ground line, obstacles, runner.
func (g *Game) Draw(c Canvas, viewW, viewH int) {
	c.Clear(core.ColorBackground)

	groundY := scroller.GroundY(viewH)
	if g.cfg.Ground.Thickness > 0 {
		c.FillRect(core.RectFromCorners(0, groundY, viewW, groundY+g.cfg.Ground.Thickness), core.ColorGround)
	}

	for r := range g.scroller.Rects() {
		c.FillRect(r, core.ColorObstacle)
	}

	if g.runner.Size > 0 {
		c.FillSquare(g.runner.Center(viewH), g.runner.Size, g.runner.Angle, core.ColorRunner)
	}
}
