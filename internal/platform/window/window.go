// Package window runs the jump game in a native window with Ebitengine,
// drawing the pixel world directly.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jump"
)

// Game implements ebiten.Game around the jump game.
type Game struct {
	game    *jump.Game
	canvas  *Canvas
	logger  *log.Logger
	keys    []ebiten.Key
	seed    int64
	viewW   int
	viewH   int
	started time.Time
}

// New creates the window host. A zero seed uses the current time.
func New(cfg config.JumpConfig, seed int64, logger *log.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		game:    jump.New(cfg, seed),
		canvas:  NewCanvas(),
		logger:  logger,
		seed:    seed,
		viewW:   cfg.Viewport.Width,
		viewH:   cfg.Viewport.Height,
		started: time.Now(),
	}
}

// Update advances the simulation by one fixed tick of 1/TPS seconds.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.game.Update(dt, g.viewW, g.viewH)
	return nil
}

// handleInput processes keys pressed since the previous tick.
func (g *Game) handleInput() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.applyAction(actionForKey(k), k); err != nil {
			return err
		}
	}
	return nil
}

// applyAction performs a host action triggered by key k. Quitting returns
// ebiten.Termination.
func (g *Game) applyAction(action core.Action, k ebiten.Key) error {
	switch action {
	case core.ActionQuit:
		st := g.game.Stats()
		g.logger.Info("game ended", "ticks", st.Ticks, "elapsed", st.Elapsed, "speed", st.Speed)
		return ebiten.Termination
	case core.ActionPause:
		g.game.TogglePause()
		g.logger.Info("pause toggled", "paused", g.game.Paused())
	case core.ActionRestart:
		g.seed = time.Now().UnixNano()
		g.game.Reset(g.seed)
		g.logger.Info("game restarted", "seed", g.seed)
	case core.ActionReport:
		g.report(k)
	}
	return nil
}

// report logs the tick count and elapsed wall time on every unbound key
// press.
func (g *Game) report(k ebiten.Key) {
	st := g.game.Stats()
	g.logger.Info("elapsed",
		"key", k.String(),
		"ticks", st.Ticks,
		"seconds", int(time.Since(g.started).Seconds()),
		"speed", fmt.Sprintf("%.3f", st.Speed),
		"obstacles", st.Obstacles,
	)
}

// actionForKey maps a window key to a host action.
func actionForKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyEscape:
		return core.ActionQuit
	case ebiten.KeyP:
		return core.ActionPause
	case ebiten.KeyR:
		return core.ActionRestart
	default:
		return core.ActionReport
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.game.Draw(g.canvas, g.viewW, g.viewH)
}

// Layout records the window size as the viewport for the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW, g.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg config.JumpConfig, seed int64, tps int, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(false)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	g := New(cfg, seed, logger)
	logger.Info("window opened", "seed", g.seed, "size", fmt.Sprintf("%dx%d", cfg.Viewport.Width, cfg.Viewport.Height), "tps", ebiten.TPS())

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// rgba converts a palette entry to an image color.
func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
