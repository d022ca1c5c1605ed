package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jump"
)

// footerRows is the number of terminal rows reserved for the help line.
const footerRows = 1

// Model is the Bubble Tea model running the jump game.
type Model struct {
	game       *jump.Game
	screen     *core.Screen
	canvas     *CellCanvas
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the jump game.
func NewModel(cfg config.JumpConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH-footerRows)
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:       jump.New(cfg, rt.Seed),
		screen:     screen,
		canvas:     NewCellCanvas(screen, core.NewProjection(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)),
		config:     rt,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	w, h := m.canvas.Viewport()
	m.logger.Info("game started", "seed", m.config.Seed, "viewport", fmt.Sprintf("%dx%d", w, h), "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		st := m.game.Stats()
		m.logger.Info("game ended", "ticks", st.Ticks, "elapsed", st.Elapsed, "speed", st.Speed)
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	if action == core.ActionReport {
		m.logger.Debug("key pressed", "key", msg.String())
	}
	return m, nil
}

// handleResize changes the viewport; the simulation keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width

	w, h := m.canvas.Viewport()
	m.logger.Debug("viewport resized", "width", w, "height", h)
	return m, nil
}

// handleTick applies pending actions and advances the game by the wall time
// since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.applyInput()

	w, h := m.canvas.Viewport()
	m.game.Update(dt, w, h)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyInput handles host actions collected since the last tick.
func (m *Model) applyInput() {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config.Seed)
		m.logger.Info("game restarted", "seed", m.config.Seed)
	}

	if m.inputFrame.Has(core.ActionPause) {
		m.game.TogglePause()
		m.logger.Info("pause toggled", "paused", m.game.Paused())
	}

	if m.inputFrame.Has(core.ActionReport) {
		st := m.game.Stats()
		m.logger.Info("elapsed", "ticks", st.Ticks, "seconds", fmt.Sprintf("%.2f", st.Elapsed),
			"speed", fmt.Sprintf("%.3f", st.Speed), "obstacles", st.Obstacles)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("jump_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the game and the HUD into the screen buffer.
func (m Model) draw() {
	w, h := m.canvas.Viewport()
	m.game.Draw(m.canvas, w, h)

	st := m.game.Stats()
	hud := fmt.Sprintf(" Speed: %.1f px/s  Obstacles: %d ", st.Speed, st.Obstacles)
	m.screen.DrawText(1, 0, hud, core.ColorHUD)

	if m.game.Paused() {
		msg := " PAUSED "
		m.screen.DrawText((m.screen.Width()-len(msg))/2, m.screen.Height()/2, msg, core.ColorHUD)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the running game.
func (m Model) Game() *jump.Game {
	return m.game
}

// Run starts the Bubble Tea program for the jump game.
func Run(cfg config.JumpConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
