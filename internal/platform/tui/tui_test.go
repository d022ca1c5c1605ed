package tui

import (
	"io"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"space reports", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionReport},
		{"x reports", runeKey('x'), core.ActionReport},
		{"ctrl+s is not a game action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestCellCanvasFillRect(t *testing.T) {
	screen := core.NewScreen(10, 5)
	c := NewCellCanvas(screen, core.NewProjection(8, 16))

	w, h := c.Viewport()
	if w != 80 || h != 80 {
		t.Fatalf("Viewport() = (%d, %d), expected (80, 80)", w, h)
	}

	// A 10x20 obstacle at (17, 20) covers columns 2-3 and rows 1-2
	c.FillRect(core.NewRect(17, 20, 10, 20), core.ColorObstacle)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			want := ' '
			if x >= 2 && x <= 3 && y >= 1 && y <= 2 {
				want = ObstacleChar
			}
			if got := screen.Get(x, y); got != want {
				t.Errorf("cell (%d, %d) = %q, expected %q", x, y, got, want)
			}
		}
	}
	if screen.GetCell(2, 1).Color != core.ColorObstacle {
		t.Error("obstacle cells should carry the obstacle color")
	}
}

func TestCellCanvasOffscreenIsClipped(t *testing.T) {
	screen := core.NewScreen(4, 4)
	c := NewCellCanvas(screen, core.NewProjection(8, 16))

	c.FillRect(core.NewRect(-50, 0, 10, 20), core.ColorObstacle)
	c.FillRect(core.NewRect(500, 0, 10, 20), core.ColorObstacle)

	if strings.ContainsRune(screen.String(), ObstacleChar) {
		t.Errorf("off-screen obstacles should not be drawn:\n%s", screen.String())
	}
}

func TestCellCanvasFillSquareGlyph(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewCellCanvas(screen, core.NewProjection(8, 16))

	c.FillSquare(core.Point{X: 40, Y: 80}, 16, 0, core.ColorRunner)
	if screen.Get(5, 5) != RunnerFlatChar {
		t.Errorf("unrotated square should use %q, got %q", RunnerFlatChar, screen.Get(5, 5))
	}

	screen.Clear()
	c.FillSquare(core.Point{X: 40, Y: 80}, 16, math.Pi/4, core.ColorRunner)
	if screen.Get(5, 5) != RunnerTiltChar {
		t.Errorf("diagonal square should use %q, got %q", RunnerTiltChar, screen.Get(5, 5))
	}
}

func newTestModel() Model {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}
	return NewModel(config.DefaultJumpConfig(), rt, log.New(io.Discard))
}

func TestModelTickUsesWallClockDelta(t *testing.T) {
	m := newTestModel()
	start := time.Unix(1000, 0)

	next, _ := m.Update(TickMsg(start))
	m = next.(Model)
	st := m.Game().Stats()
	if st.Ticks != 1 || st.Elapsed != 0 {
		t.Fatalf("first tick should have dt = 0, got %+v", st)
	}
	if st.Obstacles != 1 {
		t.Errorf("first tick should spawn an obstacle, got %d", st.Obstacles)
	}

	next, _ = m.Update(TickMsg(start.Add(250 * time.Millisecond)))
	m = next.(Model)
	if got := m.Game().Stats().Elapsed; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("expected 0.25s elapsed, got %v", got)
	}
}

func TestModelViewportFromTerminal(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(TickMsg(time.Unix(0, 0)))
	m = next.(Model)

	// 80x24 cells (one row for help) at 8x16 px
	w, h := m.Game().Scroller().Viewport()
	if w != 640 || h != 384 {
		t.Errorf("viewport = (%d, %d), expected (640, 384)", w, h)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 41})
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Unix(1, 0)))
	m = next.(Model)

	w, h = m.Game().Scroller().Viewport()
	if w != 800 || h != 640 {
		t.Errorf("viewport after resize = (%d, %d), expected (800, 640)", w, h)
	}
	if m.Game().Stats().Ticks != 2 {
		t.Error("resize should not reset the game")
	}
}

func TestModelPauseAndRestart(t *testing.T) {
	m := newTestModel()
	now := time.Unix(0, 0)

	for i := 0; i < 10; i++ {
		next, _ := m.Update(TickMsg(now.Add(time.Duration(i) * 100 * time.Millisecond)))
		m = next.(Model)
	}

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	next, _ = m.Update(TickMsg(now.Add(2 * time.Second)))
	m = next.(Model)
	if !m.Game().Paused() {
		t.Fatal("p should pause the game on the next tick")
	}
	ticks := m.Game().Stats().Ticks

	next, _ = m.Update(TickMsg(now.Add(3 * time.Second)))
	m = next.(Model)
	if m.Game().Stats().Ticks != ticks {
		t.Error("paused game should not advance")
	}

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	next, _ = m.Update(TickMsg(now.Add(4 * time.Second)))
	m = next.(Model)
	st := m.Game().Stats()
	if m.Game().Paused() || st.Ticks != 1 || st.Obstacles != 1 {
		t.Errorf("restart should start a fresh unpaused game, got paused=%v %+v", m.Game().Paused(), st)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(TickMsg(time.Unix(0, 0)))
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Speed:") {
		t.Error("View() should include the HUD")
	}
	if !strings.Contains(view, string(GroundChar)) {
		t.Error("View() should include the ground line")
	}
	if !strings.Contains(view, "pause") {
		t.Error("View() should include the help footer")
	}
}
