package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/game"
)

func newTestModel(t *testing.T, cfg config.Config) Model {
	t.Helper()
	return NewModel(game.NewSession(cfg, 7), nil, 7, 80, 24)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelLayout(t *testing.T) {
	m := newTestModel(t, config.Default())

	if m.view.cols != 80 || m.view.rows != 22 {
		t.Errorf("playfield = %dx%d, want 80x22", m.view.cols, m.view.rows)
	}
	if m.stick != (widget{cx: 72, cy: 18, rx: 6, ry: 3}) {
		t.Errorf("widget = %+v", m.stick)
	}
	if got := m.session.Snapshot().ViewportHeight; got < 214 || got > 215 {
		t.Errorf("viewport height = %v, want about 214.5", got)
	}
}

func TestModelTitleOverlay(t *testing.T) {
	m := newTestModel(t, config.Default())

	if m.session.State() != game.StateIdle {
		t.Fatalf("state = %s, want Idle", m.session.State())
	}
	view := m.View()
	for _, want := range []string{"Distance:", "FRIDAY BREAKFAST", "Press Enter or click to start"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelNoOverlayStartsRun(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.ShowOverlay = false

	m := newTestModel(t, cfg)
	if m.session.State() != game.StateRunning {
		t.Errorf("state = %s, want Running", m.session.State())
	}
}

func TestModelKeySteering(t *testing.T) {
	m := newTestModel(t, config.Default())
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.State() != game.StateRunning {
		t.Fatalf("state = %s, want Running", m.session.State())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if v := m.session.Joystick().Vector(); v != (game.Vec2{Y: -1}) {
		t.Fatalf("vector = %+v, want {0 -1}", v)
	}

	start := m.session.Snapshot().Player.Y
	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if y := m.session.Snapshot().Player.Y; y != start {
		t.Errorf("first tick moved the player from %v to %v", start, y)
	}

	m, _ = update(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	moved := start - m.session.Snapshot().Player.Y
	if moved < 2.19 || moved > 2.21 {
		t.Errorf("moved %v, want 2.2", moved)
	}

	// No repeat within the hold window releases the key.
	m, _ = update(t, m, TickMsg(t0.Add(time.Second)))
	if v := m.session.Joystick().Vector(); v != (game.Vec2{}) {
		t.Errorf("vector after hold expiry = %+v, want zero", v)
	}
}

func TestModelKeysIgnoredWhileIdle(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	if m.hold.held(game.KeyUp) {
		t.Error("steering keys should be ignored before the run starts")
	}
}

func TestModelMouseDrag(t *testing.T) {
	m := newTestModel(t, config.Default())

	// A click anywhere starts the run.
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.session.State() != game.StateRunning {
		t.Fatalf("state = %s, want Running", m.session.State())
	}

	// Press on the widget center (screen row is one below the playfield row).
	m, _ = update(t, m, tea.MouseMsg{X: 72, Y: 19, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.dragging || !m.session.Joystick().Active() {
		t.Fatal("press on the widget should begin a drag")
	}

	// Three rows up is 36 pointer units: full speed up.
	m, _ = update(t, m, tea.MouseMsg{X: 72, Y: 16, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if v := m.session.Joystick().Vector(); v.X != 0 || v.Y != -1 {
		t.Errorf("vector = %+v, want {0 -1}", v)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 72, Y: 16, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.dragging || m.session.Joystick().Active() {
		t.Error("release should end the drag")
	}
	if v := m.session.Joystick().Vector(); v != (game.Vec2{}) {
		t.Errorf("vector after release = %+v, want zero", v)
	}
}

func TestModelMouseOutsideWidget(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.ShowOverlay = false
	m := newTestModel(t, cfg)

	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.dragging {
		t.Error("press outside the widget should not begin a drag")
	}
}

func TestModelWin(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.ShowOverlay = false
	// Put the goal band over the start position.
	cfg.Goal.Y = cfg.StartY() - 60

	m := newTestModel(t, cfg)
	t0 := time.Unix(1000, 0)
	m, _ = update(t, m, TickMsg(t0))

	if m.session.Outcome() != game.OutcomeWin {
		t.Fatalf("outcome = %s, want Win", m.session.Outcome())
	}
	if view := m.View(); !strings.Contains(view, "You reached Friday Breakfast!") {
		t.Error("win message missing")
	}

	// Enter plays again.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.State() != game.StateRunning {
		t.Errorf("state = %s, want Running", m.session.State())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, config.Default())
	rows := m.view.rows

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Fatal("? should show the full help")
	}
	if m.view.rows >= rows {
		t.Errorf("full help should shrink the playfield: %d -> %d rows", rows, m.view.rows)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.view.cols != 120 || m.view.rows != 38 {
		t.Errorf("playfield = %dx%d, want 120x38", m.view.cols, m.view.rows)
	}
	if m.stick.cx != 112 || m.stick.cy != 34 {
		t.Errorf("widget center = (%d, %d), want (112, 34)", m.stick.cx, m.stick.cy)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.Default())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestEndLines(t *testing.T) {
	if got := endLines(game.OutcomeLose)[0]; got != "Game Over - no breakfast today." {
		t.Errorf("lose line = %q", got)
	}
	if got := endLines(game.OutcomeWin)[0]; got != "You reached Friday Breakfast!" {
		t.Errorf("win line = %q", got)
	}
}
