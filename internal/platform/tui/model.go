package tui

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/core"
	"github.com/vovakirdan/friday-breakfast/internal/game"
)

var (
	hudStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// widget is the on-screen joystick, in playfield cells.
type widget struct {
	cx, cy int // center
	rx, ry int // radii
}

// contains reports whether the cell lies on or inside the widget ring.
func (w widget) contains(col, row int) bool {
	if w.rx <= 0 || w.ry <= 0 {
		return false
	}
	dx := float64(col-w.cx) / float64(w.rx+1)
	dy := float64(row-w.cy) / float64(w.ry+1)
	return dx*dx+dy*dy <= 1
}

// Model is the Bubble Tea model for a Friday Breakfast session.
type Model struct {
	session  *game.Session
	cfg      config.Config
	keys     KeyMap
	help     help.Model
	hold     *keyHold
	render   *renderer
	logger   *log.Logger
	now      func() time.Time
	width    int
	height   int
	view     viewport
	stick    widget
	lastTick time.Time
	dragging bool
	quitting bool
}

// NewModel creates a model around session for a terminal of the given size.
// A nil logger discards log output.
func NewModel(session *game.Session, logger *log.Logger, seed int64, width, height int) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := session.Config()

	h := help.New()
	h.ShowAll = false

	m := Model{
		session: session,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		hold:    newKeyHold(cfg.Input.KeyHold),
		render:  newRenderer(cfg.TUI, seed),
		logger:  logger,
		now:     time.Now,
	}

	session.OnEvent(func(ev game.Event) {
		switch ev.Kind {
		case game.EventStarted:
			logger.Info("run started", "run", ev.RunID, "hazards", ev.Hazards)
		case game.EventWon, game.EventLost:
			logger.Info("run ended", "run", ev.RunID, "event", ev.Kind,
				"elapsed", fmt.Sprintf("%.1fs", ev.Elapsed), "steps", ev.Steps, "distance", ev.Distance)
		default:
			logger.Debug("session event", "event", ev.Kind, "run", ev.RunID)
		}
	})

	m.resize(width, height)
	if !cfg.TUI.ShowOverlay {
		m.start()
	}
	return m
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TUI.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "state", m.session.State())
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	case core.ActionStart:
		if m.session.State() != game.StateRunning {
			m.start()
		}
	}

	if k, ok := steeringKey(action); ok && m.session.State() == game.StateRunning {
		if m.hold.press(k, m.now()) {
			m.session.Joystick().SetKey(k, true)
		}
	}

	return m, nil
}

// handleMouse drives the joystick widget. A press on the widget begins a
// drag; a press anywhere while no run is active starts one.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row := msg.X, msg.Y-1 // playfield starts below the HUD line
	js := m.session.Joystick()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.session.State() != game.StateRunning {
			m.start()
			return m, nil
		}
		if m.stick.contains(col, row) {
			m.dragging = true
			js.SetPointer(m.pointer(col, row))
		}

	case tea.MouseActionMotion:
		if m.dragging {
			js.SetPointer(m.pointer(col, row))
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			js.Release()
		}
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the
// previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.hold.expire(now) {
		m.session.Joystick().SetKey(k, false)
	}

	if m.session.State() == game.StateRunning {
		dt := frameDelta(m.lastTick, now)
		m.lastTick = now
		m.session.Step(dt)
	} else {
		m.lastTick = time.Time{}
	}

	return m, tickCmd(m.cfg.TUI.FPS)
}

// start begins a new run and forgets stale input.
func (m *Model) start() {
	m.hold.clear()
	m.dragging = false
	if m.session.Start() {
		m.lastTick = time.Time{}
	}
}

// resize recomputes the playfield, the world viewport and the widget.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	rows := height - 1 - lipgloss.Height(m.helpView())
	m.view = newViewport(width, max(rows, 1), m.cfg.World.ViewportWidth, m.cfg.TUI.CellWidth, m.cfg.TUI.CellHeight)
	m.session.SetViewportHeight(m.view.height())

	radius := m.cfg.Input.JoystickRadius
	m.stick = widget{
		rx: int(math.Ceil(radius / m.cfg.TUI.CellWidth)),
		ry: int(math.Ceil(radius / m.cfg.TUI.CellHeight)),
	}
	m.stick.cx = m.view.cols - m.stick.rx - 2
	m.stick.cy = m.view.rows - m.stick.ry - 1
	m.session.Joystick().SetOrigin(m.pointer(m.stick.cx, m.stick.cy))

	m.logger.Debug("resized", "cols", m.view.cols, "rows", m.view.rows, "viewport", m.view.height())
}

// pointer converts a playfield cell to pointer units.
func (m Model) pointer(col, row int) (float64, float64) {
	return float64(col) * m.cfg.TUI.CellWidth, float64(row) * m.cfg.TUI.CellHeight
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	screen := m.render.draw(snap, m.view)

	knob := snap.Knob
	drawJoystick(screen, m.stick.cx, m.stick.cy, m.stick.rx, m.stick.ry,
		int(math.Round(knob.X/m.cfg.TUI.CellWidth)), int(math.Round(knob.Y/m.cfg.TUI.CellHeight)),
		snap.JoystickActive)

	switch snap.State {
	case game.StateIdle:
		if m.cfg.TUI.ShowOverlay {
			drawMessage(screen, titleLines, core.ColorDarkGreen)
		}
	case game.StateEnded:
		drawMessage(screen, endLines(snap.Outcome), outcomeColor(snap.Outcome))
	}

	hud := hudStyle.Render(fmt.Sprintf("Distance: %d px", snap.DistanceToGoal)) +
		dimStyle.Render(fmt.Sprintf("   %.1fs", snap.Elapsed))

	return lipgloss.JoinVertical(lipgloss.Left, hud, RenderScreen(screen), m.helpView())
}

var titleLines = []string{
	"FRIDAY BREAKFAST",
	"",
	"Walk up to the breakfast table.",
	"Avoid cubicles and coworkers.",
	"",
	"Press Enter or click to start",
}

func endLines(o game.Outcome) []string {
	if o == game.OutcomeWin {
		return []string{"You reached Friday Breakfast!", "", "Press Enter or click to play again"}
	}
	return []string{"Game Over - no breakfast today.", "", "Press Enter or click to retry"}
}

func outcomeColor(o game.Outcome) core.Color {
	if o == game.OutcomeWin {
		return core.ColorBrightGreen
	}
	return core.ColorBrightRed
}

// Run starts the Bubble Tea program for session.
func Run(session *game.Session, logger *log.Logger, seed int64, width, height int) error {
	model := NewModel(session, logger, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: run program: %w", err)
	}
	return nil
}
