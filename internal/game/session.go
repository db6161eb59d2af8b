package game

import (
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/core"
)

// Session owns everything a run needs: the world, the player, the generated
// layout, the camera, the joystick and the lifecycle.
//
// Step is not reentrant and must be driven from a single frame loop.
// The joystick is the only part safe to touch from other goroutines.
type Session struct {
	cfg       config.Config
	camera    Camera
	generator *Generator
	joystick  *Joystick
	lifecycle Lifecycle

	world  World
	player Player
	goal   core.Rect
	layout Layout

	runID   uuid.UUID
	elapsed float64
	steps   int

	listeners []Listener
	newRunID  func() uuid.UUID
	noHazards bool
}

// Option configures a Session.
type Option func(*Session)

// WithoutHazards makes every run generate an empty layout. Used for
// headless checks of the movement and goal logic.
func WithoutHazards() Option {
	return func(s *Session) { s.noHazards = true }
}

// WithRunIDs overrides how run identifiers are minted.
func WithRunIDs(fn func() uuid.UUID) Option {
	return func(s *Session) { s.newRunID = fn }
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State   State
	Outcome Outcome
	Elapsed float64 // simulated seconds since the run started
}

// NewSession creates an idle session. The seed drives world generation for
// every run of the session, so one seed reproduces a sequence of layouts.
func NewSession(cfg config.Config, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		camera:    Camera{Bias: cfg.Camera.Bias},
		generator: NewGenerator(cfg, seed),
		joystick:  NewJoystick(cfg.Input.JoystickRadius),
		world: World{
			Width:          cfg.World.ViewportWidth,
			Height:         cfg.World.Height,
			ViewportHeight: cfg.World.ViewportHeight,
		},
		player: Player{
			Size:  cfg.Player.Size,
			Speed: cfg.Player.Speed,
		},
		goal:     core.NewRect(0, cfg.Goal.Y, cfg.World.ViewportWidth, cfg.Goal.Height),
		newRunID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.placeAtStart()
	return s
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Joystick returns the session's input mapper.
func (s *Session) Joystick() *Joystick {
	return s.joystick
}

// OnEvent registers a lifecycle listener.
func (s *Session) OnEvent(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.lifecycle.State()
}

// Outcome returns the outcome of the last finished run.
func (s *Session) Outcome() Outcome {
	return s.lifecycle.Outcome()
}

// RunID identifies the current or last run. It is the zero UUID before the
// first start.
func (s *Session) RunID() uuid.UUID {
	return s.runID
}

// Start begins a new run from Idle or Ended. It regenerates the layout,
// puts the player back at the start and the camera at the bottom of the
// world. It returns false and does nothing while a run is in progress.
func (s *Session) Start() bool {
	if !s.lifecycle.Can(TriggerStart) {
		return false
	}

	if s.noHazards {
		s.layout = Layout{}
	} else {
		s.layout = s.generator.Generate(s.world.Width, s.world.Height)
	}
	s.placeAtStart()
	s.joystick.Reset()
	s.runID = s.newRunID()
	s.elapsed = 0
	s.steps = 0

	s.lifecycle.Fire(TriggerStart)
	s.emit(EventStarted)
	return true
}

// Reset returns the session to Idle, dropping the current layout.
func (s *Session) Reset() {
	if !s.lifecycle.Fire(TriggerReset) {
		return
	}
	s.layout = Layout{}
	s.placeAtStart()
	s.joystick.Reset()
	s.emit(EventReset)
}

// SetViewportHeight changes how much of the floor the host shows and
// re-aims the camera. Non-positive or non-finite heights are ignored.
func (s *Session) SetViewportHeight(h float64) {
	if !core.Finite(h) || h <= 0 {
		return
	}
	s.world.ViewportHeight = h
	if s.lifecycle.State() == StateRunning {
		s.world.CameraOffset = s.camera.Follow(s.player.Pos.Y, h, s.world.Height)
		return
	}
	s.world.CameraOffset = max(0, s.world.Height-h)
}

// placeAtStart puts the player at the start coordinates and shows the
// bottom of the world.
func (s *Session) placeAtStart() {
	s.player.Pos = Vec2{X: s.world.Width / 2, Y: s.cfg.StartY()}
	s.world.CameraOffset = max(0, s.world.Height-s.world.ViewportHeight)
}

// Step advances a running session by dt seconds. It does nothing unless the
// session is Running. dt is clamped to [0, sim.max_dt] so a stalled frame
// cannot teleport anything.
func (s *Session) Step(dt float64) StepResult {
	if s.lifecycle.State() != StateRunning {
		return s.result()
	}

	if !core.Finite(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, s.cfg.Sim.MaxDT)
	s.steps++
	s.elapsed += dt

	s.movePatrols(dt)
	s.movePlayer(dt)
	s.world.CameraOffset = s.camera.Follow(s.player.Pos.Y, s.world.ViewportHeight, s.world.Height)

	// Hazards are checked before the goal so a hit on the finish line loses.
	if s.hitsHazard() {
		s.end(TriggerLose)
		return s.result()
	}
	if s.player.Pos.Y <= s.goal.Bottom() {
		s.end(TriggerWin)
	}
	return s.result()
}

// movePatrols walks every patrol and bounces it off the side walls.
func (s *Session) movePatrols(dt float64) {
	wall := s.cfg.Patrol.WallMargin
	for i := range s.layout.Patrols {
		p := &s.layout.Patrols[i]
		p.X += float64(p.Dir) * p.Speed * dt

		minX := wall
		maxX := max(minX, s.world.Width-wall-p.W)
		if p.X < minX {
			p.X = minX
			p.Dir = -p.Dir
		} else if p.X > maxX {
			p.X = maxX
			p.Dir = -p.Dir
		}
	}
}

// movePlayer applies the joystick and keeps the player inside the floor.
func (s *Session) movePlayer(dt float64) {
	dir := s.joystick.Vector()
	s.player.Pos.X += dir.X * s.player.Speed * dt
	s.player.Pos.Y += dir.Y * s.player.Speed * dt

	half := s.player.Size / 2
	pad := s.cfg.World.SidePadding
	s.player.Pos.X = core.ClampF(s.player.Pos.X, pad+half, s.world.Width-pad-half)
	s.player.Pos.Y = core.ClampF(s.player.Pos.Y, s.cfg.World.TopLimit, s.cfg.MaxPlayerY())
}

// hitsHazard tests the player against every obstacle, then every patrol.
func (s *Session) hitsHazard() bool {
	pr := s.player.Rect()
	for _, ob := range s.layout.Obstacles {
		if pr.Overlaps(ob.Rect) {
			return true
		}
	}
	for _, p := range s.layout.Patrols {
		if pr.Overlaps(p.Rect) {
			return true
		}
	}
	return false
}

// end finishes the run and stops the player.
func (s *Session) end(t Trigger) {
	if !s.lifecycle.Fire(t) {
		return
	}
	s.joystick.Reset()
	if t == TriggerWin {
		s.emit(EventWon)
	} else {
		s.emit(EventLost)
	}
}

// DistanceToGoal is the HUD distance: whole units between the player's
// center and the top of the goal, never negative.
func (s *Session) DistanceToGoal() int {
	return int(math.Max(0, math.Floor(s.player.Pos.Y-s.goal.Y)))
}

func (s *Session) result() StepResult {
	return StepResult{
		State:   s.lifecycle.State(),
		Outcome: s.lifecycle.Outcome(),
		Elapsed: s.elapsed,
	}
}

func (s *Session) emit(kind EventKind) {
	ev := Event{
		Kind:     kind,
		RunID:    s.runID,
		Elapsed:  s.elapsed,
		Steps:    s.steps,
		Distance: s.DistanceToGoal(),
		Hazards:  len(s.layout.Obstacles) + len(s.layout.Patrols),
	}
	for _, fn := range s.listeners {
		fn(ev)
	}
}
