package game

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/friday-breakfast/internal/core"
)

// Snapshot is a frame-scoped, read-only copy of everything a renderer
// needs. Changing it has no effect on the session.
type Snapshot struct {
	RunID   uuid.UUID
	State   State
	Outcome Outcome

	WorldWidth     float64
	WorldHeight    float64
	ViewportHeight float64
	CameraOffset   float64

	Player    core.Rect
	Goal      core.Rect
	Obstacles []Obstacle
	Patrols   []Patrol

	JoystickActive bool
	Knob           Vec2 // knob offset in pointer units
	KnobRadius     float64

	DistanceToGoal int
	Elapsed        float64
	Steps          int
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	layout := s.layout.clone()
	return Snapshot{
		RunID:          s.runID,
		State:          s.lifecycle.State(),
		Outcome:        s.lifecycle.Outcome(),
		WorldWidth:     s.world.Width,
		WorldHeight:    s.world.Height,
		ViewportHeight: s.world.ViewportHeight,
		CameraOffset:   s.world.CameraOffset,
		Player:         s.player.Rect(),
		Goal:           s.goal,
		Obstacles:      layout.Obstacles,
		Patrols:        layout.Patrols,
		JoystickActive: s.joystick.Active(),
		Knob:           s.joystick.Knob(),
		KnobRadius:     s.joystick.Radius(),
		DistanceToGoal: s.DistanceToGoal(),
		Elapsed:        s.elapsed,
		Steps:          s.steps,
	}
}

// Visible reports whether r intersects the viewport.
func (sn Snapshot) Visible(r core.Rect) bool {
	return r.Bottom() >= sn.CameraOffset && r.Y <= sn.CameraOffset+sn.ViewportHeight
}

// Layout returns a copy of the obstacles and patrols in the snapshot.
func (sn Snapshot) Layout() Layout {
	return Layout{Obstacles: sn.Obstacles, Patrols: sn.Patrols}.clone()
}
