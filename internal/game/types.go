// Package game implements Friday Breakfast: the player walks up a long office
// floor toward the breakfast table, steering around cubicles and patrolling
// coworkers. The package holds the pure simulation; presentation lives in
// internal/platform/tui.
package game

import "github.com/vovakirdan/friday-breakfast/internal/core"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// World is the vertical playfield.
// CameraOffset is the world y shown at the top of the viewport and always
// lies in [0, Height-ViewportHeight].
type World struct {
	Width          float64
	Height         float64
	ViewportHeight float64
	CameraOffset   float64
}

// Player is the steered token. Pos is the center of its square.
type Player struct {
	Pos   Vec2
	Size  float64
	Speed float64 // units per second
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.RectAround(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

// Obstacle is a static cubicle. Immutable once generated.
type Obstacle struct {
	core.Rect `yaml:",inline"`
}

// Patrol is a coworker pacing left and right across the floor.
type Patrol struct {
	core.Rect `yaml:",inline"`
	Dir       int     `yaml:"dir"`   // -1 left, +1 right
	Speed     float64 `yaml:"speed"` // units per second
}

// Layout is everything the generator places in a run.
type Layout struct {
	Obstacles []Obstacle `yaml:"obstacles"`
	Patrols   []Patrol   `yaml:"patrols"`
}

// clone returns a deep copy so callers cannot alias session state.
func (l Layout) clone() Layout {
	return Layout{
		Obstacles: append([]Obstacle(nil), l.Obstacles...),
		Patrols:   append([]Patrol(nil), l.Patrols...),
	}
}
