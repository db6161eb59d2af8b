// Package config provides YAML-based tuning for the game: world geometry,
// player movement, world generation and the terminal front end.
package config

import "time"

// Config contains every tunable of the game.
// Values are in world units (roughly CSS pixels) and seconds.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Goal      GoalConfig      `yaml:"goal"`
	Generator GeneratorConfig `yaml:"generator"`
	Patrol    PatrolConfig    `yaml:"patrol"`
	Camera    CameraConfig    `yaml:"camera"`
	Sim       SimConfig       `yaml:"sim"`
	Input     InputConfig     `yaml:"input"`
	TUI       TUIConfig       `yaml:"tui"`
}

// WorldConfig defines the playfield and the visible window into it.
type WorldConfig struct {
	Height         float64 `yaml:"height"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	TopLimit       float64 `yaml:"top_limit"`    // smallest player y
	BottomLimit    float64 `yaml:"bottom_limit"` // distance of the largest player y from the bottom
	SidePadding    float64 `yaml:"side_padding"` // gap kept between the player and the side walls
}

// PlayerConfig defines the player token.
type PlayerConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`        // units per second
	StartOffset float64 `yaml:"start_offset"` // start y, measured up from the world bottom
}

// GoalConfig defines the goal zone near the top of the world.
type GoalConfig struct {
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
}

// GeneratorConfig defines static obstacle generation.
type GeneratorConfig struct {
	Sections     int     `yaml:"sections"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	SideMargin   float64 `yaml:"side_margin"`
	MinObstacles int     `yaml:"min_obstacles"` // per section
	MaxObstacles int     `yaml:"max_obstacles"` // per section
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
}

// PatrolConfig defines the moving hazards.
type PatrolConfig struct {
	Chance     float64 `yaml:"chance"` // probability of a patrol per section
	Size       float64 `yaml:"size"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	SideMargin float64 `yaml:"side_margin"` // spawn margin
	WallMargin float64 `yaml:"wall_margin"` // bounce margin
}

// CameraConfig defines how the camera follows the player.
type CameraConfig struct {
	Bias float64 `yaml:"bias"` // fraction of the viewport kept above the player
}

// SimConfig defines the frame step.
type SimConfig struct {
	MaxDT float64 `yaml:"max_dt"` // largest simulated step, seconds
}

// InputConfig defines the virtual joystick and keyboard fallback.
type InputConfig struct {
	JoystickRadius float64       `yaml:"joystick_radius"` // pointer units
	KeyHold        time.Duration `yaml:"key_hold"`        // how long a key counts as held after its last repeat
}

// TUIConfig defines the terminal front end.
type TUIConfig struct {
	FPS         int     `yaml:"fps"`
	CellWidth   float64 `yaml:"cell_width"`  // pointer units per terminal column
	CellHeight  float64 `yaml:"cell_height"` // pointer units per terminal row
	FloorNoise  bool    `yaml:"floor_noise"` // shade the carpet with Perlin noise
	NoiseScale  float64 `yaml:"noise_scale"`
	ShowOverlay bool    `yaml:"show_overlay"` // show the title overlay before the first run
}

// StartY returns the player's start y coordinate.
func (c Config) StartY() float64 {
	return c.World.Height - c.Player.StartOffset
}

// MaxPlayerY returns the largest y the player may occupy.
func (c Config) MaxPlayerY() float64 {
	return c.World.Height - c.World.BottomLimit
}
