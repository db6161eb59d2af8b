package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakfast.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/breakfast.yaml and is the fallback when the
// embedded file cannot be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Height:         20000,
			ViewportWidth:  390,
			ViewportHeight: 800,
			TopLimit:       20,
			BottomLimit:    40,
			SidePadding:    12,
		},
		Player: PlayerConfig{
			Size:        18,
			Speed:       110,
			StartOffset: 120,
		},
		Goal: GoalConfig{
			Y:      40,
			Height: 120,
		},
		Generator: GeneratorConfig{
			Sections:     60,
			TopMargin:    200,
			BottomMargin: 200,
			SideMargin:   30,
			MinObstacles: 1,
			MaxObstacles: 2,
			MinWidth:     60,
			MaxWidth:     180,
			MinHeight:    40,
			MaxHeight:    120,
		},
		Patrol: PatrolConfig{
			Chance:     0.35,
			Size:       26,
			MinSpeed:   40,
			MaxSpeed:   90,
			SideMargin: 20,
			WallMargin: 10,
		},
		Camera: CameraConfig{
			Bias: 0.65,
		},
		Sim: SimConfig{
			MaxDT: 0.05,
		},
		Input: InputConfig{
			JoystickRadius: 36,
			KeyHold:        550 * time.Millisecond,
		},
		TUI: TUIConfig{
			FPS:         60,
			CellWidth:   6,
			CellHeight:  12,
			FloorNoise:  true,
			NoiseScale:  0.01,
			ShowOverlay: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
