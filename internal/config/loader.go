package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "breakfast.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.breakfast/breakfast.yaml -> ./configs/breakfast.yaml -> embedded default.
// Files only need to mention the values they change; everything else keeps
// its default.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakfast", filename)
}

// Validate reports every value that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.ViewportWidth > 0, "world.viewport_width must be positive, got %g", w.ViewportWidth)
	check(w.ViewportHeight > 0, "world.viewport_height must be positive, got %g", w.ViewportHeight)
	check(w.Height >= w.ViewportHeight, "world.height (%g) must be at least world.viewport_height (%g)", w.Height, w.ViewportHeight)
	check(w.TopLimit >= 0, "world.top_limit must not be negative, got %g", w.TopLimit)
	check(w.BottomLimit >= 0, "world.bottom_limit must not be negative, got %g", w.BottomLimit)
	check(w.TopLimit <= w.Height-w.BottomLimit, "world.top_limit (%g) is below the bottom limit", w.TopLimit)
	check(w.SidePadding >= 0, "world.side_padding must not be negative, got %g", w.SidePadding)

	p := c.Player
	check(p.Size > 0, "player.size must be positive, got %g", p.Size)
	check(p.Speed >= 0, "player.speed must not be negative, got %g", p.Speed)
	check(p.StartOffset > 0 && p.StartOffset < w.Height, "player.start_offset must lie inside the world, got %g", p.StartOffset)

	check(c.Goal.Height > 0, "goal.height must be positive, got %g", c.Goal.Height)
	check(c.Goal.Y >= 0, "goal.y must not be negative, got %g", c.Goal.Y)

	g := c.Generator
	check(g.Sections > 0, "generator.sections must be positive, got %d", g.Sections)
	check(g.TopMargin >= 0 && g.BottomMargin >= 0, "generator margins must not be negative")
	check(g.TopMargin+g.BottomMargin < w.Height, "generator margins leave no room in a world of height %g", w.Height)
	check(g.SideMargin >= 0, "generator.side_margin must not be negative, got %g", g.SideMargin)
	check(g.MinObstacles >= 1 && g.MinObstacles <= g.MaxObstacles, "generator obstacle count range [%d,%d] is invalid", g.MinObstacles, g.MaxObstacles)
	check(g.MinWidth > 0 && g.MinWidth <= g.MaxWidth, "generator width range [%g,%g] is invalid", g.MinWidth, g.MaxWidth)
	check(g.MinHeight > 0 && g.MinHeight <= g.MaxHeight, "generator height range [%g,%g] is invalid", g.MinHeight, g.MaxHeight)

	pt := c.Patrol
	check(pt.Chance >= 0 && pt.Chance <= 1, "patrol.chance must be in [0,1], got %g", pt.Chance)
	check(pt.Size > 0, "patrol.size must be positive, got %g", pt.Size)
	check(pt.MinSpeed >= 0 && pt.MinSpeed <= pt.MaxSpeed, "patrol speed range [%g,%g] is invalid", pt.MinSpeed, pt.MaxSpeed)
	check(pt.SideMargin >= 0 && pt.WallMargin >= 0, "patrol margins must not be negative")

	check(c.Camera.Bias >= 0 && c.Camera.Bias <= 1, "camera.bias must be in [0,1], got %g", c.Camera.Bias)
	check(c.Sim.MaxDT > 0, "sim.max_dt must be positive, got %g", c.Sim.MaxDT)
	check(c.Input.JoystickRadius > 0, "input.joystick_radius must be positive, got %g", c.Input.JoystickRadius)
	check(c.Input.KeyHold >= 0, "input.key_hold must not be negative, got %s", c.Input.KeyHold)

	t := c.TUI
	check(t.FPS > 0, "tui.fps must be positive, got %d", t.FPS)
	check(t.CellWidth > 0 && t.CellHeight > 0, "tui cell size must be positive")

	return errors.Join(errs...)
}
