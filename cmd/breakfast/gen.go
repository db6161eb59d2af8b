package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/game"
)

var flagWidth float64

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a generated layout as YAML",
	Long: `Generate the obstacles and patrols of one run and print them as YAML.
The same seed and config always produce the same layout.

Examples:
  breakfast gen --seed 42
  breakfast gen --seed 42 --width 320 > layout.yaml`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().Float64Var(&flagWidth, "width", 0, "Viewport width in world units (0 = use config)")
}

// generatedLayout is the document printed by gen.
type generatedLayout struct {
	Seed          int64           `yaml:"seed"`
	ViewportWidth float64         `yaml:"viewport_width"`
	WorldHeight   float64         `yaml:"world_height"`
	Obstacles     []game.Obstacle `yaml:"obstacles"`
	Patrols       []game.Patrol   `yaml:"patrols"`
}

func runGen(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagWidth < 0 {
		return fmt.Errorf("--width must not be negative, got %v", flagWidth)
	}

	doc := generate(cfg, resolveSeed(), flagWidth)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// generate builds the layout document for seed. A zero width uses the
// configured viewport width.
func generate(cfg config.Config, seed int64, width float64) generatedLayout {
	if width == 0 {
		width = cfg.World.ViewportWidth
	}
	layout := game.NewGenerator(cfg, seed).Generate(width, cfg.World.Height)
	return generatedLayout{
		Seed:          seed,
		ViewportWidth: width,
		WorldHeight:   cfg.World.Height,
		Obstacles:     layout.Obstacles,
		Patrols:       layout.Patrols,
	}
}
