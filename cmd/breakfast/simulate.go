package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/game"
)

var (
	flagInputX    float64
	flagInputY    float64
	flagDT        float64
	flagMaxSteps  int
	flagNoHazards bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with a fixed input",
	Long: `Run one game without a terminal UI. The joystick is held at a fixed
offset for the whole run and the simulation advances in fixed steps until
the run ends or --max-steps is reached. The result is printed as YAML.

--x and --y are the joystick offset as a fraction of its radius: -1 is
full left or full up. Downward input is ignored like in the game.

Examples:
  breakfast simulate --no-hazards
  breakfast simulate --seed 3 --x 0.3 --y -1
  breakfast simulate --dt 0.016 --max-steps 20000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagInputX, "x", 0, "Horizontal joystick offset in [-1, 1]")
	simulateCmd.Flags().Float64Var(&flagInputY, "y", -1, "Vertical joystick offset in [-1, 1]")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0.05, "Step length in seconds")
	simulateCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 10000, "Give up after this many steps")
	simulateCmd.Flags().BoolVar(&flagNoHazards, "no-hazards", false, "Run on an empty floor")
}

// simulation describes one headless run.
type simulation struct {
	Seed      int64
	X, Y      float64 // joystick offset as a fraction of the radius
	DT        float64
	MaxSteps  int
	NoHazards bool
}

// simulationResult is the document printed by simulate.
type simulationResult struct {
	RunID    string  `yaml:"run_id"`
	Seed     int64   `yaml:"seed"`
	State    string  `yaml:"state"`
	Outcome  string  `yaml:"outcome"`
	Steps    int     `yaml:"steps"`
	Elapsed  float64 `yaml:"elapsed"`
	Distance int     `yaml:"distance"`
	Hazards  int     `yaml:"hazards"`
}

func (s simulation) validate() error {
	var errs []error
	if !(s.DT > 0) || math.IsInf(s.DT, 0) {
		errs = append(errs, fmt.Errorf("--dt must be positive, got %v", s.DT))
	}
	if s.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("--max-steps must be positive, got %d", s.MaxSteps))
	}
	if s.X < -1 || s.X > 1 || math.IsNaN(s.X) {
		errs = append(errs, fmt.Errorf("--x must be in [-1, 1], got %v", s.X))
	}
	if s.Y < -1 || s.Y > 1 || math.IsNaN(s.Y) {
		errs = append(errs, fmt.Errorf("--y must be in [-1, 1], got %v", s.Y))
	}
	return errors.Join(errs...)
}

// run plays the simulation to the end or to MaxSteps. Input goes through
// the joystick exactly like a pointer drag would.
func (s simulation) run(cfg config.Config, onEvent game.Listener) simulationResult {
	var opts []game.Option
	if s.NoHazards {
		opts = append(opts, game.WithoutHazards())
	}
	session := game.NewSession(cfg, s.Seed, opts...)

	res := simulationResult{Seed: s.Seed}
	session.OnEvent(func(ev game.Event) {
		res.RunID = ev.RunID.String()
		res.Hazards = ev.Hazards
		if onEvent != nil {
			onEvent(ev)
		}
	})
	session.Start()

	js := session.Joystick()
	r := js.Radius()
	js.SetOrigin(0, 0)
	js.SetPointer(s.X*r, s.Y*r)

	var step game.StepResult
	for i := 0; i < s.MaxSteps; i++ {
		step = session.Step(s.DT)
		if step.State != game.StateRunning {
			break
		}
	}

	if res.RunID == "" {
		res.RunID = uuid.Nil.String()
	}
	res.State = step.State.String()
	res.Outcome = step.Outcome.String()
	res.Steps = session.Snapshot().Steps
	res.Elapsed = math.Round(step.Elapsed*1000) / 1000
	res.Distance = session.DistanceToGoal()
	return res
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}

	sim := simulation{
		Seed:      resolveSeed(),
		X:         flagInputX,
		Y:         flagInputY,
		DT:        flagDT,
		MaxSteps:  flagMaxSteps,
		NoHazards: flagNoHazards,
	}
	if err := sim.validate(); err != nil {
		return err
	}

	logger.Debug("simulating", "seed", sim.Seed, "x", sim.X, "y", sim.Y, "dt", sim.DT, "max_steps", sim.MaxSteps)
	res := sim.run(cfg, func(ev game.Event) {
		logger.Info(ev.Kind.String(), "run", ev.RunID, "steps", ev.Steps, "distance", ev.Distance)
	})
	if res.State == game.StateRunning.String() {
		logger.Warn("run did not finish", "steps", res.Steps, "distance", res.Distance)
	}

	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
