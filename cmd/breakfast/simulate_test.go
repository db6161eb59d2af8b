package main

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/game"
)

func TestSimulateEmptyFloorWins(t *testing.T) {
	sim := simulation{Seed: 1, Y: -1, DT: 0.05, MaxSteps: 5000, NoHazards: true}

	var kinds []game.EventKind
	res := sim.run(config.Default(), func(ev game.Event) { kinds = append(kinds, ev.Kind) })

	if res.State != "Ended" || res.Outcome != "Win" {
		t.Fatalf("result = %s/%s, want Ended/Win", res.State, res.Outcome)
	}
	if res.Steps != 3586 {
		t.Errorf("steps = %d, want 3586", res.Steps)
	}
	if res.Elapsed != 179.3 {
		t.Errorf("elapsed = %v, want 179.3", res.Elapsed)
	}
	// Player center ends at 157, the goal top is at 40.
	if res.Distance != 117 {
		t.Errorf("distance = %d, want 117", res.Distance)
	}
	if res.Hazards != 0 {
		t.Errorf("hazards = %d, want 0", res.Hazards)
	}
	if !reflect.DeepEqual(kinds, []game.EventKind{game.EventStarted, game.EventWon}) {
		t.Errorf("events = %v, want [started won]", kinds)
	}
}

func TestSimulateStepLimit(t *testing.T) {
	sim := simulation{Seed: 1, Y: -1, DT: 0.05, MaxSteps: 10, NoHazards: true}
	res := sim.run(config.Default(), nil)

	if res.State != "Running" || res.Outcome != "None" {
		t.Errorf("result = %s/%s, want Running/None", res.State, res.Outcome)
	}
	if res.Steps != 10 {
		t.Errorf("steps = %d, want 10", res.Steps)
	}
	if res.RunID == "" {
		t.Error("run ID missing")
	}
}

func TestSimulateNoInput(t *testing.T) {
	sim := simulation{Seed: 1, DT: 0.05, MaxSteps: 100}
	res := sim.run(config.Default(), nil)

	if res.Distance != 19840 {
		t.Errorf("distance = %d, want 19840", res.Distance)
	}
	if res.Hazards == 0 {
		t.Error("layout should have hazards")
	}
}

func TestSimulateDownwardInputIgnored(t *testing.T) {
	sim := simulation{Seed: 1, Y: 1, DT: 0.05, MaxSteps: 50, NoHazards: true}
	res := sim.run(config.Default(), nil)

	if res.Distance != 19840 {
		t.Errorf("distance = %d, want 19840", res.Distance)
	}
}

func TestSimulationValidate(t *testing.T) {
	if err := (simulation{Y: -1, DT: 0.05, MaxSteps: 1}).validate(); err != nil {
		t.Errorf("valid simulation rejected: %v", err)
	}

	err := (simulation{X: 2, Y: -1, DT: 0, MaxSteps: 0}).validate()
	if err == nil {
		t.Fatal("invalid simulation accepted")
	}
	for _, want := range []string{"--dt", "--max-steps", "--x"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	cfg := config.Default()

	a := generate(cfg, 42, 0)
	b := generate(cfg, 42, 0)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different documents")
	}
	if a.ViewportWidth != cfg.World.ViewportWidth || a.WorldHeight != cfg.World.Height {
		t.Errorf("document size = %vx%v", a.ViewportWidth, a.WorldHeight)
	}
	if len(a.Obstacles) == 0 {
		t.Error("no obstacles generated")
	}

	narrow := generate(cfg, 42, 200)
	for _, ob := range narrow.Obstacles {
		if ob.Right() > 200 {
			t.Errorf("obstacle %+v wider than the viewport", ob.Rect)
		}
	}

	data, err := yaml.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{"seed: 42", "obstacles:", "x:", "w:"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("YAML missing %q", want)
		}
	}
}
