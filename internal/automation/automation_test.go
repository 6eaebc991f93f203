package automation

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/trailviz/internal/app"
	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/dynamo"
	"github.com/san-kum/trailviz/internal/storage"
)

const scenarioYAML = `
name: tour
steps:
  - model: lorenz
    frames: 10
    save_as: lorenz-short
  - model: thomas
    preset: labyrinth
    frames: 20
    fps: 30
    params:
      b: 0.1
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "tour" || len(sc.Steps) != 2 {
		t.Fatalf("got %+v", sc)
	}
	if sc.Steps[1].Params["b"] != 0.1 {
		t.Errorf("params not parsed: %v", sc.Steps[1].Params)
	}
}

func TestStepConfigLayering(t *testing.T) {
	base := config.DefaultConfig()
	step := ScenarioStep{Model: "thomas", Preset: "labyrinth", Params: map[string]float64{"b": 0.1}, Step: 0.01}

	cfg, err := step.Config(base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params["b"] != 0.1 {
		t.Errorf("step params should override the preset, b = %v", cfg.Params["b"])
	}
	if len(cfg.InitState) != 3 {
		t.Errorf("preset init state missing: %v", cfg.InitState)
	}
	if cfg.Sim.Step != 0.01 {
		t.Errorf("step = %v", cfg.Sim.Step)
	}
	if base.Model != "lorenz" || base.Params != nil {
		t.Error("base config was modified")
	}

	_, err = ScenarioStep{Model: "lorenz", Preset: "nope"}.Config(base)
	if !errors.Is(err, dynamo.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestBuildUnknown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Model = "pendulum"
	if _, err := Build(cfg); !errors.Is(err, dynamo.ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Integrator = "leapfrog"
	if _, err := Build(cfg); !errors.Is(err, dynamo.ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}

func TestHeadless(t *testing.T) {
	cfg := config.DefaultConfig()
	src, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fw := app.New(cfg, src)

	dt, err := Headless(context.Background(), fw, 10, 50)
	if err != nil {
		t.Fatal(err)
	}
	if dt != 0.02 {
		t.Errorf("frame dt = %v, want 0.02", dt)
	}
	// 2 sub-steps per 20ms frame at h=0.01
	if n := fw.Trail().Len(); n != 20 {
		t.Errorf("trail len = %d, want 20", n)
	}

	if _, err := Headless(context.Background(), fw, 0, 50); err == nil {
		t.Error("expected an error for zero frames")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Headless(ctx, fw, 10, 50); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	st := storage.New(t.TempDir())

	runs, err := RunScenario(context.Background(), sc, config.DefaultConfig(), st, io.Discard)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != "lorenz-short" {
		t.Errorf("save_as ignored, id = %s", runs[0].ID)
	}

	points, err := st.LoadTrail(runs[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != runs[1].Points || len(points) == 0 {
		t.Errorf("stored %d points, metadata says %d", len(points), runs[1].Points)
	}
}

func TestRunScenarioStopsOnError(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Model: "lorenz", Frames: 2}, {Model: "missing"}}}

	runs, err := RunScenario(context.Background(), sc, config.DefaultConfig(), storage.New(t.TempDir()), io.Discard)
	if !errors.Is(err, dynamo.ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("completed runs = %d, want 1", len(runs))
	}
}
