package automation

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/san-kum/trailviz/internal/app"
	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/control"
	"github.com/san-kum/trailviz/internal/integrators"
	"github.com/san-kum/trailviz/internal/physics"
	"github.com/san-kum/trailviz/internal/sim"
	"github.com/san-kum/trailviz/internal/storage"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrames = 600
	DefaultFPS    = 60
)

// Scenario is a scripted list of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one headless run. Zero fields keep the base config.
type ScenarioStep struct {
	Model      string             `yaml:"model"`
	Preset     string             `yaml:"preset"`
	Integrator string             `yaml:"integrator"`
	Step       float64            `yaml:"step"`
	Frames     int                `yaml:"frames"`
	FPS        int                `yaml:"fps"`
	MaxPoints  int                `yaml:"max_points"`
	InitState  []float64          `yaml:"init_state"`
	Params     map[string]float64 `yaml:"params"`
	SaveAs     string             `yaml:"save_as"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Config layers the step over a copy of base. Preset params are applied
// before the step's own params.
func (s ScenarioStep) Config(base *config.Config) (*config.Config, error) {
	cfg := *base
	cfg.Params = maps.Clone(base.Params)
	cfg.InitState = slices.Clone(base.InitState)

	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.Step > 0 {
		cfg.Sim.Step = s.Step
	}
	if s.MaxPoints > 0 {
		cfg.Render.MaxPoints = s.MaxPoints
	}
	if s.Preset != "" {
		if err := cfg.ApplyPreset(s.Preset); err != nil {
			return nil, err
		}
	}
	if len(s.Params) > 0 {
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(s.Params))
		}
		maps.Copy(cfg.Params, s.Params)
	}
	if s.InitState != nil {
		cfg.InitState = slices.Clone(s.InitState)
	}
	cfg.Clamp()
	return &cfg, nil
}

// Build creates the simulation source described by cfg.
func Build(cfg *config.Config) (*sim.Stepper, error) {
	model, err := physics.Lookup(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, physics.Names())
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, integrators.Names())
	}
	src := sim.NewStepper(model.Build(cfg.Params), integ, cfg.InitialState(model.Initial()), cfg.Sim.Step)
	return src.WithTransform(model.Transform), nil
}

// Headless advances fw by frames fixed-length frames with no input and
// returns the frame length used.
func Headless(ctx context.Context, fw *app.Framework, frames, fps int) (float64, error) {
	if frames <= 0 || fps <= 0 {
		return 0, fmt.Errorf("frames and fps must be positive")
	}
	frameDt := 1 / float64(fps)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return frameDt, err
		}
		fw.Update(frameDt, control.Input{})
	}
	return frameDt, nil
}

// RunScenario executes every step and saves each trail to st. Progress
// lines go to out.
func RunScenario(ctx context.Context, sc *Scenario, base *config.Config, st *storage.Store, out io.Writer) ([]storage.RunMetadata, error) {
	runs := make([]storage.RunMetadata, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		fmt.Fprintf(out, "running step %d/%d: %s\n", i+1, len(sc.Steps), step.Model)

		cfg, err := step.Config(base)
		if err != nil {
			return runs, fmt.Errorf("step %d: %w", i+1, err)
		}
		src, err := Build(cfg)
		if err != nil {
			return runs, fmt.Errorf("step %d: %w", i+1, err)
		}

		frames := orDefault(step.Frames, DefaultFrames)
		fps := orDefault(step.FPS, DefaultFPS)
		fw := app.New(cfg, src)
		frameDt, err := Headless(ctx, fw, frames, fps)
		if err != nil {
			return runs, fmt.Errorf("step %d run: %w", i+1, err)
		}

		meta := storage.RunMetadata{
			ID:         step.SaveAs,
			Model:      cfg.Model,
			Integrator: cfg.Integrator,
			Preset:     step.Preset,
			Step:       cfg.Sim.Step,
			Frames:     frames,
			FrameDt:    frameDt,
			SimTime:    src.Time(),
			Params:     cfg.Params,
		}
		points := fw.Trail().Points()
		if meta.ID, err = st.Save(meta, points); err != nil {
			return runs, fmt.Errorf("step %d save: %w", i+1, err)
		}
		meta.Points = len(points)
		runs = append(runs, meta)
	}

	return runs, nil
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
