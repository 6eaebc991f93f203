package config

import (
	"os"

	"github.com/san-kum/trailviz/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 1000
	DefaultHeight     = 700
	DefaultTitle      = "trailviz"
	DefaultFont       = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	DefaultMaxPoints  = 200000
	DefaultPointSize  = 2.0
	DefaultPalette    = "mono"
	DefaultStep       = 0.01
	DefaultMaxFrameDt = 0.033

	MinPointSize = 1.0
	MaxPointSize = 8.0
	MinMaxPoints = 1000
	MaxMaxPoints = 1000000

	MinWidth  = 200
	MinHeight = 150
)

type Config struct {
	Model      string             `yaml:"model"`
	Integrator string             `yaml:"integrator"`
	Window     WindowConfig       `yaml:"window"`
	Render     Render             `yaml:"render"`
	Sim        SimConfig          `yaml:"sim"`
	InitState  []float64          `yaml:"init_state,omitempty"`
	Params     map[string]float64 `yaml:"params,omitempty"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Font   string `yaml:"font"`
}

// Render is the runtime-adjustable display configuration.
type Render struct {
	PointSize float64 `yaml:"point_size"`
	MaxPoints int     `yaml:"max_points"`
	Palette   string  `yaml:"palette"`
	ShowAxes  bool    `yaml:"show_axes"`
	ShowGrid  bool    `yaml:"show_grid"`
	ShowHUD   bool    `yaml:"show_hud"`
	DepthSort bool    `yaml:"depth_sort"`
	Paused    bool    `yaml:"paused"`
}

type SimConfig struct {
	Step       float64 `yaml:"step"`
	MaxFrameDt float64 `yaml:"max_frame_dt"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "lorenz",
		Integrator: "rk4",
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			Font:   DefaultFont,
		},
		Render: Render{
			PointSize: DefaultPointSize,
			MaxPoints: DefaultMaxPoints,
			Palette:   DefaultPalette,
			ShowAxes:  true,
			ShowGrid:  true,
			ShowHUD:   true,
		},
		Sim: SimConfig{
			Step:       DefaultStep,
			MaxFrameDt: DefaultMaxFrameDt,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Clamp()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clamp saturates every value at its bounds. Non-positive timing values
// fall back to their defaults.
func (c *Config) Clamp() {
	c.Window.Width = max(c.Window.Width, MinWidth)
	c.Window.Height = max(c.Window.Height, MinHeight)
	c.Render.SetPointSize(c.Render.PointSize)
	c.Render.SetMaxPoints(c.Render.MaxPoints)
	if c.Sim.Step <= 0 {
		c.Sim.Step = DefaultStep
	}
	if c.Sim.MaxFrameDt <= 0 {
		c.Sim.MaxFrameDt = DefaultMaxFrameDt
	}
}

// InitialState returns the configured initial state, or fallback when none
// (or a malformed one) is set.
func (c *Config) InitialState(fallback dynamo.Vec3) dynamo.Vec3 {
	if len(c.InitState) != 3 {
		return fallback
	}
	return dynamo.Vec3{X: c.InitState[0], Y: c.InitState[1], Z: c.InitState[2]}
}

func (r *Render) SetPointSize(v float64) {
	r.PointSize = min(max(v, MinPointSize), MaxPointSize)
}

func (r *Render) SetMaxPoints(n int) {
	r.MaxPoints = min(max(n, MinMaxPoints), MaxMaxPoints)
}
