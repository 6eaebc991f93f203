package config

import (
	"fmt"
	"maps"
	"sort"

	"github.com/san-kum/trailviz/internal/dynamo"
)

// Preset is a named parameter set for one model.
type Preset struct {
	Params    map[string]float64
	InitState []float64
}

var Presets = map[string]map[string]Preset{
	"lorenz": {
		"classic":   {Params: map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0}},
		"periodic":  {Params: map[string]float64{"sigma": 10, "rho": 99.96, "beta": 8.0 / 3.0}},
		"transient": {Params: map[string]float64{"sigma": 10, "rho": 14, "beta": 8.0 / 3.0}, InitState: []float64{5, 5, 5}},
	},
	"rossler": {
		"classic":  {Params: map[string]float64{"a": 0.2, "b": 0.2, "c": 5.7}},
		"periodic": {Params: map[string]float64{"a": 0.2, "b": 0.2, "c": 2.5}},
		"funnel":   {Params: map[string]float64{"a": 0.3, "b": 0.1, "c": 14}},
	},
	"thomas": {
		"chaotic":   {Params: map[string]float64{"b": 0.208186}},
		"labyrinth": {Params: map[string]float64{"b": 0.05}, InitState: []float64{1, 0, 0}},
	},
	"aizawa": {
		"classic": {Params: map[string]float64{"a": 0.95, "b": 0.7, "c": 0.6, "d": 3.5, "e": 0.25, "f": 0.1}},
	},
}

func GetPreset(model, preset string) (Preset, bool) {
	modelPresets, ok := Presets[model]
	if !ok {
		return Preset{}, false
	}
	p, ok := modelPresets[preset]
	return p, ok
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset merges the named preset for the configured model into c.
// Params already set in c are overridden by the preset.
func (c *Config) ApplyPreset(name string) error {
	p, ok := GetPreset(c.Model, name)
	if !ok {
		return fmt.Errorf("%w: %s/%s", dynamo.ErrUnknownPreset, c.Model, name)
	}
	if c.Params == nil {
		c.Params = make(map[string]float64, len(p.Params))
	}
	maps.Copy(c.Params, p.Params)
	if p.InitState != nil {
		c.InitState = append([]float64(nil), p.InitState...)
	}
	return nil
}
