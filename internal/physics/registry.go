package physics

import (
	"fmt"
	"sort"

	"github.com/san-kum/trailviz/internal/dynamo"
)

// Model is a registered system together with how its trail should be
// displayed.
type Model struct {
	Name      string
	Transform dynamo.Transform
	New       func() dynamo.System
}

type defaultStater interface {
	DefaultState() dynamo.Vec3
}

var models = map[string]Model{
	"lorenz": {
		Name:      "lorenz",
		Transform: dynamo.Transform{ZUp: true, Scale: 0.03, Offset: dynamo.Vec3{Y: -0.75, Z: -0.75}},
		New:       func() dynamo.System { return NewLorenz() },
	},
	"rossler": {
		Name:      "rossler",
		Transform: dynamo.Transform{ZUp: true, Scale: 0.1, Offset: dynamo.Vec3{Y: -0.5}},
		New:       func() dynamo.System { return NewRossler() },
	},
	"thomas": {
		Name:      "thomas",
		Transform: dynamo.Transform{Scale: 0.4},
		New:       func() dynamo.System { return NewThomas() },
	},
	"aizawa": {
		Name:      "aizawa",
		Transform: dynamo.Transform{ZUp: true, Scale: 1, Offset: dynamo.Vec3{Y: -0.7}},
		New:       func() dynamo.System { return NewAizawa() },
	},
}

// Lookup returns the model registered under name.
func Lookup(name string) (Model, error) {
	m, ok := models[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", dynamo.ErrUnknownModel, name)
	}
	return m, nil
}

// Names lists the registered models in sorted order.
func Names() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Initial returns the system's own starting state, or the origin for a
// system that does not define one.
func (m Model) Initial() dynamo.Vec3 {
	if d, ok := m.New().(defaultStater); ok {
		return d.DefaultState()
	}
	return dynamo.Vec3{}
}

// Build instantiates the model's system and applies params to it when the
// system is configurable. Unknown param names are ignored.
func (m Model) Build(params map[string]float64) dynamo.System {
	sys := m.New()
	if cfg, ok := sys.(dynamo.Configurable); ok {
		for k, v := range params {
			cfg.SetParam(k, v)
		}
	}
	return sys
}
