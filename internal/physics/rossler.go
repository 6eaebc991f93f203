package physics

import "github.com/san-kum/trailviz/internal/dynamo"

type Rossler struct{ a, b, c float64 }

func NewRossler() *Rossler { return &Rossler{0.2, 0.2, 5.7} }

// Derive calculates the Rossler attractor derivatives.
func (r *Rossler) Derive(s dynamo.Vec3) dynamo.Vec3 {
	return dynamo.Vec3{X: -s.Y - s.Z, Y: s.X + r.a*s.Y, Z: r.b + s.Z*(s.X-r.c)}
}
func (r *Rossler) DefaultState() dynamo.Vec3 { return dynamo.Vec3{X: 1.0, Y: 1.0, Z: 1.0} }
func (r *Rossler) GetParams() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c}
}
func (r *Rossler) SetParam(n string, v float64) {
	switch n {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	}
}
