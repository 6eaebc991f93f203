package physics

import (
	"math"

	"github.com/san-kum/trailviz/internal/dynamo"
)

// Thomas is Thomas' cyclically symmetric attractor. Chaotic for b below
// roughly 0.208.
type Thomas struct{ b float64 }

func NewThomas() *Thomas { return &Thomas{0.208186} }

func (t *Thomas) Derive(s dynamo.Vec3) dynamo.Vec3 {
	return dynamo.Vec3{
		X: math.Sin(s.Y) - t.b*s.X,
		Y: math.Sin(s.Z) - t.b*s.Y,
		Z: math.Sin(s.X) - t.b*s.Z,
	}
}
func (t *Thomas) DefaultState() dynamo.Vec3 { return dynamo.Vec3{X: 0.1, Y: 0.0, Z: 0.0} }
func (t *Thomas) GetParams() map[string]float64 {
	return map[string]float64{"b": t.b}
}
func (t *Thomas) SetParam(n string, v float64) {
	if n == "b" {
		t.b = v
	}
}
