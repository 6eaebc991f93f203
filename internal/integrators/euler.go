package integrators

import "github.com/san-kum/trailviz/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, s dynamo.Vec3, h float64) dynamo.Vec3 {
	return s.AddScaled(sys.Derive(s), h)
}
