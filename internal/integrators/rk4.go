package integrators

import "github.com/san-kum/trailviz/internal/dynamo"

// RK4 is the classical four-stage explicit Runge-Kutta scheme.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys dynamo.System, s dynamo.Vec3, h float64) dynamo.Vec3 {
	k1 := sys.Derive(s)
	k2 := sys.Derive(s.AddScaled(k1, h*0.5))
	k3 := sys.Derive(s.AddScaled(k2, h*0.5))
	k4 := sys.Derive(s.AddScaled(k3, h))

	h6 := h / 6.0
	return dynamo.Vec3{
		X: s.X + h6*(k1.X+2*k2.X+2*k3.X+k4.X),
		Y: s.Y + h6*(k1.Y+2*k2.Y+2*k3.Y+k4.Y),
		Z: s.Z + h6*(k1.Z+2*k2.Z+2*k3.Z+k4.Z),
	}
}
