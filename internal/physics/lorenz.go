package physics

import "github.com/san-kum/trailviz/internal/dynamo"

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.Vec3) dynamo.Vec3 {
	return dynamo.Vec3{X: l.sigma * (s.Y - s.X), Y: s.X*(l.rho-s.Z) - s.Y, Z: s.X*s.Y - l.beta*s.Z}
}
func (l *Lorenz) DefaultState() dynamo.Vec3 { return dynamo.Vec3{X: 0.01} }
func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}
func (l *Lorenz) SetParam(n string, v float64) {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	}
}
