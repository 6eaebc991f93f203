package physics

import "github.com/san-kum/trailviz/internal/dynamo"

type Aizawa struct {
	a, b, c, d, e, f float64
}

func NewAizawa() *Aizawa { return &Aizawa{0.95, 0.7, 0.6, 3.5, 0.25, 0.1} }

func (z *Aizawa) Derive(s dynamo.Vec3) dynamo.Vec3 {
	x, y, w := s.X, s.Y, s.Z
	return dynamo.Vec3{
		X: (w-z.b)*x - z.d*y,
		Y: z.d*x + (w-z.b)*y,
		Z: z.c + z.a*w - w*w*w/3 - (x*x+y*y)*(1+z.e*w) + z.f*w*x*x*x,
	}
}
func (z *Aizawa) DefaultState() dynamo.Vec3 { return dynamo.Vec3{X: 0.1, Y: 0.0, Z: 0.0} }
func (z *Aizawa) GetParams() map[string]float64 {
	return map[string]float64{"a": z.a, "b": z.b, "c": z.c, "d": z.d, "e": z.e, "f": z.f}
}
func (z *Aizawa) SetParam(n string, v float64) {
	switch n {
	case "a":
		z.a = v
	case "b":
		z.b = v
	case "c":
		z.c = v
	case "d":
		z.d = v
	case "e":
		z.e = v
	case "f":
		z.f = v
	}
}
