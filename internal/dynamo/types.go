package dynamo

import "math"

// Vec3 is a point or state of a three-variable system.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Norm() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// AddScaled returns v + s*o without allocating an intermediate.
func (v Vec3) AddScaled(o Vec3, s float64) Vec3 {
	return Vec3{v.X + s*o.X, v.Y + s*o.Y, v.Z + s*o.Z}
}

func (v Vec3) IsValid() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// System is an autonomous ODE dX/dt = f(X). Parameters live on the
// implementing value.
type System interface {
	Derive(s Vec3) Vec3
}

// DeriveFunc adapts a plain function to System.
type DeriveFunc func(s Vec3) Vec3

func (f DeriveFunc) Derive(s Vec3) Vec3 { return f(s) }

type Integrator interface {
	Step(sys System, s Vec3, h float64) Vec3
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64)
}

// Transform maps raw state into display space. With ZUp the state's Z
// becomes the vertical display axis. Scale is applied before Offset.
type Transform struct {
	ZUp    bool
	Scale  float64
	Offset Vec3
}

// Identity leaves points untouched.
var Identity = Transform{Scale: 1}

func (t Transform) Apply(s Vec3) Vec3 {
	if t.ZUp {
		s.Y, s.Z = s.Z, s.Y
	}
	return s.Scale(t.Scale).Add(t.Offset)
}
