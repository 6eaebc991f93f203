package analysis

import (
	"math"

	"github.com/san-kum/trailviz/internal/dynamo"
)

// renormEvery is the number of steps between separation renormalizations.
const renormEvery = 10

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// trajectory and a neighbor displaced by perturbation along x. Every few
// steps the log growth of their separation is accumulated and the neighbor
// is pulled back to the initial distance. A positive value indicates chaos.
func LyapunovExponent(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.Vec3,
	h, duration float64,
	perturbation float64,
) float64 {
	if h <= 0 || duration <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0
	xp := x0.Add(dynamo.Vec3{X: perturbation})
	d0 := perturbation

	steps := int(duration / h)
	sumLog := 0.0
	elapsed := 0.0

	for i := 1; i <= steps; i++ {
		x = integ.Step(sys, x, h)
		xp = integ.Step(sys, xp, h)
		if i%renormEvery != 0 && i != steps {
			continue
		}

		sep := xp.Sub(x).Norm()
		elapsed = float64(i) * h
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			break
		}
		sumLog += math.Log(sep / d0)
		xp = x.AddScaled(xp.Sub(x), d0/sep)
	}

	if elapsed == 0 {
		return 0
	}
	return sumLog / elapsed
}
