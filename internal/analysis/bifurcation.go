package analysis

import (
	"image/color"
	"math"

	"github.com/san-kum/trailviz/internal/dynamo"
	"github.com/san-kum/trailviz/internal/viz"
)

// BifurcationPoint holds the distinct local maxima seen for one parameter
// value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

type Sweep struct {
	Param     string
	Min, Max  float64
	Steps     int
	Axis      Axis
	H         float64
	Transient float64 // settle time before recording
	Record    float64
}

// BifurcationDiagram sweeps one parameter of sys and records the local
// maxima of the chosen axis after a transient. Maxima closer than 1e-3 are
// merged. It returns nil when sys has no tunable parameters. The swept
// parameter is restored afterwards.
func BifurcationDiagram(sys dynamo.System, integ dynamo.Integrator, x0 dynamo.Vec3, sw Sweep) []BifurcationPoint {
	tunable, ok := sys.(dynamo.Configurable)
	if !ok || sw.H <= 0 {
		return nil
	}
	orig, had := tunable.GetParams()[sw.Param]

	steps := max(sw.Steps, 2)
	delta := (sw.Max - sw.Min) / float64(steps-1)
	results := make([]BifurcationPoint, 0, steps)

	for i := 0; i < steps; i++ {
		param := sw.Min + float64(i)*delta
		tunable.SetParam(sw.Param, param)

		x := x0
		for t := 0.0; t < sw.Transient; t += sw.H {
			x = integ.Step(sys, x, sw.H)
		}

		values := make([]float64, 0, 16)
		seen := make(map[int64]bool)
		prev2, prev := sw.Axis.Of(x), sw.Axis.Of(x)
		for t := 0.0; t < sw.Record; t += sw.H {
			x = integ.Step(sys, x, sw.H)
			cur := sw.Axis.Of(x)
			if prev > prev2 && prev >= cur && !math.IsNaN(prev) {
				key := int64(math.Round(prev * 1000))
				if !seen[key] {
					seen[key] = true
					values = append(values, prev)
				}
			}
			prev2, prev = prev, cur
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}

	if had {
		tunable.SetParam(sw.Param, orig)
	}
	return results
}

// DrawBifurcation plots data onto a braille canvas, parameter along x.
func DrawBifurcation(data []BifurcationPoint, c *viz.Canvas, col color.RGBA) {
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		for _, v := range p.Values {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	vp := c.Viewport()
	for i, p := range data {
		x := 0.0
		if len(data) > 1 {
			x = float64(i) / float64(len(data)-1) * (vp.W - 1)
		}
		for _, v := range p.Values {
			y := (vp.H - 1) * (1 - (v-minVal)/(maxVal-minVal))
			c.Dot(viz.ScreenPoint{X: x, Y: y}, 1, col)
		}
	}
}
