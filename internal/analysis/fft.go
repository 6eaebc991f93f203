package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/trailviz/internal/dynamo"
)

// Axis selects one coordinate of a point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) Of(p dynamo.Vec3) float64 {
	switch a {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	}
	return p.X
}

// Series extracts one coordinate from every point.
func Series(pts []dynamo.Vec3, a Axis) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = a.Of(p)
	}
	return out
}

// PowerSpectrum returns the magnitude of the first half of the DFT of data
// with its mean removed. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spec := fft.FFTReal(centered)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency is the frequency of the largest non-DC bin of ps, for
// samples taken every dt.
func DominantFrequency(ps []float64, dt float64) float64 {
	if len(ps) < 2 || dt <= 0 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	n := 2 * len(ps)
	return float64(best) / (float64(n) * dt)
}
