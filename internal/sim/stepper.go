package sim

import (
	"math"

	"github.com/san-kum/trailviz/internal/dynamo"
)

const DefaultStep = 0.01

// Stepper advances a system in fixed sub-steps of size H regardless of how
// long the frame took, emitting one display point per sub-step.
type Stepper struct {
	sys       dynamo.System
	integ     dynamo.Integrator
	transform dynamo.Transform
	h         float64

	initial dynamo.Vec3
	state   dynamo.Vec3
	time    float64
	emitted bool
}

func NewStepper(sys dynamo.System, integ dynamo.Integrator, x0 dynamo.Vec3, h float64) *Stepper {
	if h <= 0 {
		h = DefaultStep
	}
	return &Stepper{
		sys:       sys,
		integ:     integ,
		transform: dynamo.Identity,
		h:         h,
		initial:   x0,
		state:     x0,
	}
}

// WithTransform sets the display mapping applied to every emitted point.
func (s *Stepper) WithTransform(t dynamo.Transform) *Stepper {
	s.transform = t
	return s
}

// Steps is the number of sub-steps a frame of frameDt seconds runs.
func (s *Stepper) Steps(frameDt float64) int {
	if frameDt <= 0 {
		return 0
	}
	return max(1, int(math.Round(frameDt/s.h)))
}

// Advance runs Steps(frameDt) integrator calls. A zero-delta call on a
// stepper that has never emitted yields the current state once, so a paused
// launch still shows something; later paused calls yield nothing.
func (s *Stepper) Advance(frameDt float64, dst []dynamo.Vec3) []dynamo.Vec3 {
	n := s.Steps(frameDt)
	for i := 0; i < n; i++ {
		s.state = s.integ.Step(s.sys, s.state, s.h)
		s.time += s.h
		dst = append(dst, s.transform.Apply(s.state))
	}
	if n == 0 && !s.emitted {
		dst = append(dst, s.transform.Apply(s.state))
	}
	s.emitted = true
	return dst
}

// Reset returns to the initial state and re-arms the paused bootstrap point.
func (s *Stepper) Reset() {
	s.state = s.initial
	s.time = 0
	s.emitted = false
}

func (s *Stepper) State() dynamo.Vec3 { return s.state }
func (s *Stepper) Time() float64      { return s.time }
func (s *Stepper) H() float64         { return s.h }
