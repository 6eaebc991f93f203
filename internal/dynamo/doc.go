// Package dynamo provides the core primitives shared by every trailviz
// component.
//
//   - [Vec3]: a 3D point, also used as the state of a three-variable system
//   - [System]: an autonomous ODE (dX/dt = f(X))
//   - [Integrator]: a fixed-step numerical scheme
//   - [Transform]: the display-space mapping a source applies to its points
//
// # Example
//
//	sys := physics.NewLorenz()
//	integ := integrators.NewRK4()
//	next := integ.Step(sys, dynamo.Vec3{X: 1, Y: 1, Z: 1}, 0.005)
package dynamo
