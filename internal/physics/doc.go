// Package physics provides example dynamical systems for trailviz.
//
// Each model implements [dynamo.System] with a three-variable state:
//
//   - [Lorenz]: butterfly attractor
//   - [Rossler]: single-scroll spiral attractor
//   - [Thomas]: cyclically symmetric attractor
//   - [Aizawa]: torus-like attractor
//
// All models implement [dynamo.Configurable] for runtime parameter
// adjustment. The registry ([Lookup], [Names]) pairs each system with its
// initial state and the [dynamo.Transform] that centres its trail on screen.
package physics
