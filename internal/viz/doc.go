// Package viz turns 3D trail points into 2D drawing calls.
//
//   - [Camera]: orbit/zoom/pan state and the perspective [Camera.Project]
//   - [Renderer]: grid, axes and trail in insertion or painter's order
//   - [Surface]: the drawing target; [Canvas] is the braille terminal one
//   - [Palette]: named color schemes with a Lab tail-to-head gradient
//
// # Projection
//
// Points are rotated by yaw then pitch, pushed [ViewDistance] units forward
// and divided by their depth. The depth is floored at [MinDepth], so points
// behind the viewpoint collapse toward the centre instead of flipping.
package viz
