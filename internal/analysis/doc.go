// Package analysis provides chaos and dynamics analysis tools for the
// attractor models.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [PowerSpectrum]: magnitude spectrum of one coordinate of a trail
//   - [BifurcationDiagram]: parameter sweep recording local maxima
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(sys, integ, x0, h, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
