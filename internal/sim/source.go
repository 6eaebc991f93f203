package sim

import "github.com/san-kum/trailviz/internal/dynamo"

// Source produces newly computed trail points once per frame.
//
// Advance appends zero or more points to dst and returns the extended slice.
// Implementations must not retain dst after returning.
type Source interface {
	Advance(frameDt float64, dst []dynamo.Vec3) []dynamo.Vec3
}

// SourceFunc adapts a closure to Source.
type SourceFunc func(frameDt float64, dst []dynamo.Vec3) []dynamo.Vec3

func (f SourceFunc) Advance(frameDt float64, dst []dynamo.Vec3) []dynamo.Vec3 {
	return f(frameDt, dst)
}
