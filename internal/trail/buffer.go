// Package trail holds the bounded, oldest-first sequence of points that is
// eligible for display.
package trail

import "github.com/san-kum/trailviz/internal/dynamo"

// Buffer is an append-and-evict point trail.
//
// Eviction only makes room for the incoming batch. A batch longer than the
// capacity is still appended whole, so Len may exceed Cap until the next
// non-empty Append. An empty batch changes nothing.
type Buffer struct {
	pts []dynamo.Vec3
	cap int
}

func New(capacity int) *Buffer {
	return &Buffer{
		pts: make([]dynamo.Vec3, 0, min(capacity, 1<<16)),
		cap: capacity,
	}
}

func (b *Buffer) Append(batch []dynamo.Vec3) {
	if len(batch) == 0 {
		return
	}
	overflow := len(b.pts) + len(batch) - b.cap
	if overflow > 0 {
		if overflow < len(b.pts) {
			n := copy(b.pts, b.pts[overflow:])
			b.pts = b.pts[:n]
		} else {
			b.pts = b.pts[:0]
		}
	}
	b.pts = append(b.pts, batch...)
}

func (b *Buffer) Clear() { b.pts = b.pts[:0] }

// SetCap changes the capacity. Excess points are evicted by the next Append.
func (b *Buffer) SetCap(capacity int) { b.cap = capacity }

func (b *Buffer) Len() int { return len(b.pts) }
func (b *Buffer) Cap() int { return b.cap }

// Points returns the trail oldest-first. The slice is only valid until the
// next mutation and must not be modified.
func (b *Buffer) Points() []dynamo.Vec3 { return b.pts }
