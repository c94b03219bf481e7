package curve

import "fmt"

// Point is a cell of the grid: one coordinate per dimension, each in [0, 2^bits-1].
type Point []uint32

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of p.
func (p Point) Clone() Point {
	return append(Point(nil), p...)
}

// Step labels one decode step. Both fields are 1-based: Bit counts from the most
// significant bit and Dim from the first axis.
type Step struct {
	Bit int
	Dim int
}

// String returns the "{bit}_{dim}" form used to name snapshot files.
func (s Step) String() string {
	return fmt.Sprintf("%d_%d", s.Bit, s.Dim)
}

// Observer receives the intermediate coordinates of a decode after every step.
//
// Steps arrive in decode order, from (bits, dims) down to (1, 1). The points slice
// holds one point per batch item and is owned by the observer. Observers are
// called synchronously from the decoding goroutine.
type Observer interface {
	Observe(step Step, points []Point)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(step Step, points []Point)

// Observe calls f(step, points).
func (f ObserverFunc) Observe(step Step, points []Point) {
	f(step, points)
}
