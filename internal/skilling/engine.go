// Package skilling implements the bit entanglement at the heart of Skilling's Hilbert
// curve transform ("Programming the Hilbert curve", AIP Conf. Proc. 707, 2004).
//
// The transform is a fixed sequence of dims*width elementary steps indexed by
// (bit, dim). Each step reads one mask bit, then either inverts the lower bits of
// lane 0 (mask set) or exchanges the differing lower bits of lane 0 and lane dim
// (mask clear). A step is an involution while its mask is fixed, and neither the
// step itself nor any step after it in forward order touches that mask bit, so
// walking the steps backwards undoes them exactly.
package skilling

import (
	"iter"

	"github.com/arloliu/hilbert/internal/bitplane"
)

// Direction selects the traversal order of the steps.
type Direction uint8

const (
	// Forward walks bit from most to least significant and, for each bit, dim
	// ascending. It maps coordinates to the entangled curve bits (encode).
	Forward Direction = iota
	// Reverse walks the exact reverse of Forward (decode).
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// Step identifies one elementary transform step. Bit 0 is the most significant bit.
type Step struct {
	Bit int
	Dim int
}

// Steps yields the dims*width steps in the order given by dir.
func Steps(dims, width int, dir Direction) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if dir == Reverse {
			for bit := width - 1; bit >= 0; bit-- {
				for dim := dims - 1; dim >= 0; dim-- {
					if !yield(Step{Bit: bit, Dim: dim}) {
						return
					}
				}
			}

			return
		}

		for bit := 0; bit < width; bit++ {
			for dim := 0; dim < dims; dim++ {
				if !yield(Step{Bit: bit, Dim: dim}) {
					return
				}
			}
		}
	}
}

// Apply runs one step on one item of t.
//
// Lane 0 is always the anchor: a set mask inverts its lower bits, a clear mask
// exchanges the lower bits where lane 0 and lane s.Dim differ.
func Apply(t *bitplane.Tensor, item int, s Step) {
	lane := t.Lane(item, s.Dim)
	anchor := t.Lane(item, 0)[s.Bit+1:]

	if lane[s.Bit] != 0 {
		invert(anchor)
		return
	}
	swap(anchor, lane[s.Bit+1:])
}

// invert flips every bit of lower.
func invert(lower []byte) {
	for i := range lower {
		lower[i] ^= 1
	}
}

// swap exchanges the bits that differ between a and b position-wise.
// Flipping both sides of a differing pair is the same as exchanging them.
func swap(a, b []byte) {
	for i := range a {
		flip := a[i] ^ b[i]
		a[i] ^= flip
		b[i] ^= flip
	}
}

// Run applies every step in dir order to items [start, end) of t.
//
// Items are processed one after another, so disjoint ranges may run concurrently.
func Run(t *bitplane.Tensor, dir Direction, start, end int) {
	dims, width := t.Dims(), t.Width()
	for item := start; item < end; item++ {
		for s := range Steps(dims, width, dir) {
			Apply(t, item, s)
		}
	}
}

// RunObserved applies every step in dir order to the whole batch, calling hook
// after each step with the step and the tensor in its intermediate state.
//
// The result equals Run(t, dir, 0, t.Batch()); hook must not modify t.
func RunObserved(t *bitplane.Tensor, dir Direction, hook func(Step, *bitplane.Tensor)) {
	for s := range Steps(t.Dims(), t.Width(), dir) {
		for item := 0; item < t.Batch(); item++ {
			Apply(t, item, s)
		}
		if hook != nil {
			hook(s, t)
		}
	}
}
