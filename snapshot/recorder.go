package snapshot

import (
	"iter"
	"sync"

	"github.com/arloliu/hilbert/curve"
)

// Recorder is an in-memory curve.Observer that keeps every reported step.
//
// It is safe for concurrent use, so a single Recorder may observe several codecs.
// Steps reported more than once keep their first position in Steps and the latest
// snapshot.
type Recorder struct {
	mu     sync.Mutex
	steps  []curve.Step
	points map[curve.Step][]curve.Point
}

var _ curve.Observer = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{points: make(map[curve.Step][]curve.Point)}
}

// Observe stores the snapshot of step.
func (r *Recorder) Observe(step curve.Step, points []curve.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.points[step]; !ok {
		r.steps = append(r.steps, step)
	}
	r.points[step] = points
}

// Steps returns the recorded steps in report order.
func (r *Recorder) Steps() []curve.Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]curve.Step(nil), r.steps...)
}

// Points returns the snapshot recorded for step.
func (r *Recorder) Points(step curve.Step) ([]curve.Point, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points, ok := r.points[step]

	return points, ok
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.steps)
}

// All iterates the recorded snapshots in report order.
//
// The iterator works on a copy of the step list taken when iteration starts, so
// steps observed during iteration are not visited.
func (r *Recorder) All() iter.Seq2[curve.Step, []curve.Point] {
	return func(yield func(curve.Step, []curve.Point) bool) {
		for _, step := range r.Steps() {
			points, _ := r.Points(step)
			if !yield(step, points) {
				return
			}
		}
	}
}

// Reset discards every recorded step.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps = nil
	clear(r.points)
}
