package trace

import (
	"github.com/arloliu/hilbert/curve"
	"github.com/arloliu/hilbert/snapshot"
)

// Record decodes every cell of a dims x bits curve and returns the trace of all
// decode steps.
//
// The payload holds dims*bits snapshots of 2^(dims*bits) points each, so Record
// is meant for small curves. Grids larger than curve.MaxPathLength cells are
// rejected with errs.ErrOutOfRange.
func Record(dims, bits int, opts ...EncoderOption) ([]byte, error) {
	rec := snapshot.NewRecorder()
	codec, err := curve.NewCodec(dims, bits, curve.WithObserver(rec))
	if err != nil {
		return nil, err
	}
	if _, err := codec.Path(); err != nil {
		return nil, err
	}

	return encodeRecorder(rec, dims, bits, opts...)
}

// RecordIndices decodes the given curve indices and returns the trace of all
// decode steps. Snapshot points follow the order of indices.
func RecordIndices(dims, bits int, indices []uint64, opts ...EncoderOption) ([]byte, error) {
	rec := snapshot.NewRecorder()
	codec, err := curve.NewCodec(dims, bits, curve.WithObserver(rec))
	if err != nil {
		return nil, err
	}
	if _, err := codec.Decode(indices); err != nil {
		return nil, err
	}

	return encodeRecorder(rec, dims, bits, opts...)
}

func encodeRecorder(rec *snapshot.Recorder, dims, bits int, opts ...EncoderOption) ([]byte, error) {
	enc, err := NewEncoder(dims, bits, opts...)
	if err != nil {
		return nil, err
	}

	for step, points := range rec.All() {
		if err := enc.AddStep(step, points); err != nil {
			return nil, err
		}
	}

	return enc.Finish()
}
