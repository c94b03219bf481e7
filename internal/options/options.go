// Package options implements the generic functional option pattern shared by the
// configurable types of this module (curve codecs, trace encoders).
package options

// Option configures a target of type T. Options are applied in order and the first
// failing option stops the chain.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an option that may reject its argument.
func New[T any](fn func(T) error) Option[T] {
	return Func[T](fn)
}

// NoError wraps fn as an option that always succeeds.
func NoError[T any](fn func(T)) Option[T] {
	return Func[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and returns the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
