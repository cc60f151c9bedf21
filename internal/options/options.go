// Package options implements the generic functional-option machinery behind
// the coder session and container encoder configuration surfaces
// (arith.CoderOption, blob.EncoderOption).
//
// Options are validated as they are applied, so a misconfigured session fails
// at construction rather than mid-stream.
package options

// Option configures a target of type T. Implementations either succeed or
// report why the configuration is invalid.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option[T].
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a fallible configuration function as an option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs the options against target in order, stopping at the first
// error. Later options override earlier ones when they touch the same field.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps an infallible configuration function as an option, sparing
// callers a return nil.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
