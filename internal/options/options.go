// Package options implements generic functional options.
//
// A package declares its option type as an alias over its config pointer and builds
// options with New or NoError:
//
//	type EncoderOption = options.Option[*EncoderConfig]
//
//	func WithEntryCapacity(n int) EncoderOption {
//	    return options.NoError(func(cfg *EncoderConfig) { cfg.entryCapacity = n })
//	}
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] func(T) error

func (f optionFunc[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order and stops at the first error.
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
