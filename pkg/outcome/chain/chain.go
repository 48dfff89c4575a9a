package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result to enable fluent composition.
type Chain[T any] struct {
	result outcome.Result[T]
}

// Start creates a new chain from an outcome.Result.
func Start[T any](result outcome.Result[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: outcome.Success(value),
	}
}

// Result returns the underlying outcome.Result.
func (c *Chain[T]) Result() outcome.Result[T] {
	return c.result
}

// Unwrap collapses the chain into the (value, error) pair.
func (c *Chain[T]) Unwrap() (T, error) {
	return c.result.Unwrap()
}

// Then chains a same-type step. Use the package-level Then when the step
// changes the value type.
func (c *Chain[T]) Then(onSuccess func(in T) outcome.Result[T]) *Chain[T] {
	return &Chain[T]{
		result: outcome.AndThen(c.result, onSuccess),
	}
}

// ThenTry chains a same-type function that returns (T, error).
func (c *Chain[T]) ThenTry(tryOnSuccess func(in T) (T, error)) *Chain[T] {
	return &Chain[T]{
		result: outcome.Try(c.result, tryOnSuccess),
	}
}

// MapSame transforms the value without changing its type.
func (c *Chain[T]) MapSame(onSuccess func(in T) T) *Chain[T] {
	return &Chain[T]{
		result: outcome.Map(c.result, onSuccess),
	}
}

// Then chains a function that returns outcome.Result[U].
func Then[T, U any](c *Chain[T], onSuccess func(in T) outcome.Result[U]) *Chain[U] {
	return &Chain[U]{
		result: outcome.AndThen(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(in T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: outcome.Try(c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function.
func Map[T, U any](c *Chain[T], onSuccess func(in T) U) *Chain[U] {
	return &Chain[U]{
		result: outcome.Map(c.result, onSuccess),
	}
}

// Check demotes a success to a failure when probe reports an error.
func (c *Chain[T]) Check(probe func(in T) error) *Chain[T] {
	return &Chain[T]{
		result: outcome.FailOn(c.result, probe),
	}
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(in T)) *Chain[T] {
	return &Chain[T]{
		result: outcome.Tee(c.result, onSuccess),
	}
}

// Finally collapses the chain into a final value via the two handlers.
func Finally[T, U any](c *Chain[T],
	onSuccess func(in T) U,
	onFailure func(err error) U) U {

	return outcome.Finally(c.result, onSuccess, onFailure)
}
