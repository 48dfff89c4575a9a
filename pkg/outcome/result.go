package outcome

import (
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
)

// Result holds either a success value of type T or an error, never both.
// The live branch is tracked by an explicit flag, so legitimate zero
// values (false, 0, "") are never mistaken for failures. A Result is
// immutable once constructed.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Success builds a Result carrying v on the success branch.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Done reports a successful operation that produces no value of its own.
func Done() Result[bool] {
	return Success(true)
}

// Fail builds a Result carrying err on the error branch. A nil err is
// replaced with ErrFailed so the error branch always has a payload.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrFailed
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failf builds a failure from a printf-style message.
func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](errs.New(format, args...))
}

// Of adapts an idiomatic (value, error) pair: a nil error picks the
// success branch, anything else the error branch.
func Of[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Fail[T](err)
}

// FailFrom re-types a failed Result, preserving its error and metadata.
// Intended for propagating failures across value types.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error if the operation failed.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess returns true if the operation was successful.
func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the operation failed.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt returns the creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id returns the identity stamped at construction.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}
