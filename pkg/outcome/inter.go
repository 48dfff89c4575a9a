package outcome

import "time"

// Fallible is the type-erased view of a Result: it reports whether an
// operation succeeded and, if not, its error. Every Result[T] implements
// it regardless of T, which lets heterogeneous results travel through one
// interface (the sequence evaluator relies on this).
type Fallible interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the error if the operation failed
	Err() error
}

type Provider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	Provider[T]
	Fallible
}
