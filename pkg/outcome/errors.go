package outcome

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrFailed is the payload of a failure constructed with a nil error.
var ErrFailed = errors.New("operation failed")

// IsNil reports whether i is nil, including typed nil pointers boxed in
// an interface.
func IsNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors unpacks err into its joined parts. A plain error yields a
// single-element slice; nil yields an empty one.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or
// an exceeded deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// PanicError carries a runtime fault captured at an evaluation boundary,
// so a panic can travel as an ordinary error value.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panicked value when it was itself an error, keeping
// errors.Is and errors.As usable on contained faults.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
