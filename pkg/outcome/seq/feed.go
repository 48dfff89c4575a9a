package seq

import (
	"iter"

	"github.com/zeebo/errs"

	"github.com/ib-77/outcome/pkg/outcome"
)

// check adapts a bare error into the Check interface.
type check struct {
	err error
}

func (c check) IsSuccess() bool { return c.err == nil }
func (c check) Err() error      { return c.err }

// Failed adapts err into a failing check. A nil err adapts into a
// passing one.
func Failed(err error) Check {
	if outcome.IsNil(err) {
		return check{}
	}
	return check{err: err}
}

// Passed is an explicitly passing checkpoint.
func Passed() Check {
	return check{}
}

// CheckThat turns a predicate into a checkpoint, failing with the
// printf-style message when ok is false.
func CheckThat(ok bool, format string, args ...any) Check {
	if ok {
		return check{}
	}
	return check{err: errs.New(format, args...)}
}

// FromResults lifts results into a lazily produced check sequence.
func FromResults[T any](rs ...outcome.Result[T]) iter.Seq[Check] {
	return func(yield func(Check) bool) {
		for _, r := range rs {
			if !yield(r) {
				return
			}
		}
	}
}

// FromErrors lifts errors into a lazily produced check sequence; nil
// entries become passing checks.
func FromErrors(list ...error) iter.Seq[Check] {
	return func(yield func(Check) bool) {
		for _, err := range list {
			if !yield(Failed(err)) {
				return
			}
		}
	}
}

// Each checks every element of vs with f, lazily: f runs only when the
// consumer requests the next check.
func Each[T any](vs []T, f func(v T) error) iter.Seq[Check] {
	return func(yield func(Check) bool) {
		for _, v := range vs {
			if !yield(Failed(f(v))) {
				return
			}
		}
	}
}

// Feed forwards a prepared check sequence to a producer's yield,
// reporting whether the consumer still wants more.
func Feed(yield func(Check) bool, checks iter.Seq[Check]) bool {
	for c := range checks {
		if !yield(c) {
			return false
		}
	}
	return true
}
