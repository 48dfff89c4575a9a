package seq

import (
	"errors"
	"iter"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Check is one checkpoint of a sequence. Any Result satisfies it,
// whatever its value type; bare errors are adapted with Failed. A nil
// Check is ignorable and the evaluator skips it.
type Check = outcome.Fallible

// ErrCheckFailed is substituted when a failed check carries no error of
// its own, so the error branch of the evaluation result is never empty.
var ErrCheckFailed = errors.New("check failed with no error")

// Producer is a suspendable routine: it runs forward, hands each check
// to yield, and returns the final value of the sequence. It must stop as
// soon as yield reports false; the evaluator never requests another
// check after a failure.
type Producer[T any] func(yield func(Check) bool) T

// ProducerResult is a Producer whose final value is itself a Result.
type ProducerResult[T any] func(yield func(Check) bool) outcome.Result[T]

// GuardProducer yields checks and supplies no final value.
type GuardProducer func(yield func(Check) bool)

// Run executes a producer of a plain value and wraps it on the success
// branch. A panic inside f is contained and returned as a failure.
func Run[T any](f func() T) (res outcome.Result[T]) {
	defer contain(&res)
	return outcome.Success(f())
}

// RunResult executes a producer that already yields a Result and returns
// it unchanged (no double wrapping). A panic inside f is contained.
func RunResult[T any](f func() outcome.Result[T]) (res outcome.Result[T]) {
	defer contain(&res)
	return f()
}

// Sequence drives p one check at a time, strictly in production order.
// The first failed check stops the drive and becomes a fresh failure
// Result; the check's own Result is never returned. When every check
// passes, the producer's final value is wrapped with Success.
func Sequence[T any](p Producer[T]) (res outcome.Result[T]) {
	defer contain(&res)

	var firstErr error
	final := p(stopOnFailure(&firstErr))

	if firstErr != nil {
		return outcome.Fail[T](firstErr)
	}
	return outcome.Success(final)
}

// SequenceResult drives p like Sequence, but the producer's final value
// is already a Result and is returned unchanged when every check passed —
// even when that final Result is itself a failure.
func SequenceResult[T any](p ProducerResult[T]) (res outcome.Result[T]) {
	defer contain(&res)

	var firstErr error
	final := p(stopOnFailure(&firstErr))

	if firstErr != nil {
		return outcome.Fail[T](firstErr)
	}
	return final
}

// Guard drives a producer with no final value. Exhausting the sequence
// without a failure yields Success(true), the documented default for an
// absent final value.
func Guard(p GuardProducer) (res outcome.Result[bool]) {
	defer contain(&res)

	var firstErr error
	p(stopOnFailure(&firstErr))

	if firstErr != nil {
		return outcome.Fail[bool](firstErr)
	}
	return outcome.Done()
}

// FirstFailure folds a prepared check sequence to the first failing
// check's error, or nil when every check passes. Checks past the failure
// are not requested.
func FirstFailure(checks iter.Seq[Check]) error {
	var firstErr error
	checks(stopOnFailure(&firstErr))
	return firstErr
}

// All drives the whole sequence regardless of failures and joins every
// failing check's error. Unlike the evaluators it does not short-circuit;
// use it when a caller wants the complete picture.
func All(checks iter.Seq[Check]) error {
	var all []error
	for c := range checks {
		if outcome.IsNil(c) || c.IsSuccess() {
			continue
		}

		err := c.Err()
		if outcome.IsNil(err) {
			err = ErrCheckFailed
		}
		all = append(all, err)
	}
	return errors.Join(all...)
}

// stopOnFailure builds the yield callback shared by the evaluators: it
// records the first failing check's error into firstErr and tells the
// producer to stop. Passing and nil checks are discarded.
func stopOnFailure(firstErr *error) func(Check) bool {
	return func(c Check) bool {
		if *firstErr != nil {
			return false
		}
		if outcome.IsNil(c) || c.IsSuccess() {
			return true
		}

		err := c.Err()
		if outcome.IsNil(err) {
			err = ErrCheckFailed
		}
		*firstErr = err
		return false
	}
}

// contain converts a panic raised while driving a producer into a
// failure Result, so no fault escapes the evaluator boundary.
func contain[T any](res *outcome.Result[T]) {
	if r := recover(); r != nil {
		*res = outcome.Fail[T](&outcome.PanicError{Value: r})
	}
}
