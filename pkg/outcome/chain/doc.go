// Package chain provides a fluent wrapper around Result[T] for composing
// fallible steps that stop at the first failure.
//
// It wraps the core combinators (AndThen, Try, Map, Tee, Finally) behind
// a convenient Chain[T] type, so pipelines read top to bottom without
// branching on the result at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a plain value
// - Then: switch to a new Result via a function (package-level when the type changes)
// - ThenTry: call a function returning (U, error) and convert the error to a failure
// - Map: transform the successful value
// - Check: demote a success to a failure when a probe reports an error
// - Ensure: run a side effect on success without changing the result
// - Finally/Unwrap/Result: collapse the chain into a final value
package chain
