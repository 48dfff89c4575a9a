// Package seq contains the short-circuit evaluator: it drives a lazy,
// cooperatively-produced sequence of checks and folds it into exactly one
// Result, stopping at the first failure.
//
// A producer runs forward, hands each intermediate check to yield, and
// supplies a final value once the sequence is exhausted. Checks past the
// first failure are never requested, which matters when producing a check
// has side effects. A runtime panic raised while driving a producer is
// contained at the boundary and returned as a failure carrying
// outcome.PanicError; the evaluator itself never panics.
//
// Highlights:
// - Run/RunResult: direct-value mode — wrap a plain value, pass a Result through
// - Sequence/SequenceResult: drive checks, then wrap (or pass through) the final value
// - Guard: drive checks with no final value; exhaustion yields Success(true)
// - Failed/Passed/CheckThat: adapt errors and predicates into checks
// - FromResults/FromErrors/Each: lift existing values into lazy check sequences
// - FirstFailure/All: fold a check sequence to its first error, or to all of them
package seq
