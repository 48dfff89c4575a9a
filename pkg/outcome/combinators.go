package outcome

// Single-value combinators over Result[T]. Each one runs its function
// only on the matching branch and passes the other branch through
// unchanged, so a chain of them stops doing work at the first failure.

// Validate builds a Result from a raw input by applying a validation
// predicate, producing a failure with errMsg when the input is invalid.
func Validate[T any](input T, validate func(in T) (valid bool, errMsg string)) Result[T] {
	if valid, errMsg := validate(input); !valid {
		return Failf[T]("%s", errMsg)
	}
	return Success(input)
}

// AndThen moves from Result[In] to Result[Out] by applying onSuccess to
// the success value. A failure is re-typed and returned untouched.
func AndThen[In, Out any](r Result[In], onSuccess func(in In) Result[Out]) Result[Out] {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return FailFrom[In, Out](r)
}

// Map transforms the success value with a function that cannot fail.
func Map[In, Out any](r Result[In], onSuccess func(in In) Out) Result[Out] {
	if r.IsSuccess() {
		return Success(onSuccess(r.Value()))
	}
	return FailFrom[In, Out](r)
}

// Try applies a function returning (Out, error) and converts a non-nil
// error into a failure.
func Try[In, Out any](r Result[In], onTry func(in In) (Out, error)) Result[Out] {
	if r.IsSuccess() {
		return Of(onTry(r.Value()))
	}
	return FailFrom[In, Out](r)
}

// FailOn demotes a success to a failure when maybeErr reports one.
func FailOn[T any](r Result[T], maybeErr func(in T) error) Result[T] {
	if r.IsSuccess() {
		if err := maybeErr(r.Value()); !IsNil(err) {
			return Fail[T](err)
		}
	}
	return r
}

// Tee triggers a side effect on success without changing the result.
func Tee[T any](r Result[T], onSuccess func(in T)) Result[T] {
	if r.IsSuccess() {
		onSuccess(r.Value())
	}
	return r
}

// TeeErr triggers a side effect on failure without changing the result.
func TeeErr[T any](r Result[T], onFailure func(err error)) Result[T] {
	if r.IsFailure() {
		onFailure(r.Err())
	}
	return r
}

// Finally collapses a Result to a plain value via one of two handlers.
func Finally[In, Out any](r Result[In],
	onSuccess func(in In) Out,
	onFailure func(err error) Out) Out {

	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}
