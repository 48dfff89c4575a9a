package outcome

// Unwrap extracts the success value and the error as a pair: (value, nil)
// on success, (zero value, error) on failure. It never panics.
func (r Result[T]) Unwrap() (T, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// UnwrapInto extracts the success value, reporting the error through the
// caller-owned slot. The slot is always written: nil on success, the
// error on failure, so a stale error never survives the call. On failure
// the returned value is the zero value of T.
//
// Failure is detected by the Result's own flag, never by the zero-ness
// of the value. Panics only when errSlot itself is nil.
func (r Result[T]) UnwrapInto(errSlot *error) T {
	if errSlot == nil {
		panic("outcome: UnwrapInto called with a nil error slot")
	}
	if r.isSuccess {
		*errSlot = nil
		return r.value
	}
	var zero T
	*errSlot = r.err
	return zero
}

// MustValue returns the success value and panics on failure. Use only
// where a failure is a programming error.
func (r Result[T]) MustValue() T {
	if !r.isSuccess {
		panic(r.err)
	}
	return r.value
}

// ValueOr returns the success value, or fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}
