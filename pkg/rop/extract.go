package rop

import "errors"

// Match runs exactly one of the handlers and returns its value.
func Match[T, E, R any](r Result[T, E],
	onSuccess func(value T, warnings []E) R,
	onFailure func(errs []E) R) R {

	if r.failed {
		return onFailure(clone(r.messages))
	}
	return onSuccess(r.value, clone(r.messages))
}

// Either is Match for expression-style call sites; both handlers must
// produce the same type.
func Either[T, E, R any](r Result[T, E],
	onSuccess func(value T, warnings []E) R,
	onFailure func(errs []E) R) R {
	return Match(r, onSuccess, onFailure)
}

// ToTuple converts a Result of errors back to the (value, error) pair. All
// errors are joined with errors.Join; warnings are dropped.
func ToTuple[T any](r Result[T, error]) (T, error) {
	if r.failed {
		var zero T
		return zero, errors.Join(r.messages...)
	}
	return r.value, nil
}
