package rop

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoErrors   = errors.New("rop: failure requires at least one error")
	ErrNotSuccess = errors.New("rop: result is not a success")
	ErrNotFailure = errors.New("rop: result is not a failure")
)

// Result is either Ok(value, warnings) or Bad(errors). The zero value is
// Ok with the zero T and no warnings.
type Result[T, E any] struct {
	value    T
	messages []E
	failed   bool
}

func Succeed[T, E any](value T, warnings ...E) Result[T, E] {
	return Result[T, E]{
		value:    value,
		messages: clone(warnings),
	}
}

// Warn is Succeed with exactly one warning.
func Warn[T, E any](warning E, value T) Result[T, E] {
	return Succeed(value, warning)
}

// FailWith panics with ErrNoErrors when errs is empty.
func FailWith[T, E any](errs ...E) Result[T, E] {
	if len(errs) == 0 {
		panic(fmt.Errorf("FailWith: %w", ErrNoErrors))
	}
	return Result[T, E]{
		messages: clone(errs),
		failed:   true,
	}
}

// FailFrom moves the errors of a failed Result to another success type.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	if !from.failed {
		panic(fmt.Errorf("FailFrom: %w", ErrNotFailure))
	}
	return Result[Out, E]{
		messages: from.messages,
		failed:   true,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r Result[T, E]) Warnings() []E {
	if r.failed {
		return []E{}
	}
	return clone(r.messages)
}

func (r Result[T, E]) Errors() []E {
	if !r.failed {
		return []E{}
	}
	return clone(r.messages)
}

// Messages returns the warnings of an Ok or the errors of a Bad.
func (r Result[T, E]) Messages() []E {
	return clone(r.messages)
}

func (r Result[T, E]) SucceededWith() T {
	if r.failed {
		panic(fmt.Errorf("SucceededWith on %v: %w", r, ErrNotSuccess))
	}
	return r.value
}

func (r Result[T, E]) FailedWith() []E {
	if !r.failed {
		panic(fmt.Errorf("FailedWith on %v: %w", r, ErrNotFailure))
	}
	return clone(r.messages)
}

func (r Result[T, E]) String() string {
	msgs := make([]string, len(r.messages))
	for i, m := range r.messages {
		msgs[i] = fmt.Sprint(m)
	}
	if r.failed {
		return fmt.Sprintf("Bad([%s])", strings.Join(msgs, ", "))
	}
	return fmt.Sprintf("Ok(%v, [%s])", r.value, strings.Join(msgs, ", "))
}

// Equal reports whether a and b are the same variant with equal values and
// element-wise equal messages.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.failed != b.failed {
		return false
	}
	if !a.failed && a.value != b.value {
		return false
	}
	if len(a.messages) != len(b.messages) {
		return false
	}
	for i := range a.messages {
		if a.messages[i] != b.messages[i] {
			return false
		}
	}
	return true
}
