package solo

import (
	"github.com/fsprojects/Chessie/pkg/rop"
)

func Validate[T, E any](input T, validate func(in T) (isValid bool, errMsg E)) rop.Result[T, E] {
	return AndValidate(rop.Succeed[T, E](input), validate)
}

func AndValidate[T, E any](input rop.Result[T, E],
	validate func(in T) (valid bool, errMsg E)) rop.Result[T, E] {

	v, ok := input.Value()
	if !ok {
		return input
	}

	if isValid, errMsg := validate(v); !isValid {
		return rop.FailWith[T](errMsg)
	}
	return input
}

// ValidateAll runs every check against the input value. With breakOnError
// the first failing check ends the run; otherwise all checks run and their
// messages are collected in order.
func ValidateAll[T, E any](
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	validates ...func(in T) (valid bool, errMsg E)) rop.Result[T, E] {

	v, ok := input.Value()
	if !ok {
		return input
	}

	var errs []E
	for _, validate := range validates {
		if valid, errMsg := validate(v); !valid {
			errs = append(errs, errMsg)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return rop.FailWith[T](errs...)
	}
	return input
}

// Bind feeds the success value into onSuccess. A Bad input is returned
// without calling onSuccess. Warnings of the input are prepended to the
// warnings of a successful step and dropped if the step fails.
func Bind[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {

	v, ok := input.Value()
	if !ok {
		return rop.FailFrom[In, Out](input)
	}

	next := onSuccess(v)
	if next.IsFailure() {
		return next
	}
	return rop.MergeMessages(input.Warnings(), next)
}

func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) Out) rop.Result[Out, E] {
	v, ok := input.Value()
	if !ok {
		return rop.FailFrom[In, Out](input)
	}
	return rop.Succeed(onSuccess(v), input.Warnings()...)
}

// Flatten collapses a nested Result, concatenating outer then inner warnings.
func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	return Bind(input, func(inner rop.Result[T, E]) rop.Result[T, E] {
		return inner
	})
}

// Try binds a step that reports failure through a Go error.
func Try[In, Out any](input rop.Result[In, error],
	onTryExecute func(r In) (Out, error)) rop.Result[Out, error] {

	return Bind(input, func(v In) rop.Result[Out, error] {
		out, err := onTryExecute(v)
		if !rop.IsNil(err) {
			return rop.FailWith[Out](err)
		}
		return rop.Succeed[Out, error](out)
	})
}

func FailOnError[T any](input rop.Result[T, error], maybeErr func(in T) error) rop.Result[T, error] {
	v, ok := input.Value()
	if !ok {
		return input
	}
	if err := maybeErr(v); !rop.IsNil(err) {
		return rop.FailWith[T](err)
	}
	return input
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if v, ok := input.Value(); ok {
		onSuccess(v)
	}
	return input
}

func TeeIf[T, E any](input rop.Result[T, E],
	condition func(r T) bool,
	onSuccessAndCondition func(r T)) rop.Result[T, E] {

	if v, ok := input.Value(); ok && condition(v) {
		onSuccessAndCondition(v)
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E],
	onSuccess func(r T, warnings []E),
	onError func(errs []E)) rop.Result[T, E] {

	if v, ok := input.Value(); ok {
		onSuccess(v, input.Warnings())
	} else {
		onError(input.Errors())
	}
	return input
}

// DoubleMap maps the success value and every message, keeping the variant.
func DoubleMap[In, Out, E, F any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onMessage func(msg E) F) rop.Result[Out, F] {

	msgs := mapMessages(input.Messages(), onMessage)
	if v, ok := input.Value(); ok {
		return rop.Succeed(onSuccess(v), msgs...)
	}
	return rop.FailWith[Out](msgs...)
}

// MapFailure changes the message type of warnings and errors alike.
func MapFailure[T, E, F any](input rop.Result[T, E], onMessage func(msg E) F) rop.Result[T, F] {
	return DoubleMap(input, func(v T) T { return v }, onMessage)
}

func mapMessages[E, F any](msgs []E, fn func(E) F) []F {
	out := make([]F, len(msgs))
	for i, m := range msgs {
		out[i] = fn(m)
	}
	return out
}
