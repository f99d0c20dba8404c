package tiny

import (
	"github.com/fsprojects/Chessie/pkg/rop"
	"github.com/fsprojects/Chessie/pkg/rop/solo"
)

type Chain[T, E any] struct {
	res rop.Result[T, E]
}

func Start[T, E any](r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(rop.Succeed[T, E](v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(t T) rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: solo.Bind(c.res, onSuccess)}
}

// RepeatUntil runs onSuccess at least once and stops as soon as until
// reports true for the latest value, or a step fails.
func (c Chain[T, E]) RepeatUntil(onSuccess func(t T) rop.Result[T, E],
	until func(t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		v, ok := c.res.Value()
		if !ok || until(v) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(t T) rop.Result[T, E],
	while func(t T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Value()
		if !ok || !while(v) {
			return c
		}
		c = c.Then(onSuccess)
	}
}

// Or returns the first successful chain, or the first failure when none
// succeeded.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	return Chain[T, E]{res: solo.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T, []E), onFailure func([]E)) Chain[T, E] {
	if v, ok := c.res.Value(); ok {
		if onSuccess != nil {
			onSuccess(v, c.res.Warnings())
		}
		return c
	}

	if onFailure != nil {
		onFailure(c.res.Errors())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to rop.Either
func (c Chain[T, E]) Finally(onSuccess func(T, []E) T, onFailure func([]E) T) T {
	return rop.Either(c.res, onSuccess, onFailure)
}
