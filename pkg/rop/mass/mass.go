package mass

import (
	"github.com/fsprojects/Chessie/pkg/rop"
	"github.com/fsprojects/Chessie/pkg/rop/curry"
)

// Apply calls the wrapped function with the wrapped argument. If both are
// Bad the result carries the function's errors followed by the argument's.
func Apply[A, B, E any](fn rop.Result[func(A) B, E], arg rop.Result[A, E]) rop.Result[B, E] {
	return rop.Combine(fn, arg, func(f func(A) B, a A) B {
		return f(a)
	})
}

func Lift[A, B, E any](fn func(A) B, a rop.Result[A, E]) rop.Result[B, E] {
	return Apply(rop.Succeed[func(A) B, E](fn), a)
}

func Lift2[A, B, C, E any](fn func(A, B) C, a rop.Result[A, E], b rop.Result[B, E]) rop.Result[C, E] {
	return Apply(Apply(rop.Succeed[func(A) func(B) C, E](curry.Curry2(fn)), a), b)
}

func Lift3[A, B, C, D, E any](fn func(A, B, C) D,
	a rop.Result[A, E], b rop.Result[B, E], c rop.Result[C, E]) rop.Result[D, E] {
	return Apply(Apply(Apply(rop.Succeed[func(A) func(B) func(C) D, E](curry.Curry3(fn)), a), b), c)
}

// Join merges two independently computed Results with combine.
func Join[A, B, C, E any](left rop.Result[A, E], right rop.Result[B, E],
	combine func(l A, r B) C) rop.Result[C, E] {
	return Lift2(combine, left, right)
}

// Collect turns a slice of Results into a Result of the slice. Every Bad
// element contributes its errors; on full success warnings are kept in
// element order.
func Collect[T, E any](results []rop.Result[T, E]) rop.Result[[]T, E] {
	acc := rop.Succeed[[]T, E](make([]T, 0, len(results)))
	for _, r := range results {
		acc = rop.Combine(acc, r, func(values []T, v T) []T {
			return append(values, v)
		})
	}
	return acc
}

// Traverse maps every item with fn and collects the outcomes. fn is called
// for every item regardless of earlier failures.
func Traverse[A, B, E any](items []A, fn func(A) rop.Result[B, E]) rop.Result[[]B, E] {
	results := make([]rop.Result[B, E], 0, len(items))
	for _, item := range items {
		results = append(results, fn(item))
	}
	return Collect(results)
}
