// Package curry turns functions of two to eight arguments into chains of
// single-argument functions, the shape mass.Apply consumes.
//
//	add3 := curry.Curry3(func(a, b, c int) int { return a + b + c })
//	sum := mass.Apply(mass.Apply(mass.Apply(rop.Succeed[func(int) func(int) func(int) int, string](add3), a), b), c)
package curry
