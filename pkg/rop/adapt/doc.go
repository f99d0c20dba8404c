// Package adapt bridges external representations into rop.Result:
// - FromOption/FromOk/FromPtr: an absent value becomes Bad([errIfAbsent])
// - FromTuple: Go's (value, error) pair
// - Try/Catch: calls that may panic; the panic is recovered and returned as
//   the sole error
//
// Try and Catch are the only functions in this module that recover panics.
// Combinators in solo and mass let a panic from a supplied function propagate.
package adapt
