// Package solo contains the sequential ROP primitives that operate on a
// single Result[T, E]. Every function short-circuits: once a step fails the
// remaining functions are not called and the first failure is what surfaces.
//
// Highlights:
// - Validate/AndValidate/ValidateAll: apply checks producing failure on invalid input
// - Bind: move from Result[In, E] to Result[Out, E] through a step that may fail
// - Map/DoubleMap/MapFailure: transform the value and/or the messages
// - Flatten: collapse Result[Result[T, E], E]
// - Try/FailOnError: steps that report failure through a Go error
// - Tee/TeeIf/DoubleTee: side-effect helpers
//
// For combining independent Results while keeping every error, see package
// mass.
package solo
