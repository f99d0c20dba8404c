// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of Result[T, E] values that keep the same value type.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map: compose result-returning or plain functions (short-circuit on Bad)
// - RepeatUntil: loop a step until the value satisfies a predicate
// - While: loop a step while the value satisfies a predicate
// - Or/And: pick between chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Use solo.Bind directly when a step changes the value type.
package tiny
