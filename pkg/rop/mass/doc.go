// Package mass combines independent Results and keeps every failure. Unlike
// solo.Bind, nothing short-circuits: each operand is an already evaluated
// Result, and when several are Bad their errors are concatenated in argument
// order. Warnings concatenate only when every operand succeeded.
//
// N-ary functions are applied one argument at a time: curry the function
// (see package curry), wrap it with rop.Succeed and feed each argument with
// Apply. Lift2, Lift3 and Join cover the common small arities.
package mass
