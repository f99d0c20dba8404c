package rop

// Concat returns left followed by right in a new slice. Neither input is
// modified, so Results built from the output never share a backing array.
func Concat[E any](left, right []E) []E {
	out := make([]E, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...)
}

// MergeMessages prepends msgs to the warnings of an Ok and appends them to
// the errors of a Bad.
func MergeMessages[T, E any](msgs []E, r Result[T, E]) Result[T, E] {
	if r.failed {
		return Result[T, E]{messages: Concat(r.messages, msgs), failed: true}
	}
	return Result[T, E]{value: r.value, messages: Concat(msgs, r.messages)}
}

func AddMessage[T, E any](msg E, r Result[T, E]) Result[T, E] {
	return MergeMessages([]E{msg}, r)
}

// Combine merges two Results whose values are already known, using fn on
// dual success. Warnings concatenate on dual success; a failed side keeps
// only its errors and two failed sides concatenate left then right.
func Combine[A, B, C, E any](left Result[A, E], right Result[B, E], fn func(A, B) C) Result[C, E] {
	switch {
	case left.failed && right.failed:
		return Result[C, E]{messages: Concat(left.messages, right.messages), failed: true}
	case left.failed:
		return FailFrom[A, C](left)
	case right.failed:
		return FailFrom[B, C](right)
	}
	return Result[C, E]{
		value:    fn(left.value, right.value),
		messages: Concat(left.messages, right.messages),
	}
}

func clone[E any](msgs []E) []E {
	if len(msgs) == 0 {
		return []E{}
	}
	out := make([]E, len(msgs))
	copy(out, msgs)
	return out
}
