package adapt

import (
	"fmt"

	"github.com/fsprojects/Chessie/pkg/rop"
	"github.com/fsprojects/Chessie/pkg/rop/option"
)

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func FromOption[T, E any](o option.Option[T], errIfAbsent E) rop.Result[T, E] {
	if v, ok := o.Get(); ok {
		return rop.Succeed[T, E](v)
	}
	return rop.FailWith[T](errIfAbsent)
}

// FromOk adapts a comma-ok pair, e.g. a map lookup.
func FromOk[T, E any](value T, ok bool, errIfAbsent E) rop.Result[T, E] {
	return FromOption(option.FromOk(value, ok), errIfAbsent)
}

func FromPtr[T, E any](ptr *T, errIfNil E) rop.Result[T, E] {
	return FromOption(option.FromPtr(ptr), errIfNil)
}

// FromTuple adapts a (value, error) pair. An error built with errors.Join
// becomes one message per joined error.
func FromTuple[T any](value T, err error) rop.Result[T, error] {
	if rop.IsNil(err) {
		return rop.Succeed[T, error](value)
	}
	return rop.FailWith[T](rop.GetErrors(err)...)
}

// Try calls fn and converts its error, or a panic raised inside it, into a
// single-error Bad. Nothing raised by fn reaches the caller.
func Try[T any](fn func() (T, error)) (result rop.Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			result = rop.FailWith[T](recovered(r))
		}
	}()

	value, err := fn()
	if !rop.IsNil(err) {
		return rop.FailWith[T](err)
	}
	return rop.Succeed[T, error](value)
}

// Catch calls fn and captures a panic raised inside it as the only error.
func Catch[T any](fn func() T) rop.Result[T, error] {
	return Try(func() (T, error) {
		return fn(), nil
	})
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
