package rop

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an errors.Join tree one level into its members.
// Any other error, including a multi-%w fmt.Errorf wrapper, is returned
// whole so its own text is kept.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	members := e.Unwrap()
	joined := errors.Join(members...)
	if joined == nil || joined.Error() != err.Error() {
		return []error{err}
	}
	return members
}
