package focus

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes malformed arguments (wrong shape of value) from
// arguments that are well-formed but semantically invalid.
type ErrorKind int

const (
	// KindType marks an argument whose value is the wrong kind of thing,
	// e.g. a NaN weight. Most type mistakes are caught by the compiler;
	// this covers the ones that are not.
	KindType ErrorKind = iota + 1

	// KindValue marks an argument of the right kind with an invalid value:
	// out of range, unknown enum member, missing required field, empty list.
	KindValue
)

// Error is the validation error returned by every function in this package.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func typeErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindType, msg: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindValue, msg: fmt.Sprintf(format, args...)}
}

// IsTypeError reports whether err is a focus validation error of kind KindType.
func IsTypeError(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindType
}

// IsValueError reports whether err is a focus validation error of kind KindValue.
func IsValueError(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindValue
}
