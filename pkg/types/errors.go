package types

import (
	"errors"
	"fmt"
)

// These are the kinds of failure. Every Error wraps exactly one of them, so callers
// match with errors.Is rather than on codes.
var (
	// ErrInvalidArgument is returned for malformed construction parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned for positions outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidState is returned when the receiver's configuration makes an
	// operation meaningless.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnsupportedOperation is returned by mutators of immutable values.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Error is a failure with a kind, a dotted code naming where it arose, and a
// context of the values involved.
type Error struct {
	Kind    error
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	return fmt.Sprintf("%v: %+v: %+v", err.Kind, err.Code, err.Context)
}

func (err Error) Unwrap() error { return err.Kind }

// NewError builds an error of the given kind. The args are alternating context
// keys and values.
func NewError(kind error, code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Kind: kind, Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}
