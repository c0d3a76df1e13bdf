package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a license declaration is neither a string
// nor a list of strings. Malformed license text is not an error; it is a
// false verdict.
var ErrInvalidInput = errors.New("license must be a string or a list of strings")

// InputError wraps ErrInvalidInput with the offending value.
type InputError struct {
	Value any
	Index int // position in the list, -1 when the whole value is bad
}

func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("license list element %d is %T, not a string", e.Index, e.Value)
	}
	return fmt.Sprintf("license is %T, not a string or a list of strings", e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
