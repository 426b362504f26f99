package svgattr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnset is returned by required reads when the key is absent.
	ErrUnset = errors.New("svgattr: attribute not set")

	// ErrTypeMismatch is wrapped by TypeError.
	ErrTypeMismatch = errors.New("svgattr: type mismatch")
)

// TypeError reports a value which can't be coerced
// to the requested kind.
type TypeError struct {
	Key  string
	Want Kind
	Got  Kind
	Err  error // optional, the coercion failure
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("svgattr: attribute %q: can't read %s as %s: %s", e.Key, e.Got, e.Want, e.Err)
	}
	return fmt.Sprintf("svgattr: attribute %q: can't read %s as %s", e.Key, e.Got, e.Want)
}

// Unwrap allows matching both ErrTypeMismatch and the
// underlying coercion error with errors.Is.
func (e *TypeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeMismatch}
	}
	return []error{ErrTypeMismatch, e.Err}
}

func unsetError(key string) error {
	return fmt.Errorf("%w: %q", ErrUnset, key)
}
