package color

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is matched by every parse failure via errors.Is
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError reports a value that cannot be interpreted as a color
type InvalidColorError struct {
	Value  string // The rejected input
	Reason string // Short description of what was wrong
}

func (e *InvalidColorError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid color %q", e.Value)
	}
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

// Unwrap lets callers test for ErrInvalidColor
func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}

func invalid(value, reason string) error {
	return &InvalidColorError{Value: value, Reason: reason}
}
