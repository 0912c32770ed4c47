package dimension

import (
	"errors"
	"fmt"
)

// ErrMismatch is matched (via errors.Is) by every *MismatchError.
var ErrMismatch = errors.New("dimension mismatch")

// MismatchError reports two dimension vectors that were required to be equal.
type MismatchError struct {
	Expected Vector
	Actual   Vector
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrMismatch) succeed.
func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// Check returns a *MismatchError unless expected == actual.
func Check(expected, actual Vector) error {
	if expected == actual {
		return nil
	}
	return &MismatchError{Expected: expected, Actual: actual}
}
