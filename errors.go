package unitgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/unit"
)

var (
	// ErrUnknownUnit is returned when an abbreviation matches no unit.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrMissingUnit is returned for a Measurement without a unit, e.g. the
	// zero value left by a failed Parse.
	ErrMissingUnit = errors.New("measurement has no unit")
)

// ErrParse indicates input that could not be read as "<value> <unit>".
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrParse struct {
	Input string
	cause error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.cause)
}

func (e *ErrParse) Unwrap() error { return e.cause }

// ErrConversion indicates a conversion between units of different
// dimensions.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrConversion struct {
	From  string
	To    string
	cause error
}

func (e *ErrConversion) Error() string {
	return fmt.Sprintf("convert %s to %s: %v", e.From, e.To, e.cause)
}

func (e *ErrConversion) Unwrap() error { return e.cause }

func translateError(input string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, unit.ErrNotFound) {
		return &ErrParse{Input: input, cause: fmt.Errorf("%w: %w", ErrUnknownUnit, err)}
	}
	if errors.Is(err, scalar.ErrEmptyInput) || errors.Is(err, scalar.ErrSyntax) {
		return &ErrParse{Input: input, cause: err}
	}
	return err
}

func conversionError(from, to *unit.Definition) error {
	return &ErrConversion{
		From:  from.ID(),
		To:    to.ID(),
		cause: dimension.Check(from.Dimensions(), to.Dimensions()),
	}
}
