package scalar

import "errors"

var (
	// ErrEmptyInput is returned when parsing an empty string.
	ErrEmptyInput = errors.New("empty input")

	// ErrSyntax is returned when a string is not "<value> <unit>".
	ErrSyntax = errors.New("invalid quantity syntax")
)
