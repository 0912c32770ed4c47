package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when two operands differ in rows or cols.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrOutOfRange is returned for a row or column outside the data.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned when constructing data without rows or columns.
	ErrEmpty = errors.New("empty data")

	// ErrJagged is returned when the rows of a 2-D input differ in length.
	ErrJagged = errors.New("jagged input")

	// ErrDivideByZero is returned by Normalize when the sum of all cells is zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrTooLarge is returned when rows*cols exceeds the addressable positions.
	ErrTooLarge = errors.New("data too large")
)

func checkSizes(a, b Data) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrSizeMismatch)
	}
	return nil
}

func checkIndex(d Data, row, col int) error {
	if row < 0 || row >= d.Rows() || col < 0 || col >= d.Cols() {
		return fmt.Errorf("cell (%d,%d) of %dx%d: %w", row, col, d.Rows(), d.Cols(), ErrOutOfRange)
	}
	return nil
}
