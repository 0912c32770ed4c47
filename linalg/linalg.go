// Package linalg is the numeric backend for matrix algebra on raw
// standard-unit values. Results are plain numbers; callers decide which
// dimensions they carry.
package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSquare is returned for operations that need a square matrix.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrSingular is returned when a matrix has no inverse.
	ErrSingular = errors.New("matrix is singular")

	// ErrNoConvergence is returned when the eigen decomposition fails.
	ErrNoConvergence = errors.New("eigen decomposition did not converge")
)

func toDense(values [][]float64) (*mat.Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("0x0 matrix: %w", ErrNotSquare)
	}
	flat := make([]float64, 0, n*n)
	for r, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells in a %d-row matrix: %w", r, len(row), n, ErrNotSquare)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(n, n, flat), nil
}

// Determinant returns the determinant of a square matrix.
func Determinant(values [][]float64) (float64, error) {
	m, err := toDense(values)
	if err != nil {
		return 0, err
	}
	return mat.Det(m), nil
}

// Inverse returns the inverse of a square matrix.
func Inverse(values [][]float64) ([][]float64, error) {
	m, err := toDense(values)
	if err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		return nil, err
	}
	return rows(&inv), nil
}

// Eigenvalues returns the eigenvalues of a square matrix.
func Eigenvalues(values [][]float64) ([]complex128, error) {
	m, err := toDense(values)
	if err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, ErrNoConvergence
	}
	return eig.Values(nil), nil
}

// Transpose returns the transpose of a rectangular matrix.
func Transpose(values [][]float64) [][]float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([][]float64, len(values[0]))
	for c := range out {
		out[c] = make([]float64, len(values))
		for r := range values {
			out[c][r] = values[r][c]
		}
	}
	return out
}

func rows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		mat.Row(out[i], i, m)
	}
	return out
}
