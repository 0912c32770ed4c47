package storage

import (
	"fmt"
	"strings"

	"github.com/hupe1980/unitgo/internal/conv"
)

// Type selects the representation of Data.
type Type uint8

const (
	// TypeDense stores every cell.
	TypeDense Type = iota
	// TypeSparse stores only the non-zero cells.
	TypeSparse
)

func (t Type) String() string {
	switch t {
	case TypeDense:
		return "dense"
	case TypeSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType parses "dense" or "sparse".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dense", "":
		return TypeDense, nil
	case "sparse":
		return TypeSparse, nil
	default:
		return 0, fmt.Errorf("unknown storage type %q", s)
	}
}

// Scale converts input values to standard units. *unit.Definition and
// unit.Scale satisfy it.
type Scale interface {
	ToStandard(v float64) float64
}

// Data is a rows x cols block of standard-unit values. Vectors are n x 1.
type Data interface {
	Type() Type
	Rows() int
	Cols() int

	// At returns the value of a cell.
	At(row, col int) (float64, error)
	// Set overwrites the value of a cell.
	Set(row, col int, v float64) error

	// Cardinality returns the number of non-zero cells.
	Cardinality() int
	// Sum returns the sum of all cells.
	Sum() float64

	// Values returns a row-major copy of all cells.
	Values() []float64
	// Dense2D returns a copy of all cells as rows.
	Dense2D() [][]float64

	ToDense() *Dense
	ToSparse() *Sparse
	Copy() Data

	IncrementBy(c float64)
	DecrementBy(c float64)
	MultiplyBy(c float64)
	DivideBy(c float64)

	IncrementByData(o Data) error
	DecrementByData(o Data) error
	MultiplyByData(o Data) error
	DivideByData(o Data) error

	// Assign replaces every cell v by fn(v).
	Assign(fn func(float64) float64)

	// Normalize divides every cell by the sum of all cells.
	Normalize() error

	get(pos int) float64
}

// New converts values through scale and stores them with the representation
// selected by hint. A nil scale keeps the values as they are.
func New(values [][]float64, scale Scale, hint Type) (Data, error) {
	rows := len(values)
	if rows == 0 || len(values[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrJagged)
		}
	}
	if err := checkCapacity(rows, cols); err != nil {
		return nil, err
	}

	flat := make([]float64, rows*cols)
	err := parallelFor(rows, cols, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			dst := flat[r*cols : (r+1)*cols]
			if scale == nil {
				copy(dst, values[r])
				continue
			}
			for c, v := range values[r] {
				dst[c] = scale.ToStandard(v)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return fromFlat(flat, rows, cols, hint), nil
}

// NewVector is New for a single column.
func NewVector(values []float64, scale Scale, hint Type) (Data, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	if err := checkCapacity(len(values), 1); err != nil {
		return nil, err
	}
	flat := make([]float64, len(values))
	err := parallelFor(len(values), 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if scale == nil {
				flat[i] = values[i]
			} else {
				flat[i] = scale.ToStandard(values[i])
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return fromFlat(flat, len(values), 1, hint), nil
}

// FromSI stores row-major standard-unit values without conversion. The slice
// is not retained.
func FromSI(values []float64, rows, cols int, hint Type) (Data, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%d values for %dx%d: %w", len(values), rows, cols, ErrSizeMismatch)
	}
	if err := checkCapacity(rows, cols); err != nil {
		return nil, err
	}
	flat := make([]float64, len(values))
	copy(flat, values)
	return fromFlat(flat, rows, cols, hint), nil
}

// Entry is one cell of a sparse input.
type Entry struct {
	Row, Col int
	Value    float64
}

// FromSparse builds rows x cols data from the given cells; cells not listed
// are zero. Later entries overwrite earlier ones.
func FromSparse(entries []Entry, rows, cols int, scale Scale, hint Type) (Data, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}
	if err := checkCapacity(rows, cols); err != nil {
		return nil, err
	}
	s := newSparse(rows, cols)
	for _, e := range entries {
		v := e.Value
		if scale != nil {
			v = scale.ToStandard(v)
		}
		if err := s.Set(e.Row, e.Col, v); err != nil {
			return nil, err
		}
	}
	if hint == TypeDense {
		return s.ToDense(), nil
	}
	return s, nil
}

func fromFlat(flat []float64, rows, cols int, hint Type) Data {
	d := &Dense{rows: rows, cols: cols, values: flat}
	if hint == TypeSparse {
		return d.ToSparse()
	}
	return d
}

// checkCapacity ensures every row-major position fits the uint32 bitmap index.
func checkCapacity(rows, cols int) error {
	n, err := conv.MulInt(rows, cols)
	if err != nil {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrTooLarge)
	}
	if _, err := conv.IntToUint32(n); err != nil {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrTooLarge)
	}
	return nil
}

// Plus adds a and b cell by cell. The result is Sparse only if both operands
// are Sparse.
func Plus(a, b Data) (Data, error) {
	return combine(a, b, addOp, a.Type() == TypeSparse && b.Type() == TypeSparse)
}

// Minus subtracts b from a cell by cell. The result is Sparse only if both
// operands are Sparse.
func Minus(a, b Data) (Data, error) {
	return combine(a, b, subOp, a.Type() == TypeSparse && b.Type() == TypeSparse)
}

// Times multiplies a and b cell by cell. The result is Dense only if both
// operands are Dense.
//
// For two Sparse operands only the cells stored in both are multiplied, so an
// Inf or NaN facing an implicit zero gives 0. Any Dense operand evaluates
// every cell and gives NaN there, following IEEE 754.
func Times(a, b Data) (Data, error) {
	return combine(a, b, mulOp, !(a.Type() == TypeDense && b.Type() == TypeDense))
}

// Divide divides a by b cell by cell. The result is Dense only if both
// operands are Dense.
func Divide(a, b Data) (Data, error) {
	return combine(a, b, divOp, !(a.Type() == TypeDense && b.Type() == TypeDense))
}

type op uint8

const (
	addOp op = iota
	subOp
	mulOp
	divOp
)

func (o op) apply(a, b float64) float64 {
	switch o {
	case addOp:
		return a + b
	case subOp:
		return a - b
	case mulOp:
		return a * b
	default:
		return a / b
	}
}

func combine(a, b Data, o op, sparse bool) (Data, error) {
	if err := checkSizes(a, b); err != nil {
		return nil, err
	}
	if sa, ok := a.(*Sparse); ok && sparse {
		if sb, ok := b.(*Sparse); ok && o != divOp {
			return sa.combineSparse(sb, o), nil
		}
	}
	out := a.ToDense()
	if out == a {
		out = out.copyDense()
	}
	if err := out.combineInPlace(b, o); err != nil {
		return nil, err
	}
	if sparse {
		return out.ToSparse(), nil
	}
	return out, nil
}

// Equal reports whether a and b hold the same logical values, regardless of
// representation.
func Equal(a, b Data) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	n := a.Rows() * a.Cols()
	for p := 0; p < n; p++ {
		if a.get(p) != b.get(p) {
			return false
		}
	}
	return true
}
