package container

import (
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/linalg"
	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

// Matrix is an immutable matrix of kind K.
type Matrix[K unit.Quantity] struct {
	base[K]
}

// MutableMatrix is a matrix of kind K with in-place operations.
type MutableMatrix[K unit.Quantity] struct {
	mutator[K]
}

// NewMatrix converts rectangular values from u to standard units.
func NewMatrix[K unit.Quantity](values [][]float64, u unit.Unit[K], hint storage.Type) (*Matrix[K], error) {
	d, err := storage.New(values, u.Definition(), hint)
	if err != nil {
		return nil, err
	}
	return &Matrix[K]{base[K]{data: d, unit: u}}, nil
}

// NewMatrixSI stores rectangular standard-unit values displayed in u.
func NewMatrixSI[K unit.Quantity](si [][]float64, u unit.Unit[K], hint storage.Type) (*Matrix[K], error) {
	d, err := storage.New(si, nil, hint)
	if err != nil {
		return nil, err
	}
	return &Matrix[K]{base[K]{data: d, unit: u}}, nil
}

// NewSparseMatrix returns a rows x cols matrix whose cells are zero except
// the given entries, expressed in u.
func NewSparseMatrix[K unit.Quantity](entries []storage.Entry, rows, cols int, u unit.Unit[K], hint storage.Type) (*Matrix[K], error) {
	d, err := storage.FromSparse(entries, rows, cols, u.Definition(), hint)
	if err != nil {
		return nil, err
	}
	return &Matrix[K]{base[K]{data: d, unit: u}}, nil
}

// Get returns cell (row, col).
func (m *Matrix[K]) Get(row, col int) (scalar.Rel[K], error) { return m.get(row, col) }

// GetSI returns cell (row, col) in standard units.
func (m *Matrix[K]) GetSI(row, col int) (float64, error) { return m.getSI(row, col) }

// GetInUnit returns cell (row, col) in the display unit.
func (m *Matrix[K]) GetInUnit(row, col int) (float64, error) { return m.getInUnit(row, col) }

// ValuesSI2D returns a copy of the standard-unit values as rows.
func (m *Matrix[K]) ValuesSI2D() [][]float64 { return m.data.Dense2D() }

// Row returns row r as a vector.
func (m *Matrix[K]) Row(r int) (*Vector[K], error) { return m.row(r) }

// Column returns column c as a vector.
func (m *Matrix[K]) Column(c int) (*Vector[K], error) { return m.column(c) }

// Diagonal returns the diagonal of a square matrix.
func (m *Matrix[K]) Diagonal() (*Vector[K], error) { return m.diagonal() }

// Transpose returns the transposed matrix.
func (m *Matrix[K]) Transpose() *Matrix[K] { return &Matrix[K]{m.transpose()} }

// Determinant returns the determinant of a square matrix. Its dimensions are
// K's raised to the matrix order, promoted to a named kind when registered.
func (m *Matrix[K]) Determinant() (scalar.Quantity, error) { return m.determinant() }

// Eigenvalues returns the eigenvalues of the standard-unit values.
func (m *Matrix[K]) Eigenvalues() ([]complex128, error) { return linalg.Eigenvalues(m.data.Dense2D()) }

// Plus returns m + o, displayed in m's unit.
func (m *Matrix[K]) Plus(o Same[K]) (*Matrix[K], error) {
	b, err := m.plus(o)
	if err != nil {
		return nil, err
	}
	return &Matrix[K]{b}, nil
}

// Minus returns m - o, displayed in m's unit.
func (m *Matrix[K]) Minus(o Same[K]) (*Matrix[K], error) {
	b, err := m.minus(o)
	if err != nil {
		return nil, err
	}
	return &Matrix[K]{b}, nil
}

// Mutable returns a mutable matrix sharing m's storage.
func (m *Matrix[K]) Mutable() *MutableMatrix[K] {
	return &MutableMatrix[K]{mutator[K]{m.share()}}
}

// Immutable returns a matrix sharing m's storage.
func (m *Matrix[K]) Immutable() *Matrix[K] { return &Matrix[K]{m.share()} }

// ToDense returns a dense copy.
func (m *Matrix[K]) ToDense() *Matrix[K] { return &Matrix[K]{m.converted(storage.TypeDense)} }

// ToSparse returns a sparse copy.
func (m *Matrix[K]) ToSparse() *Matrix[K] { return &Matrix[K]{m.converted(storage.TypeSparse)} }

// Equal reports whether o holds the same standard-unit values.
func (m *Matrix[K]) Equal(o Same[K]) bool { return m.equal(o) }

// Get returns cell (row, col).
func (m *MutableMatrix[K]) Get(row, col int) (scalar.Rel[K], error) { return m.get(row, col) }

// GetSI returns cell (row, col) in standard units.
func (m *MutableMatrix[K]) GetSI(row, col int) (float64, error) { return m.getSI(row, col) }

// GetInUnit returns cell (row, col) in the display unit.
func (m *MutableMatrix[K]) GetInUnit(row, col int) (float64, error) { return m.getInUnit(row, col) }

// ValuesSI2D returns a copy of the standard-unit values as rows.
func (m *MutableMatrix[K]) ValuesSI2D() [][]float64 { return m.data.Dense2D() }

// Row returns a copy of row r as a vector.
func (m *MutableMatrix[K]) Row(r int) (*Vector[K], error) { return m.row(r) }

// Column returns a copy of column c as a vector.
func (m *MutableMatrix[K]) Column(c int) (*Vector[K], error) { return m.column(c) }

// Diagonal returns the diagonal of a square matrix.
func (m *MutableMatrix[K]) Diagonal() (*Vector[K], error) { return m.diagonal() }

// Transpose returns the transposed matrix.
func (m *MutableMatrix[K]) Transpose() *MutableMatrix[K] {
	return &MutableMatrix[K]{mutator[K]{m.transpose()}}
}

// Determinant returns the determinant of a square matrix.
func (m *MutableMatrix[K]) Determinant() (scalar.Quantity, error) { return m.determinant() }

// Set overwrites cell (row, col).
func (m *MutableMatrix[K]) Set(row, col int, q scalar.Rel[K]) error { return m.set(row, col, q.SI()) }

// SetSI overwrites cell (row, col) with a standard-unit value.
func (m *MutableMatrix[K]) SetSI(row, col int, si float64) error { return m.set(row, col, si) }

// SetInUnit overwrites cell (row, col) with value expressed in u.
func (m *MutableMatrix[K]) SetInUnit(row, col int, value float64, u unit.Unit[K]) error {
	return m.set(row, col, u.ToStandard(value))
}

// Plus returns m + o as a new mutable matrix.
func (m *MutableMatrix[K]) Plus(o Same[K]) (*MutableMatrix[K], error) {
	b, err := m.plus(o)
	if err != nil {
		return nil, err
	}
	return &MutableMatrix[K]{mutator[K]{b}}, nil
}

// Minus returns m - o as a new mutable matrix.
func (m *MutableMatrix[K]) Minus(o Same[K]) (*MutableMatrix[K], error) {
	b, err := m.minus(o)
	if err != nil {
		return nil, err
	}
	return &MutableMatrix[K]{mutator[K]{b}}, nil
}

// Mutable returns a mutable matrix sharing m's storage.
func (m *MutableMatrix[K]) Mutable() *MutableMatrix[K] {
	return &MutableMatrix[K]{mutator[K]{m.share()}}
}

// Immutable returns a matrix sharing m's storage.
func (m *MutableMatrix[K]) Immutable() *Matrix[K] { return &Matrix[K]{m.share()} }

// ToDense switches m to dense storage.
func (m *MutableMatrix[K]) ToDense() { m.data, m.copyOnWrite = m.converted(storage.TypeDense).data, false }

// ToSparse switches m to sparse storage.
func (m *MutableMatrix[K]) ToSparse() { m.data, m.copyOnWrite = m.converted(storage.TypeSparse).data, false }

// Equal reports whether o holds the same standard-unit values.
func (m *MutableMatrix[K]) Equal(o Same[K]) bool { return m.equal(o) }

func (b *base[K]) row(r int) (*Vector[K], error) {
	vs, err := rowValues(b.data, r)
	if err != nil {
		return nil, err
	}
	return NewVectorSI(vs, b.unit, b.data.Type())
}

func (b *base[K]) column(c int) (*Vector[K], error) {
	vs, err := columnValues(b.data, c)
	if err != nil {
		return nil, err
	}
	return NewVectorSI(vs, b.unit, b.data.Type())
}

func rowValues(d storage.Data, r int) ([]float64, error) {
	if r < 0 || r >= d.Rows() {
		return nil, fmt.Errorf("row %d of %d: %w", r, d.Rows(), storage.ErrOutOfRange)
	}
	cols := d.Cols()
	return d.Values()[r*cols : (r+1)*cols], nil
}

func columnValues(d storage.Data, c int) ([]float64, error) {
	if c < 0 || c >= d.Cols() {
		return nil, fmt.Errorf("column %d of %d: %w", c, d.Cols(), storage.ErrOutOfRange)
	}
	vs := make([]float64, d.Rows())
	for r := range vs {
		vs[r], _ = d.At(r, c)
	}
	return vs, nil
}

func transposeData(d storage.Data) storage.Data {
	// a transpose of valid data is valid data
	t, _ := storage.New(linalg.Transpose(d.Dense2D()), nil, d.Type())
	return t
}

func (b *base[K]) diagonal() (*Vector[K], error) {
	n := b.data.Rows()
	if b.data.Cols() != n {
		return nil, fmt.Errorf("diagonal of %dx%d: %w", n, b.data.Cols(), linalg.ErrNotSquare)
	}
	vs := make([]float64, n)
	for i := range vs {
		vs[i], _ = b.data.At(i, i)
	}
	return NewVectorSI(vs, b.unit, b.data.Type())
}

func (b *base[K]) transpose() base[K] {
	return base[K]{data: transposeData(b.data), unit: b.unit}
}

func (b *base[K]) determinant() (scalar.Quantity, error) {
	det, err := linalg.Determinant(b.data.Dense2D())
	if err != nil {
		return nil, err
	}
	dims := dimension.Scale(unit.KindOf[K]().Dimensions(), dimension.Int(b.data.Rows()))
	return scalar.NewSI(det, dims).Promote(), nil
}
