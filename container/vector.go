package container

import (
	"fmt"

	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

// Vector is an immutable vector of kind K.
type Vector[K unit.Quantity] struct {
	base[K]
}

// MutableVector is a vector of kind K with in-place operations.
type MutableVector[K unit.Quantity] struct {
	mutator[K]
}

// NewVector converts values from u to standard units.
func NewVector[K unit.Quantity](values []float64, u unit.Unit[K], hint storage.Type) (*Vector[K], error) {
	d, err := storage.NewVector(values, u.Definition(), hint)
	if err != nil {
		return nil, err
	}
	return &Vector[K]{base[K]{data: d, unit: u}}, nil
}

// NewVectorSI stores standard-unit values displayed in u.
func NewVectorSI[K unit.Quantity](si []float64, u unit.Unit[K], hint storage.Type) (*Vector[K], error) {
	d, err := storage.FromSI(si, len(si), 1, hint)
	if err != nil {
		return nil, err
	}
	return &Vector[K]{base[K]{data: d, unit: u}}, nil
}

// NewSparseVector returns a vector of the given size whose cells are zero
// except the ones in values (index to value in u).
func NewSparseVector[K unit.Quantity](size int, values map[int]float64, u unit.Unit[K], hint storage.Type) (*Vector[K], error) {
	entries := make([]storage.Entry, 0, len(values))
	for i, v := range values {
		entries = append(entries, storage.Entry{Row: i, Value: v})
	}
	d, err := storage.FromSparse(entries, size, 1, u.Definition(), hint)
	if err != nil {
		return nil, err
	}
	return &Vector[K]{base[K]{data: d, unit: u}}, nil
}

// VectorOf builds a vector from quantities, displayed in the first one's unit.
func VectorOf[K unit.Quantity](hint storage.Type, values ...scalar.Rel[K]) (*Vector[K], error) {
	if len(values) == 0 {
		return nil, storage.ErrEmpty
	}
	si := make([]float64, len(values))
	for i, v := range values {
		si[i] = v.SI()
	}
	return NewVectorSI(si, values[0].Unit(), hint)
}

// Size returns the number of elements.
func (v *Vector[K]) Size() int { return v.data.Rows() }

// Get returns element i.
func (v *Vector[K]) Get(i int) (scalar.Rel[K], error) { return v.get(i, 0) }

// GetSI returns element i in standard units.
func (v *Vector[K]) GetSI(i int) (float64, error) { return v.getSI(i, 0) }

// GetInUnit returns element i in the display unit.
func (v *Vector[K]) GetInUnit(i int) (float64, error) { return v.getInUnit(i, 0) }

// Plus returns v + o, displayed in v's unit.
func (v *Vector[K]) Plus(o Same[K]) (*Vector[K], error) {
	b, err := v.plus(o)
	if err != nil {
		return nil, err
	}
	return &Vector[K]{b}, nil
}

// Minus returns v - o, displayed in v's unit.
func (v *Vector[K]) Minus(o Same[K]) (*Vector[K], error) {
	b, err := v.minus(o)
	if err != nil {
		return nil, err
	}
	return &Vector[K]{b}, nil
}

// Mutable returns a mutable vector sharing v's storage.
func (v *Vector[K]) Mutable() *MutableVector[K] {
	return &MutableVector[K]{mutator[K]{v.share()}}
}

// Immutable returns a vector sharing v's storage.
func (v *Vector[K]) Immutable() *Vector[K] {
	return &Vector[K]{v.share()}
}

// ToDense returns a dense copy.
func (v *Vector[K]) ToDense() *Vector[K] { return &Vector[K]{v.converted(storage.TypeDense)} }

// ToSparse returns a sparse copy.
func (v *Vector[K]) ToSparse() *Vector[K] { return &Vector[K]{v.converted(storage.TypeSparse)} }

// WithUnit returns a vector sharing v's storage displayed in u.
func (v *Vector[K]) WithUnit(u unit.Unit[K]) *Vector[K] {
	b := v.share()
	b.unit = u
	return &Vector[K]{b}
}

// Equal reports whether o holds the same standard-unit values.
func (v *Vector[K]) Equal(o Same[K]) bool { return v.equal(o) }

// Size returns the number of elements.
func (v *MutableVector[K]) Size() int { return v.data.Rows() }

// Get returns element i.
func (v *MutableVector[K]) Get(i int) (scalar.Rel[K], error) { return v.get(i, 0) }

// GetSI returns element i in standard units.
func (v *MutableVector[K]) GetSI(i int) (float64, error) { return v.getSI(i, 0) }

// GetInUnit returns element i in the display unit.
func (v *MutableVector[K]) GetInUnit(i int) (float64, error) { return v.getInUnit(i, 0) }

// Set overwrites element i.
func (v *MutableVector[K]) Set(i int, q scalar.Rel[K]) error { return v.set(i, 0, q.SI()) }

// SetSI overwrites element i with a standard-unit value.
func (v *MutableVector[K]) SetSI(i int, si float64) error { return v.set(i, 0, si) }

// SetInUnit overwrites element i with value expressed in u.
func (v *MutableVector[K]) SetInUnit(i int, value float64, u unit.Unit[K]) error {
	return v.set(i, 0, u.ToStandard(value))
}

// Plus returns v + o as a new mutable vector.
func (v *MutableVector[K]) Plus(o Same[K]) (*MutableVector[K], error) {
	b, err := v.plus(o)
	if err != nil {
		return nil, err
	}
	return &MutableVector[K]{mutator[K]{b}}, nil
}

// Minus returns v - o as a new mutable vector.
func (v *MutableVector[K]) Minus(o Same[K]) (*MutableVector[K], error) {
	b, err := v.minus(o)
	if err != nil {
		return nil, err
	}
	return &MutableVector[K]{mutator[K]{b}}, nil
}

// Mutable returns a mutable vector sharing v's storage.
func (v *MutableVector[K]) Mutable() *MutableVector[K] {
	return &MutableVector[K]{mutator[K]{v.share()}}
}

// Immutable returns a vector sharing v's storage.
func (v *MutableVector[K]) Immutable() *Vector[K] {
	return &Vector[K]{v.share()}
}

// ToDense switches v to dense storage.
func (v *MutableVector[K]) ToDense() { v.data, v.copyOnWrite = v.converted(storage.TypeDense).data, false }

// ToSparse switches v to sparse storage.
func (v *MutableVector[K]) ToSparse() { v.data, v.copyOnWrite = v.converted(storage.TypeSparse).data, false }

// Equal reports whether o holds the same standard-unit values.
func (v *MutableVector[K]) Equal(o Same[K]) bool { return v.equal(o) }

func checkVector(o Operand) error { return checkCols(o.storageData()) }

func checkCols(d storage.Data) error {
	if d.Cols() != 1 {
		return fmt.Errorf("operand has %d columns: %w", d.Cols(), storage.ErrSizeMismatch)
	}
	return nil
}
