package container

import (
	"fmt"
	"math"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

// AbsSame is a container of positions in the absolute counterpart of K.
// Absolute containers are not Operands: they cannot enter products or be
// added to each other.
type AbsSame[K unit.AbsQuantity] interface {
	Rows() int
	Cols() int

	absData() storage.Data
}

type absBase[K unit.AbsQuantity] struct {
	data        storage.Data
	unit        unit.AbsUnit[K]
	copyOnWrite bool
}

func (b *absBase[K]) absData() storage.Data { return b.data }

// Dimensions returns the dimension vector of K.
func (b *absBase[K]) Dimensions() dimension.Vector { return unit.KindOf[K]().Dimensions() }

// Kind returns the descriptor of the absolute kind, e.g. AbsoluteTemperature.
func (b *absBase[K]) Kind() *unit.Kind { return b.unit.Definition().Kind() }

// Unit returns the display unit.
func (b *absBase[K]) Unit() unit.AbsUnit[K] { return b.unit }

// Rows returns the number of rows; a vector has one row per element.
func (b *absBase[K]) Rows() int { return b.data.Rows() }

// Cols returns the number of columns; 1 for vectors.
func (b *absBase[K]) Cols() int { return b.data.Cols() }

// StorageType returns the current representation.
func (b *absBase[K]) StorageType() storage.Type { return b.data.Type() }

// Cardinality returns the number of cells that are non-zero in the
// standard unit.
func (b *absBase[K]) Cardinality() int { return b.data.Cardinality() }

// ValuesSI returns a row-major copy of the standard-unit values.
func (b *absBase[K]) ValuesSI() []float64 { return b.data.Values() }

// ValuesInUnit returns a row-major copy of the values in the display unit.
func (b *absBase[K]) ValuesInUnit() []float64 { return valuesIn(b.data, b.unit) }

func (b *absBase[K]) String() string { return formatData(b.data, b.unit) }

func (b *absBase[K]) get(row, col int) (scalar.Abs[K], error) {
	si, err := b.data.At(row, col)
	if err != nil {
		return scalar.Abs[K]{}, err
	}
	return scalar.AbsFromSIIn(si, b.unit), nil
}

func (b *absBase[K]) getInUnit(row, col int) (float64, error) {
	si, err := b.data.At(row, col)
	if err != nil {
		return 0, err
	}
	return b.unit.FromStandard(si), nil
}

func (b *absBase[K]) share() absBase[K] {
	b.copyOnWrite = true
	return absBase[K]{data: b.data, unit: b.unit, copyOnWrite: true}
}

func (b *absBase[K]) checkCopyOnWrite() {
	if b.copyOnWrite {
		b.data = b.data.Copy()
		b.copyOnWrite = false
	}
}

func (b *absBase[K]) converted(t storage.Type) absBase[K] {
	return absBase[K]{data: convert(b.data, t), unit: b.unit}
}

// plus moves every position by the matching cell of o.
func (b *absBase[K]) plus(o Same[K]) (absBase[K], error) {
	d, err := storage.Plus(b.data, o.storageData())
	if err != nil {
		return absBase[K]{}, err
	}
	return absBase[K]{data: d, unit: b.unit}, nil
}

func (b *absBase[K]) minus(o Same[K]) (absBase[K], error) {
	d, err := storage.Minus(b.data, o.storageData())
	if err != nil {
		return absBase[K]{}, err
	}
	return absBase[K]{data: d, unit: b.unit}, nil
}

// minusAbs returns the differences b - o, displayed in the relative
// counterpart of b's unit.
func (b *absBase[K]) minusAbs(o AbsSame[K]) (base[K], error) {
	d, err := storage.Minus(b.data, o.absData())
	if err != nil {
		return base[K]{}, err
	}
	return base[K]{data: d, unit: b.unit.Relative()}, nil
}

func (b *absBase[K]) row(r int) (*AbsVector[K], error) {
	vs, err := rowValues(b.data, r)
	if err != nil {
		return nil, err
	}
	return NewAbsVectorSI(vs, b.unit, b.data.Type())
}

func (b *absBase[K]) column(c int) (*AbsVector[K], error) {
	vs, err := columnValues(b.data, c)
	if err != nil {
		return nil, err
	}
	return NewAbsVectorSI(vs, b.unit, b.data.Type())
}

// absMutator holds the in-place operations shared by MutableAbsVector and
// MutableAbsMatrix. Positions move by relative containers and scalars.
type absMutator[K unit.AbsQuantity] struct {
	absBase[K]
}

// IncrementBy moves every position by the matching cell of o.
func (m *absMutator[K]) IncrementBy(o Same[K]) error {
	m.checkCopyOnWrite()
	return m.data.IncrementByData(o.storageData())
}

// DecrementBy moves every position back by the matching cell of o.
func (m *absMutator[K]) DecrementBy(o Same[K]) error {
	m.checkCopyOnWrite()
	return m.data.DecrementByData(o.storageData())
}

// IncrementByScalar moves every position by s.
func (m *absMutator[K]) IncrementByScalar(s scalar.Rel[K]) {
	m.checkCopyOnWrite()
	m.data.IncrementBy(s.SI())
}

// DecrementByScalar moves every position back by s.
func (m *absMutator[K]) DecrementByScalar(s scalar.Rel[K]) {
	m.checkCopyOnWrite()
	m.data.DecrementBy(s.SI())
}

// Normalize divides every standard-unit value by their sum. It fails with
// storage.ErrDivideByZero when the sum is zero and leaves the values as
// they were.
func (m *absMutator[K]) Normalize() error {
	if m.data.Sum() == 0 {
		return fmt.Errorf("normalize: %w", storage.ErrDivideByZero)
	}
	m.checkCopyOnWrite()
	return m.data.Normalize()
}

// Assign replaces every standard-unit value v by fn(v).
func (m *absMutator[K]) Assign(fn func(float64) float64) {
	m.checkCopyOnWrite()
	m.data.Assign(fn)
}

// Ceil rounds every position up in the display unit.
func (m *absMutator[K]) Ceil() { m.assignInUnit(math.Ceil) }

// Floor rounds every position down in the display unit.
func (m *absMutator[K]) Floor() { m.assignInUnit(math.Floor) }

// Round rounds every position half away from zero in the display unit.
func (m *absMutator[K]) Round() { m.assignInUnit(math.Round) }

// Rint rounds every position half to even in the display unit.
func (m *absMutator[K]) Rint() { m.assignInUnit(math.RoundToEven) }

func (m *absMutator[K]) assignInUnit(fn func(float64) float64) {
	m.checkCopyOnWrite()
	assignInUnit(m.data, m.unit, fn)
}

// SetDisplayUnit changes the display unit; the positions are unchanged.
func (m *absMutator[K]) SetDisplayUnit(u unit.AbsUnit[K]) { m.unit = u }

func (m *absMutator[K]) set(row, col int, si float64) error {
	if err := checkCell(m.data, row, col); err != nil {
		return err
	}
	m.checkCopyOnWrite()
	return m.data.Set(row, col, si)
}

// AbsVector is an immutable vector of positions, e.g. a series of absolute
// temperatures for K = unit.Temperature.
type AbsVector[K unit.AbsQuantity] struct {
	absBase[K]
}

// MutableAbsVector is an AbsVector with in-place operations.
type MutableAbsVector[K unit.AbsQuantity] struct {
	absMutator[K]
}

// NewAbsVector converts values from u to standard units.
func NewAbsVector[K unit.AbsQuantity](values []float64, u unit.AbsUnit[K], hint storage.Type) (*AbsVector[K], error) {
	d, err := storage.NewVector(values, u.Definition(), hint)
	if err != nil {
		return nil, err
	}
	return &AbsVector[K]{absBase[K]{data: d, unit: u}}, nil
}

// NewAbsVectorSI stores standard-unit positions displayed in u.
func NewAbsVectorSI[K unit.AbsQuantity](si []float64, u unit.AbsUnit[K], hint storage.Type) (*AbsVector[K], error) {
	d, err := storage.FromSI(si, len(si), 1, hint)
	if err != nil {
		return nil, err
	}
	return &AbsVector[K]{absBase[K]{data: d, unit: u}}, nil
}

// AbsVectorOf builds a vector from positions, displayed in the first one's
// unit.
func AbsVectorOf[K unit.AbsQuantity](hint storage.Type, values ...scalar.Abs[K]) (*AbsVector[K], error) {
	if len(values) == 0 {
		return nil, storage.ErrEmpty
	}
	si := make([]float64, len(values))
	for i, v := range values {
		si[i] = v.SI()
	}
	return NewAbsVectorSI(si, values[0].Unit(), hint)
}

// Size returns the number of elements.
func (v *AbsVector[K]) Size() int { return v.data.Rows() }

// Get returns element i.
func (v *AbsVector[K]) Get(i int) (scalar.Abs[K], error) { return v.get(i, 0) }

// GetSI returns element i in standard units.
func (v *AbsVector[K]) GetSI(i int) (float64, error) { return v.data.At(i, 0) }

// GetInUnit returns element i in the display unit.
func (v *AbsVector[K]) GetInUnit(i int) (float64, error) { return v.getInUnit(i, 0) }

// Plus returns the positions moved by o, displayed in v's unit.
func (v *AbsVector[K]) Plus(o Same[K]) (*AbsVector[K], error) {
	b, err := v.plus(o)
	if err != nil {
		return nil, err
	}
	return &AbsVector[K]{b}, nil
}

// Minus returns the positions moved back by o, displayed in v's unit.
func (v *AbsVector[K]) Minus(o Same[K]) (*AbsVector[K], error) {
	b, err := v.minus(o)
	if err != nil {
		return nil, err
	}
	return &AbsVector[K]{b}, nil
}

// MinusAbs returns the differences v - o as a relative vector in the
// counterpart of v's unit: °C positions give °C differences.
func (v *AbsVector[K]) MinusAbs(o AbsSame[K]) (*Vector[K], error) {
	b, err := v.minusAbs(o)
	if err != nil {
		return nil, err
	}
	return &Vector[K]{b}, nil
}

// Mutable returns a mutable vector sharing v's storage.
func (v *AbsVector[K]) Mutable() *MutableAbsVector[K] {
	return &MutableAbsVector[K]{absMutator[K]{v.share()}}
}

// Immutable returns a vector sharing v's storage.
func (v *AbsVector[K]) Immutable() *AbsVector[K] { return &AbsVector[K]{v.share()} }

// ToDense returns a dense copy.
func (v *AbsVector[K]) ToDense() *AbsVector[K] { return &AbsVector[K]{v.converted(storage.TypeDense)} }

// ToSparse returns a sparse copy.
func (v *AbsVector[K]) ToSparse() *AbsVector[K] {
	return &AbsVector[K]{v.converted(storage.TypeSparse)}
}

// WithUnit returns a vector sharing v's storage displayed in u.
func (v *AbsVector[K]) WithUnit(u unit.AbsUnit[K]) *AbsVector[K] {
	b := v.share()
	b.unit = u
	return &AbsVector[K]{b}
}

// Equal reports whether o holds the same standard-unit positions.
func (v *AbsVector[K]) Equal(o AbsSame[K]) bool { return storage.Equal(v.data, o.absData()) }

// Size returns the number of elements.
func (v *MutableAbsVector[K]) Size() int { return v.data.Rows() }

// Get returns element i.
func (v *MutableAbsVector[K]) Get(i int) (scalar.Abs[K], error) { return v.get(i, 0) }

// GetSI returns element i in standard units.
func (v *MutableAbsVector[K]) GetSI(i int) (float64, error) { return v.data.At(i, 0) }

// GetInUnit returns element i in the display unit.
func (v *MutableAbsVector[K]) GetInUnit(i int) (float64, error) { return v.getInUnit(i, 0) }

// Set overwrites element i.
func (v *MutableAbsVector[K]) Set(i int, q scalar.Abs[K]) error { return v.set(i, 0, q.SI()) }

// SetSI overwrites element i with a standard-unit position.
func (v *MutableAbsVector[K]) SetSI(i int, si float64) error { return v.set(i, 0, si) }

// SetInUnit overwrites element i with value expressed in u.
func (v *MutableAbsVector[K]) SetInUnit(i int, value float64, u unit.AbsUnit[K]) error {
	return v.set(i, 0, u.ToStandard(value))
}

// Plus returns the positions moved by o as a new mutable vector.
func (v *MutableAbsVector[K]) Plus(o Same[K]) (*MutableAbsVector[K], error) {
	b, err := v.plus(o)
	if err != nil {
		return nil, err
	}
	return &MutableAbsVector[K]{absMutator[K]{b}}, nil
}

// Minus returns the positions moved back by o as a new mutable vector.
func (v *MutableAbsVector[K]) Minus(o Same[K]) (*MutableAbsVector[K], error) {
	b, err := v.minus(o)
	if err != nil {
		return nil, err
	}
	return &MutableAbsVector[K]{absMutator[K]{b}}, nil
}

// MinusAbs returns the differences v - o as a new mutable relative vector.
func (v *MutableAbsVector[K]) MinusAbs(o AbsSame[K]) (*MutableVector[K], error) {
	b, err := v.minusAbs(o)
	if err != nil {
		return nil, err
	}
	return &MutableVector[K]{mutator[K]{b}}, nil
}

// Mutable returns a mutable vector sharing v's storage.
func (v *MutableAbsVector[K]) Mutable() *MutableAbsVector[K] {
	return &MutableAbsVector[K]{absMutator[K]{v.share()}}
}

// Immutable returns a vector sharing v's storage.
func (v *MutableAbsVector[K]) Immutable() *AbsVector[K] { return &AbsVector[K]{v.share()} }

// ToDense switches v to dense storage.
func (v *MutableAbsVector[K]) ToDense() {
	v.data, v.copyOnWrite = v.converted(storage.TypeDense).data, false
}

// ToSparse switches v to sparse storage.
func (v *MutableAbsVector[K]) ToSparse() {
	v.data, v.copyOnWrite = v.converted(storage.TypeSparse).data, false
}

// Equal reports whether o holds the same standard-unit positions.
func (v *MutableAbsVector[K]) Equal(o AbsSame[K]) bool { return storage.Equal(v.data, o.absData()) }

// AbsMatrix is an immutable matrix of positions.
type AbsMatrix[K unit.AbsQuantity] struct {
	absBase[K]
}

// MutableAbsMatrix is an AbsMatrix with in-place operations.
type MutableAbsMatrix[K unit.AbsQuantity] struct {
	absMutator[K]
}

// NewAbsMatrix converts rectangular values from u to standard units.
func NewAbsMatrix[K unit.AbsQuantity](values [][]float64, u unit.AbsUnit[K], hint storage.Type) (*AbsMatrix[K], error) {
	d, err := storage.New(values, u.Definition(), hint)
	if err != nil {
		return nil, err
	}
	return &AbsMatrix[K]{absBase[K]{data: d, unit: u}}, nil
}

// NewAbsMatrixSI stores rectangular standard-unit positions displayed in u.
func NewAbsMatrixSI[K unit.AbsQuantity](si [][]float64, u unit.AbsUnit[K], hint storage.Type) (*AbsMatrix[K], error) {
	d, err := storage.New(si, nil, hint)
	if err != nil {
		return nil, err
	}
	return &AbsMatrix[K]{absBase[K]{data: d, unit: u}}, nil
}

// Get returns cell (row, col).
func (m *AbsMatrix[K]) Get(row, col int) (scalar.Abs[K], error) { return m.get(row, col) }

// GetSI returns cell (row, col) in standard units.
func (m *AbsMatrix[K]) GetSI(row, col int) (float64, error) { return m.data.At(row, col) }

// GetInUnit returns cell (row, col) in the display unit.
func (m *AbsMatrix[K]) GetInUnit(row, col int) (float64, error) { return m.getInUnit(row, col) }

// ValuesSI2D returns a copy of the standard-unit values as rows.
func (m *AbsMatrix[K]) ValuesSI2D() [][]float64 { return m.data.Dense2D() }

// Row returns row r as a vector.
func (m *AbsMatrix[K]) Row(r int) (*AbsVector[K], error) { return m.row(r) }

// Column returns column c as a vector.
func (m *AbsMatrix[K]) Column(c int) (*AbsVector[K], error) { return m.column(c) }

// Transpose returns the transposed matrix.
func (m *AbsMatrix[K]) Transpose() *AbsMatrix[K] {
	return &AbsMatrix[K]{absBase[K]{data: transposeData(m.data), unit: m.unit}}
}

// Plus returns the positions moved by o, displayed in m's unit.
func (m *AbsMatrix[K]) Plus(o Same[K]) (*AbsMatrix[K], error) {
	b, err := m.plus(o)
	if err != nil {
		return nil, err
	}
	return &AbsMatrix[K]{b}, nil
}

// Minus returns the positions moved back by o, displayed in m's unit.
func (m *AbsMatrix[K]) Minus(o Same[K]) (*AbsMatrix[K], error) {
	b, err := m.minus(o)
	if err != nil {
		return nil, err
	}
	return &AbsMatrix[K]{b}, nil
}

// MinusAbs returns the differences m - o as a relative matrix in the
// counterpart of m's unit.
func (m *AbsMatrix[K]) MinusAbs(o AbsSame[K]) (*Matrix[K], error) {
	b, err := m.minusAbs(o)
	if err != nil {
		return nil, err
	}
	return &Matrix[K]{b}, nil
}

// Mutable returns a mutable matrix sharing m's storage.
func (m *AbsMatrix[K]) Mutable() *MutableAbsMatrix[K] {
	return &MutableAbsMatrix[K]{absMutator[K]{m.share()}}
}

// Immutable returns a matrix sharing m's storage.
func (m *AbsMatrix[K]) Immutable() *AbsMatrix[K] { return &AbsMatrix[K]{m.share()} }

// ToDense returns a dense copy.
func (m *AbsMatrix[K]) ToDense() *AbsMatrix[K] { return &AbsMatrix[K]{m.converted(storage.TypeDense)} }

// ToSparse returns a sparse copy.
func (m *AbsMatrix[K]) ToSparse() *AbsMatrix[K] {
	return &AbsMatrix[K]{m.converted(storage.TypeSparse)}
}

// Equal reports whether o holds the same standard-unit positions.
func (m *AbsMatrix[K]) Equal(o AbsSame[K]) bool { return storage.Equal(m.data, o.absData()) }

// Get returns cell (row, col).
func (m *MutableAbsMatrix[K]) Get(row, col int) (scalar.Abs[K], error) { return m.get(row, col) }

// GetSI returns cell (row, col) in standard units.
func (m *MutableAbsMatrix[K]) GetSI(row, col int) (float64, error) { return m.data.At(row, col) }

// GetInUnit returns cell (row, col) in the display unit.
func (m *MutableAbsMatrix[K]) GetInUnit(row, col int) (float64, error) {
	return m.getInUnit(row, col)
}

// Set overwrites cell (row, col).
func (m *MutableAbsMatrix[K]) Set(row, col int, q scalar.Abs[K]) error {
	return m.set(row, col, q.SI())
}

// SetSI overwrites cell (row, col) with a standard-unit position.
func (m *MutableAbsMatrix[K]) SetSI(row, col int, si float64) error { return m.set(row, col, si) }

// SetInUnit overwrites cell (row, col) with value expressed in u.
func (m *MutableAbsMatrix[K]) SetInUnit(row, col int, value float64, u unit.AbsUnit[K]) error {
	return m.set(row, col, u.ToStandard(value))
}

// Plus returns the positions moved by o as a new mutable matrix.
func (m *MutableAbsMatrix[K]) Plus(o Same[K]) (*MutableAbsMatrix[K], error) {
	b, err := m.plus(o)
	if err != nil {
		return nil, err
	}
	return &MutableAbsMatrix[K]{absMutator[K]{b}}, nil
}

// Minus returns the positions moved back by o as a new mutable matrix.
func (m *MutableAbsMatrix[K]) Minus(o Same[K]) (*MutableAbsMatrix[K], error) {
	b, err := m.minus(o)
	if err != nil {
		return nil, err
	}
	return &MutableAbsMatrix[K]{absMutator[K]{b}}, nil
}

// MinusAbs returns the differences m - o as a new mutable relative matrix.
func (m *MutableAbsMatrix[K]) MinusAbs(o AbsSame[K]) (*MutableMatrix[K], error) {
	b, err := m.minusAbs(o)
	if err != nil {
		return nil, err
	}
	return &MutableMatrix[K]{mutator[K]{b}}, nil
}

// Mutable returns a mutable matrix sharing m's storage.
func (m *MutableAbsMatrix[K]) Mutable() *MutableAbsMatrix[K] {
	return &MutableAbsMatrix[K]{absMutator[K]{m.share()}}
}

// Immutable returns a matrix sharing m's storage.
func (m *MutableAbsMatrix[K]) Immutable() *AbsMatrix[K] { return &AbsMatrix[K]{m.share()} }

// ToDense switches m to dense storage.
func (m *MutableAbsMatrix[K]) ToDense() {
	m.data, m.copyOnWrite = m.converted(storage.TypeDense).data, false
}

// ToSparse switches m to sparse storage.
func (m *MutableAbsMatrix[K]) ToSparse() {
	m.data, m.copyOnWrite = m.converted(storage.TypeSparse).data, false
}

// Equal reports whether o holds the same standard-unit positions.
func (m *MutableAbsMatrix[K]) Equal(o AbsSame[K]) bool { return storage.Equal(m.data, o.absData()) }
