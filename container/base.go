package container

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

// Operand is any container; used where the kinds of two operands may differ.
type Operand interface {
	Dimensions() dimension.Vector
	Rows() int
	Cols() int

	storageData() storage.Data
}

// Same is a container of kind K.
type Same[K unit.Quantity] interface {
	Operand

	displayUnit() unit.Unit[K]
}

type base[K unit.Quantity] struct {
	data        storage.Data
	unit        unit.Unit[K]
	copyOnWrite bool
}

func (b *base[K]) storageData() storage.Data { return b.data }
func (b *base[K]) displayUnit() unit.Unit[K] { return b.unit }

// Dimensions returns the dimension vector of K.
func (b *base[K]) Dimensions() dimension.Vector { return unit.KindOf[K]().Dimensions() }

// Kind returns the descriptor of K.
func (b *base[K]) Kind() *unit.Kind { return unit.KindOf[K]() }

// Unit returns the display unit.
func (b *base[K]) Unit() unit.Unit[K] { return b.unit }

// Rows returns the number of rows; a vector has one row per element.
func (b *base[K]) Rows() int { return b.data.Rows() }

// Cols returns the number of columns; 1 for vectors.
func (b *base[K]) Cols() int { return b.data.Cols() }

// StorageType returns the current representation.
func (b *base[K]) StorageType() storage.Type { return b.data.Type() }

// Cardinality returns the number of non-zero cells.
func (b *base[K]) Cardinality() int { return b.data.Cardinality() }

// ZSum returns the sum of all cells in the display unit.
func (b *base[K]) ZSum() scalar.Rel[K] { return scalar.FromSIIn(b.data.Sum(), b.unit) }

// ValuesSI returns a row-major copy of the standard-unit values.
func (b *base[K]) ValuesSI() []float64 { return b.data.Values() }

// ValuesInUnit returns a row-major copy of the values in the display unit.
func (b *base[K]) ValuesInUnit() []float64 { return valuesIn(b.data, b.unit) }

func (b *base[K]) get(row, col int) (scalar.Rel[K], error) {
	si, err := b.data.At(row, col)
	if err != nil {
		return scalar.Rel[K]{}, err
	}
	return scalar.FromSIIn(si, b.unit), nil
}

func (b *base[K]) getSI(row, col int) (float64, error) { return b.data.At(row, col) }

func (b *base[K]) getInUnit(row, col int) (float64, error) {
	si, err := b.data.At(row, col)
	if err != nil {
		return 0, err
	}
	return b.unit.FromStandard(si), nil
}

// share flags b copy-on-write and returns a second header on the same storage.
func (b *base[K]) share() base[K] {
	b.copyOnWrite = true
	return base[K]{data: b.data, unit: b.unit, copyOnWrite: true}
}

// checkCopyOnWrite gives b exclusive storage before a mutation.
func (b *base[K]) checkCopyOnWrite() {
	if b.copyOnWrite {
		b.data = b.data.Copy()
		b.copyOnWrite = false
	}
}

func (b *base[K]) converted(t storage.Type) base[K] {
	return base[K]{data: convert(b.data, t), unit: b.unit}
}

// convert returns a copy of d in representation t.
func convert(d storage.Data, t storage.Type) storage.Data {
	if d.Type() == t {
		return d.Copy()
	}
	if t == storage.TypeSparse {
		return d.ToSparse()
	}
	return d.ToDense()
}

func (b *base[K]) plus(o Same[K]) (base[K], error) {
	d, err := storage.Plus(b.data, o.storageData())
	if err != nil {
		return base[K]{}, err
	}
	return base[K]{data: d, unit: b.unit}, nil
}

func (b *base[K]) minus(o Same[K]) (base[K], error) {
	d, err := storage.Minus(b.data, o.storageData())
	if err != nil {
		return base[K]{}, err
	}
	return base[K]{data: d, unit: b.unit}, nil
}

// equal compares kind, shape and standard-unit values.
func (b *base[K]) equal(o Same[K]) bool {
	return storage.Equal(b.data, o.storageData())
}

func (b *base[K]) String() string { return formatData(b.data, b.unit) }

// scaled is a display unit, relative or absolute.
type scaled interface {
	ToStandard(v float64) float64
	FromStandard(v float64) float64
	Symbol() string
}

func valuesIn(d storage.Data, u scaled) []float64 {
	vs := d.Values()
	for i, v := range vs {
		vs[i] = u.FromStandard(v)
	}
	return vs
}

// formatData renders d in u, e.g. "[1, 2.5] m" or "[[1, 2], [3, 4]] s".
func formatData(d storage.Data, u scaled) string {
	var sb strings.Builder
	values := valuesIn(d, u)
	rows, cols := d.Rows(), d.Cols()
	vector := cols == 1
	sb.WriteByte('[')
	for r := range rows {
		if r > 0 {
			sb.WriteString(", ")
		}
		if !vector {
			sb.WriteByte('[')
		}
		for c, v := range values[r*cols : (r+1)*cols] {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		if !vector {
			sb.WriteByte(']')
		}
	}
	sb.WriteString("] ")
	sb.WriteString(u.Symbol())
	return sb.String()
}

func assignInUnit(d storage.Data, u scaled, fn func(float64) float64) {
	d.Assign(func(si float64) float64 { return u.ToStandard(fn(u.FromStandard(si))) })
}

// mutator holds the in-place operations shared by MutableVector and
// MutableMatrix.
type mutator[K unit.Quantity] struct {
	base[K]
}

// IncrementBy adds o cell by cell. The representation is kept.
func (m *mutator[K]) IncrementBy(o Same[K]) error {
	m.checkCopyOnWrite()
	return m.data.IncrementByData(o.storageData())
}

// DecrementBy subtracts o cell by cell. The representation is kept.
func (m *mutator[K]) DecrementBy(o Same[K]) error {
	m.checkCopyOnWrite()
	return m.data.DecrementByData(o.storageData())
}

// IncrementByScalar adds s to every cell.
func (m *mutator[K]) IncrementByScalar(s scalar.Rel[K]) {
	m.checkCopyOnWrite()
	m.data.IncrementBy(s.SI())
}

// DecrementByScalar subtracts s from every cell.
func (m *mutator[K]) DecrementByScalar(s scalar.Rel[K]) {
	m.checkCopyOnWrite()
	m.data.DecrementBy(s.SI())
}

// MultiplyBy scales every cell by f.
func (m *mutator[K]) MultiplyBy(f float64) {
	m.checkCopyOnWrite()
	m.data.MultiplyBy(f)
}

// DivideBy divides every cell by f.
func (m *mutator[K]) DivideBy(f float64) {
	m.checkCopyOnWrite()
	m.data.DivideBy(f)
}

// Normalize divides every cell by the sum of all cells. It fails with
// storage.ErrDivideByZero when the sum is zero and leaves the values as
// they were.
func (m *mutator[K]) Normalize() error {
	if m.data.Sum() == 0 {
		return fmt.Errorf("normalize: %w", storage.ErrDivideByZero)
	}
	m.checkCopyOnWrite()
	return m.data.Normalize()
}

// Assign replaces every standard-unit value v by fn(v).
func (m *mutator[K]) Assign(fn func(float64) float64) {
	m.checkCopyOnWrite()
	m.data.Assign(fn)
}

// Abs replaces every value by its absolute value.
func (m *mutator[K]) Abs() { m.Assign(math.Abs) }

// Neg negates every value.
func (m *mutator[K]) Neg() { m.Assign(func(v float64) float64 { return -v }) }

// Ceil rounds every value up in the display unit.
func (m *mutator[K]) Ceil() { m.assignInUnit(math.Ceil) }

// Floor rounds every value down in the display unit.
func (m *mutator[K]) Floor() { m.assignInUnit(math.Floor) }

// Round rounds every value half away from zero in the display unit.
func (m *mutator[K]) Round() { m.assignInUnit(math.Round) }

// Rint rounds every value half to even in the display unit.
func (m *mutator[K]) Rint() { m.assignInUnit(math.RoundToEven) }

func (m *mutator[K]) assignInUnit(fn func(float64) float64) {
	m.checkCopyOnWrite()
	assignInUnit(m.data, m.unit, fn)
}

// SetDisplayUnit changes the display unit; the values are unchanged.
func (m *mutator[K]) SetDisplayUnit(u unit.Unit[K]) { m.unit = u }

func (m *mutator[K]) set(row, col int, si float64) error {
	if err := checkCell(m.data, row, col); err != nil {
		return err
	}
	m.checkCopyOnWrite()
	return m.data.Set(row, col, si)
}

func checkCell(d storage.Data, row, col int) error {
	if row < 0 || row >= d.Rows() || col < 0 || col >= d.Cols() {
		return fmt.Errorf("cell (%d,%d) of %dx%d: %w", row, col, d.Rows(), d.Cols(), storage.ErrOutOfRange)
	}
	return nil
}
