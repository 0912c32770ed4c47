package storage

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"
)

// Sparse stores the non-zero cells only. positions holds the row-major
// positions; values[i] belongs to the i-th smallest position.
type Sparse struct {
	rows, cols int
	positions  *roaring.Bitmap
	values     []float64
}

var _ Data = (*Sparse)(nil)

func newSparse(rows, cols int) *Sparse {
	return &Sparse{rows: rows, cols: cols, positions: roaring.New()}
}

func (s *Sparse) Type() Type { return TypeSparse }
func (s *Sparse) Rows() int  { return s.rows }
func (s *Sparse) Cols() int  { return s.cols }

// index returns the slot of pos in values and whether pos is stored.
func (s *Sparse) index(pos uint32) (int, bool) {
	if !s.positions.Contains(pos) {
		return int(s.positions.Rank(pos)), false
	}
	return int(s.positions.Rank(pos)) - 1, true
}

func (s *Sparse) get(pos int) float64 {
	i, ok := s.index(uint32(pos)) //nolint:gosec // bounded by checkCapacity
	if !ok {
		return 0
	}
	return s.values[i]
}

// At returns the value of a cell.
func (s *Sparse) At(row, col int) (float64, error) {
	if err := checkIndex(s, row, col); err != nil {
		return 0, err
	}
	return s.get(row*s.cols + col), nil
}

// Set overwrites the value of a cell. Setting zero removes the cell.
func (s *Sparse) Set(row, col int, v float64) error {
	if err := checkIndex(s, row, col); err != nil {
		return err
	}
	pos := uint32(row*s.cols + col) //nolint:gosec // bounded by checkCapacity
	i, ok := s.index(pos)
	switch {
	case ok && v == 0:
		s.values = slices.Delete(s.values, i, i+1)
		s.positions.Remove(pos)
	case ok:
		s.values[i] = v
	case v != 0:
		s.values = slices.Insert(s.values, i, v)
		s.positions.Add(pos)
	}
	return nil
}

// Cardinality returns the number of non-zero cells.
func (s *Sparse) Cardinality() int { return len(s.values) }

// Sum returns the sum of all cells.
func (s *Sparse) Sum() float64 { return floats.Sum(s.values) }

// Values returns a row-major copy of all cells.
func (s *Sparse) Values() []float64 { return s.ToDense().values }

// Dense2D returns a copy of all cells as rows.
func (s *Sparse) Dense2D() [][]float64 { return s.ToDense().Dense2D() }

// ToDense returns a dense copy of s.
func (s *Sparse) ToDense() *Dense {
	d := &Dense{rows: s.rows, cols: s.cols, values: make([]float64, s.rows*s.cols)}
	it := s.positions.Iterator()
	for i := 0; it.HasNext(); i++ {
		d.values[it.Next()] = s.values[i]
	}
	return d
}

// ToSparse returns s itself.
func (s *Sparse) ToSparse() *Sparse { return s }

// Copy returns a deep copy.
func (s *Sparse) Copy() Data {
	return &Sparse{rows: s.rows, cols: s.cols, positions: s.positions.Clone(), values: slices.Clone(s.values)}
}

// IncrementBy adds c to every cell, including the implicit zeros.
func (s *Sparse) IncrementBy(c float64) { s.Assign(func(v float64) float64 { return v + c }) }

// DecrementBy subtracts c from every cell, including the implicit zeros.
func (s *Sparse) DecrementBy(c float64) { s.Assign(func(v float64) float64 { return v - c }) }

// MultiplyBy multiplies every cell by c.
func (s *Sparse) MultiplyBy(c float64) { s.Assign(func(v float64) float64 { return v * c }) }

// DivideBy divides every cell by c.
func (s *Sparse) DivideBy(c float64) { s.Assign(func(v float64) float64 { return v / c }) }

func (s *Sparse) IncrementByData(o Data) error { return s.combineInPlace(o, addOp) }
func (s *Sparse) DecrementByData(o Data) error { return s.combineInPlace(o, subOp) }
func (s *Sparse) MultiplyByData(o Data) error  { return s.combineInPlace(o, mulOp) }
func (s *Sparse) DivideByData(o Data) error    { return s.combineInPlace(o, divOp) }

// Assign replaces every cell v by fn(v). When fn(0) is not zero the implicit
// zeros are materialized; s stays Sparse either way.
func (s *Sparse) Assign(fn func(float64) float64) {
	if z := fn(0); z != 0 {
		d := s.ToDense()
		d.Assign(fn)
		*s = *d.ToSparse()
		return
	}
	for i, v := range s.values {
		s.values[i] = fn(v)
	}
	s.compact()
}

// Normalize divides every cell by the sum of all cells.
func (s *Sparse) Normalize() error {
	sum := s.Sum()
	if sum == 0 {
		return ErrDivideByZero
	}
	s.DivideBy(sum)
	return nil
}

// compact drops stored cells that became zero.
func (s *Sparse) compact() {
	if !slices.Contains(s.values, 0) {
		return
	}
	kept := make([]uint32, 0, len(s.values))
	values := s.values[:0]
	it := s.positions.Iterator()
	for _, v := range s.values {
		p := it.Next()
		if v != 0 {
			kept = append(kept, p)
			values = append(values, v)
		}
	}
	s.positions = roaring.BitmapOf(kept...)
	s.values = values
}

func (s *Sparse) combineInPlace(o Data, op op) error {
	if err := checkSizes(s, o); err != nil {
		return err
	}
	if so, ok := o.(*Sparse); ok && op != divOp {
		*s = *s.combineSparse(so, op)
		return nil
	}
	d := s.ToDense()
	if err := d.combineInPlace(o, op); err != nil {
		return err
	}
	*s = *d.ToSparse()
	return nil
}

// combineSparse evaluates op over the positions that can be non-zero: the
// union of both operands for add and sub, the intersection for mul. The
// intersection treats implicit zeros as exact, so Inf*0 is 0 here.
func (s *Sparse) combineSparse(o *Sparse, op op) *Sparse {
	var candidates *roaring.Bitmap
	if op == mulOp {
		candidates = roaring.And(s.positions, o.positions)
	} else {
		candidates = roaring.Or(s.positions, o.positions)
	}

	out := newSparse(s.rows, s.cols)
	kept := make([]uint32, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		p := it.Next()
		v := op.apply(s.get(int(p)), o.get(int(p)))
		if v != 0 {
			kept = append(kept, p)
			out.values = append(out.values, v)
		}
	}
	out.positions.AddMany(kept)
	return out
}
