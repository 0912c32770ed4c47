package storage

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Dense stores every cell in a flat row-major slice.
type Dense struct {
	rows, cols int
	values     []float64
}

var _ Data = (*Dense)(nil)

func (d *Dense) Type() Type { return TypeDense }
func (d *Dense) Rows() int  { return d.rows }
func (d *Dense) Cols() int  { return d.cols }

func (d *Dense) get(pos int) float64 { return d.values[pos] }

// At returns the value of a cell.
func (d *Dense) At(row, col int) (float64, error) {
	if err := checkIndex(d, row, col); err != nil {
		return 0, err
	}
	return d.values[row*d.cols+col], nil
}

// Set overwrites the value of a cell.
func (d *Dense) Set(row, col int, v float64) error {
	if err := checkIndex(d, row, col); err != nil {
		return err
	}
	d.values[row*d.cols+col] = v
	return nil
}

// Cardinality returns the number of non-zero cells.
func (d *Dense) Cardinality() int {
	n := 0
	for _, v := range d.values {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the sum of all cells.
func (d *Dense) Sum() float64 { return floats.Sum(d.values) }

// Values returns a row-major copy of all cells.
func (d *Dense) Values() []float64 { return slices.Clone(d.values) }

// Dense2D returns a copy of all cells as rows.
func (d *Dense) Dense2D() [][]float64 {
	out := make([][]float64, d.rows)
	for r := range out {
		out[r] = slices.Clone(d.values[r*d.cols : (r+1)*d.cols])
	}
	return out
}

// ToDense returns d itself.
func (d *Dense) ToDense() *Dense { return d }

// ToSparse returns a sparse copy of d.
func (d *Dense) ToSparse() *Sparse {
	s := newSparse(d.rows, d.cols)
	positions := make([]uint32, 0, len(d.values)/4)
	for p, v := range d.values {
		if v != 0 {
			positions = append(positions, uint32(p)) //nolint:gosec // bounded by checkCapacity
			s.values = append(s.values, v)
		}
	}
	s.positions.AddMany(positions)
	return s
}

// Copy returns a deep copy.
func (d *Dense) Copy() Data { return d.copyDense() }

func (d *Dense) copyDense() *Dense {
	return &Dense{rows: d.rows, cols: d.cols, values: slices.Clone(d.values)}
}

// IncrementBy adds c to every cell.
func (d *Dense) IncrementBy(c float64) { floats.AddConst(c, d.values) }

// DecrementBy subtracts c from every cell.
func (d *Dense) DecrementBy(c float64) { floats.AddConst(-c, d.values) }

// MultiplyBy multiplies every cell by c.
func (d *Dense) MultiplyBy(c float64) { floats.Scale(c, d.values) }

// DivideBy divides every cell by c.
func (d *Dense) DivideBy(c float64) {
	for i := range d.values {
		d.values[i] /= c
	}
}

func (d *Dense) IncrementByData(o Data) error { return d.combineInPlace(o, addOp) }
func (d *Dense) DecrementByData(o Data) error { return d.combineInPlace(o, subOp) }
func (d *Dense) MultiplyByData(o Data) error  { return d.combineInPlace(o, mulOp) }
func (d *Dense) DivideByData(o Data) error    { return d.combineInPlace(o, divOp) }

// Assign replaces every cell v by fn(v).
func (d *Dense) Assign(fn func(float64) float64) {
	_ = parallelFor(d.rows, d.cols, func(lo, hi int) {
		for i := lo * d.cols; i < hi*d.cols; i++ {
			d.values[i] = fn(d.values[i])
		}
	})
}

// Normalize divides every cell by the sum of all cells.
func (d *Dense) Normalize() error {
	sum := d.Sum()
	if sum == 0 {
		return ErrDivideByZero
	}
	d.DivideBy(sum)
	return nil
}

func (d *Dense) combineInPlace(o Data, op op) error {
	if err := checkSizes(d, o); err != nil {
		return err
	}

	if s, ok := o.(*Sparse); ok && (op == addOp || op == subOp) {
		it := s.positions.Iterator()
		for i := 0; it.HasNext(); i++ {
			p := it.Next()
			d.values[p] = op.apply(d.values[p], s.values[i])
		}
		return nil
	}

	other := o.ToDense().values
	switch op {
	case addOp:
		floats.Add(d.values, other)
	case subOp:
		floats.Sub(d.values, other)
	case mulOp:
		floats.Mul(d.values, other)
	case divOp:
		floats.Div(d.values, other)
	}
	return nil
}
