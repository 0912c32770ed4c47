package container

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/linalg"
	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

var storageTypes = []storage.Type{storage.TypeDense, storage.TypeSparse}

func TestVectorConstruction(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			v, err := NewVector([]float64{1, 0, 2.5}, unit.Kilometer, st)
			require.NoError(t, err)
			assert.Equal(t, st, v.StorageType())
			assert.Equal(t, 3, v.Size())
			assert.Equal(t, 2, v.Cardinality())
			assert.Equal(t, []float64{1000, 0, 2500}, v.ValuesSI())
			assert.Equal(t, []float64{1, 0, 2.5}, v.ValuesInUnit())

			got, err := v.Get(2)
			require.NoError(t, err)
			assert.Equal(t, 2500.0, got.SI())
			assert.True(t, got.Unit().Equal(unit.Kilometer))

			_, err = v.Get(3)
			assert.ErrorIs(t, err, storage.ErrOutOfRange)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := NewVector(nil, unit.Meter, storage.TypeDense)
		assert.ErrorIs(t, err, storage.ErrEmpty)
	})

	t.Run("sparse constructor", func(t *testing.T) {
		v, err := NewSparseVector(5, map[int]float64{1: 2, 4: 3}, unit.Gram, storage.TypeSparse)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Cardinality())
		assert.InDeltaSlice(t, []float64{0, 0.002, 0, 0, 0.003}, v.ValuesSI(), 1e-12)
	})

	t.Run("from scalars", func(t *testing.T) {
		v, err := VectorOf(storage.TypeDense, scalar.New(1, unit.Meter), scalar.New(2, unit.Foot))
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 0.6096}, v.ValuesSI(), 1e-12)
	})
}

func TestVectorPlusMinus(t *testing.T) {
	for _, ta := range storageTypes {
		for _, tb := range storageTypes {
			a, err := NewVector([]float64{1, 0, 3}, unit.Meter, ta)
			require.NoError(t, err)
			b, err := NewVector([]float64{0, 0, 2}, unit.Meter, tb)
			require.NoError(t, err)

			sum, err := a.Plus(b)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 0, 5}, sum.ValuesSI())

			diff, err := a.Minus(b)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 0, 1}, diff.ValuesSI())

			want := storage.TypeDense
			if ta == storage.TypeSparse && tb == storage.TypeSparse {
				want = storage.TypeSparse
			}
			assert.Equal(t, want, sum.StorageType())
		}
	}

	t.Run("left unit is kept", func(t *testing.T) {
		a, _ := NewVector([]float64{1}, unit.Kilometer, storage.TypeDense)
		b, _ := NewVector([]float64{500}, unit.Meter, storage.TypeDense)
		sum, err := a.Plus(b)
		require.NoError(t, err)
		assert.True(t, sum.Unit().Equal(unit.Kilometer))
		assert.Equal(t, []float64{1.5}, sum.ValuesInUnit())
	})

	t.Run("size mismatch", func(t *testing.T) {
		a, _ := NewVector([]float64{1, 2}, unit.Meter, storage.TypeDense)
		b, _ := NewVector([]float64{1, 2, 3}, unit.Meter, storage.TypeDense)
		_, err := a.Plus(b)
		assert.ErrorIs(t, err, storage.ErrSizeMismatch)
	})
}

func TestCopyOnWrite(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			a, err := NewVector([]float64{1, 2, 3}, unit.Meter, st)
			require.NoError(t, err)

			b := a.Mutable()
			require.NoError(t, b.SetSI(0, 10))
			b.MultiplyBy(2)

			assert.Equal(t, []float64{1, 2, 3}, a.ValuesSI())
			assert.Equal(t, []float64{20, 4, 6}, b.ValuesSI())

			c := a.Mutable()
			assert.Equal(t, []float64{1, 2, 3}, c.ValuesSI())

			frozen := b.Immutable()
			b.IncrementByScalar(scalar.New(1, unit.Meter))
			assert.Equal(t, []float64{20, 4, 6}, frozen.ValuesSI())
			assert.Equal(t, []float64{21, 5, 7}, b.ValuesSI())

			d := b.Mutable()
			d.Neg()
			assert.Equal(t, []float64{21, 5, 7}, b.ValuesSI())
			assert.Equal(t, []float64{-21, -5, -7}, d.ValuesSI())
		})
	}
}

func TestMutableOps(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			v, err := NewVector([]float64{1, 0, 3}, unit.Meter, st)
			require.NoError(t, err)
			m := v.Mutable()

			other, _ := NewVector([]float64{1, 1, 1}, unit.Meter, storage.TypeDense)
			require.NoError(t, m.IncrementBy(other))
			assert.Equal(t, []float64{2, 1, 4}, m.ValuesSI())
			assert.Equal(t, st, m.StorageType())

			require.NoError(t, m.DecrementBy(other))
			assert.Equal(t, []float64{1, 0, 3}, m.ValuesSI())

			m.DivideBy(2)
			assert.Equal(t, []float64{0.5, 0, 1.5}, m.ValuesSI())

			require.NoError(t, m.Normalize())
			assert.InDeltaSlice(t, []float64{0.25, 0, 0.75}, m.ValuesSI(), 1e-12)
		})
	}

	t.Run("normalize zero sum", func(t *testing.T) {
		v, _ := NewVector([]float64{1, -1}, unit.Meter, storage.TypeDense)
		m := v.Mutable()
		assert.ErrorIs(t, m.Normalize(), storage.ErrDivideByZero)
		assert.Equal(t, []float64{1, -1}, m.ValuesSI())
	})

	t.Run("rounding in display unit", func(t *testing.T) {
		v, _ := NewVector([]float64{1.4, 2.5, -0.5}, unit.Kilometer, storage.TypeDense)
		m := v.Mutable()
		m.Round()
		assert.InDeltaSlice(t, []float64{1, 3, -1}, m.ValuesInUnit(), 1e-9)
		m.SetDisplayUnit(unit.Meter)
		assert.InDeltaSlice(t, []float64{1000, 3000, -1000}, m.ValuesInUnit(), 1e-9)
	})

	t.Run("abs", func(t *testing.T) {
		v, _ := NewVector([]float64{-1, 2}, unit.Second, storage.TypeSparse)
		m := v.Mutable()
		m.Abs()
		assert.Equal(t, []float64{1, 2}, m.ValuesSI())
	})

	t.Run("switch representation", func(t *testing.T) {
		v, _ := NewVector([]float64{0, 2}, unit.Meter, storage.TypeDense)
		m := v.Mutable()
		m.ToSparse()
		assert.Equal(t, storage.TypeSparse, m.StorageType())
		require.NoError(t, m.SetSI(0, 5))
		assert.Equal(t, []float64{0, 2}, v.ValuesSI())
		assert.Equal(t, []float64{5, 2}, m.ValuesSI())
	})
}

func TestRepresentationIndependence(t *testing.T) {
	values := []float64{0, 3, 0, -1, 7, 0}
	dense, err := NewVector(values, unit.Newton, storage.TypeDense)
	require.NoError(t, err)
	sparse := dense.ToSparse()

	assert.True(t, dense.Equal(sparse))
	assert.Equal(t, dense.ZSum().SI(), sparse.ZSum().SI())
	assert.Equal(t, dense.String(), sparse.String())
	assert.Equal(t, storage.TypeDense, sparse.ToDense().StorageType())
}

func TestVectorString(t *testing.T) {
	v, err := NewVector([]float64{1, 2.5}, unit.Meter, storage.TypeDense)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5] m", v.String())
}

func TestMatrix(t *testing.T) {
	values := [][]float64{{1, 2}, {3, 4}}

	t.Run("jagged", func(t *testing.T) {
		_, err := NewMatrix([][]float64{{1, 2}, {3}}, unit.Meter, storage.TypeDense)
		assert.ErrorIs(t, err, storage.ErrJagged)
	})

	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			m, err := NewMatrix(values, unit.Meter, st)
			require.NoError(t, err)
			assert.Equal(t, 2, m.Rows())
			assert.Equal(t, 2, m.Cols())

			got, err := m.GetSI(1, 0)
			require.NoError(t, err)
			assert.Equal(t, 3.0, got)

			row, err := m.Row(1)
			require.NoError(t, err)
			assert.Equal(t, []float64{3, 4}, row.ValuesSI())

			col, err := m.Column(1)
			require.NoError(t, err)
			assert.Equal(t, []float64{2, 4}, col.ValuesSI())

			diag, err := m.Diagonal()
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 4}, diag.ValuesSI())

			assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, m.Transpose().ValuesSI2D())
			assert.Equal(t, "[[1, 2], [3, 4]] m", m.String())

			det, err := m.Determinant()
			require.NoError(t, err)
			area, ok := det.(scalar.Area)
			require.True(t, ok)
			assert.InDelta(t, -2, area.SI(), 1e-9)
		})
	}

	t.Run("not square", func(t *testing.T) {
		m, err := NewMatrix([][]float64{{1, 2, 3}}, unit.Meter, storage.TypeDense)
		require.NoError(t, err)
		_, err = m.Diagonal()
		assert.ErrorIs(t, err, linalg.ErrNotSquare)
		_, err = m.Determinant()
		assert.ErrorIs(t, err, linalg.ErrNotSquare)
	})

	t.Run("sparse entries", func(t *testing.T) {
		m, err := NewSparseMatrix([]storage.Entry{{Row: 0, Col: 1, Value: 2}}, 2, 2, unit.Kilometer, storage.TypeSparse)
		require.NoError(t, err)
		assert.Equal(t, 1, m.Cardinality())
		assert.Equal(t, [][]float64{{0, 2000}, {0, 0}}, m.ValuesSI2D())
	})

	t.Run("mutable set", func(t *testing.T) {
		m, err := NewMatrix(values, unit.Meter, storage.TypeSparse)
		require.NoError(t, err)
		mm := m.Mutable()
		require.NoError(t, mm.SetInUnit(0, 0, 1, unit.Kilometer))
		assert.ErrorIs(t, mm.SetSI(2, 0, 1), storage.ErrOutOfRange)
		assert.Equal(t, [][]float64{{1000, 2}, {3, 4}}, mm.ValuesSI2D())
		assert.Equal(t, values, m.ValuesSI2D())
	})

	t.Run("eigenvalues", func(t *testing.T) {
		m, err := NewMatrix([][]float64{{2, 0}, {0, 3}}, unit.Second, storage.TypeDense)
		require.NoError(t, err)
		ev, err := m.Eigenvalues()
		require.NoError(t, err)
		require.Len(t, ev, 2)
		re := []float64{real(ev[0]), real(ev[1])}
		slices.Sort(re)
		assert.InDeltaSlice(t, []float64{2, 3}, re, 1e-9)
	})
}

func TestTypedProducts(t *testing.T) {
	lengths, err := NewVector([]float64{1, 2, 3}, unit.Meter, storage.TypeDense)
	require.NoError(t, err)
	durations, err := NewVector([]float64{2, 4, 0}, unit.Second, storage.TypeSparse)
	require.NoError(t, err)

	t.Run("area", func(t *testing.T) {
		area, err := MulVector[unit.Area](lengths, lengths)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 4, 9}, area.ValuesSI())
		assert.True(t, area.Unit().Equal(unit.Standard[unit.Area]()))
	})

	t.Run("speed", func(t *testing.T) {
		speed, err := DivVector[unit.Speed](lengths, durations)
		require.NoError(t, err)
		vs := speed.ValuesSI()
		assert.Equal(t, 0.5, vs[0])
		assert.Equal(t, 0.5, vs[1])
		assert.True(t, vs[2] > 1e300)
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := MulVector[unit.Volume](lengths, durations)
		assert.ErrorIs(t, err, dimension.ErrMismatch)
	})

	t.Run("matrix", func(t *testing.T) {
		forces, err := NewMatrix([][]float64{{1, 2}}, unit.Newton, storage.TypeDense)
		require.NoError(t, err)
		arms, err := NewMatrix([][]float64{{3, 4}}, unit.Meter, storage.TypeDense)
		require.NoError(t, err)
		energy, err := MulMatrix[unit.Energy](forces, arms)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{3, 8}}, energy.ValuesSI2D())

		back, err := DivMatrix[unit.Force](energy, arms)
		require.NoError(t, err)
		assert.True(t, back.Equal(forces))
	})

	t.Run("matrix is not a vector", func(t *testing.T) {
		m, err := NewMatrix([][]float64{{1, 2}}, unit.Meter, storage.TypeDense)
		require.NoError(t, err)
		_, err = MulVector[unit.Area](m, m)
		assert.ErrorIs(t, err, storage.ErrSizeMismatch)
	})
}

func TestJSON(t *testing.T) {
	v, err := NewVector([]float64{1, 0, 2}, unit.Kilometer, storage.TypeSparse)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Length","unit":"km","storage":"sparse","rows":3,"cols":1,"values":[1,0,2]}`, string(data))

	var back Vector[unit.Length]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(v))
	assert.Equal(t, storage.TypeSparse, back.StorageType())
	assert.True(t, back.Unit().Equal(unit.Kilometer))

	t.Run("wrong kind", func(t *testing.T) {
		var m Matrix[unit.Mass]
		assert.Error(t, json.Unmarshal(data, &m))
	})

	t.Run("matrix", func(t *testing.T) {
		m, err := NewMatrix([][]float64{{1, 2}, {3, 4}}, unit.Gram, storage.TypeDense)
		require.NoError(t, err)
		data, err := json.Marshal(m)
		require.NoError(t, err)

		var back MutableMatrix[unit.Mass]
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, back.Equal(m))
	})

	t.Run("matrix into vector", func(t *testing.T) {
		m, _ := NewMatrix([][]float64{{1, 2}}, unit.Gram, storage.TypeDense)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		var back Vector[unit.Mass]
		assert.ErrorIs(t, json.Unmarshal(data, &back), storage.ErrSizeMismatch)

		kept, err := NewVector([]float64{7, 8, 9}, unit.Kilogram, storage.TypeDense)
		require.NoError(t, err)
		require.Error(t, json.Unmarshal(data, kept))
		assert.Equal(t, 3, kept.Size())
		assert.Equal(t, 1, kept.Cols())
		assert.Equal(t, []float64{7, 8, 9}, kept.ValuesInUnit())
		assert.True(t, kept.Unit().Equal(unit.Kilogram))

		mv := kept.Mutable()
		require.Error(t, json.Unmarshal(data, mv))
		assert.Equal(t, []float64{7, 8, 9}, mv.ValuesInUnit())
	})
}
