package container

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

func TestAbsVector(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			v, err := NewAbsVector([]float64{20, 25, 30}, unit.AbsCelsius, st)
			require.NoError(t, err)
			assert.Equal(t, st, v.StorageType())
			assert.Equal(t, 3, v.Size())
			assert.Equal(t, "AbsoluteTemperature", v.Kind().Name())
			assert.InDeltaSlice(t, []float64{293.15, 298.15, 303.15}, v.ValuesSI(), 1e-9)
			assert.InDeltaSlice(t, []float64{20, 25, 30}, v.ValuesInUnit(), 1e-9)

			got, err := v.Get(1)
			require.NoError(t, err)
			assert.True(t, got.Unit().Equal(unit.AbsCelsius))
			assert.InDelta(t, 25, got.InUnit(), 1e-9)

			d, err := NewVector([]float64{1, 2, 3}, unit.Kelvin, st)
			require.NoError(t, err)

			t.Run("plus rel keeps the absolute unit", func(t *testing.T) {
				p, err := v.Plus(d)
				require.NoError(t, err)
				assert.True(t, p.Unit().Equal(unit.AbsCelsius))
				assert.InDeltaSlice(t, []float64{21, 27, 33}, p.ValuesInUnit(), 1e-9)
			})

			t.Run("minus rel keeps the absolute unit", func(t *testing.T) {
				m, err := v.Minus(d)
				require.NoError(t, err)
				assert.True(t, m.Unit().Equal(unit.AbsCelsius))
				assert.InDeltaSlice(t, []float64{19, 23, 27}, m.ValuesInUnit(), 1e-9)
			})

			t.Run("minus abs gives differences in the relative unit", func(t *testing.T) {
				w, err := NewAbsVector([]float64{68, 68, 68}, unit.AbsFahrenheit, st)
				require.NoError(t, err)

				diff, err := v.MinusAbs(w)
				require.NoError(t, err)
				assert.True(t, diff.Unit().Equal(unit.Celsius))
				assert.InDeltaSlice(t, []float64{0, 5, 10}, diff.ValuesInUnit(), 1e-9)

				back, err := w.MinusAbs(v)
				require.NoError(t, err)
				assert.True(t, back.Unit().Equal(unit.Fahrenheit))
				assert.InDeltaSlice(t, []float64{0, -9, -18}, back.ValuesInUnit(), 1e-9)
			})

			t.Run("size mismatch", func(t *testing.T) {
				short, err := NewVector([]float64{1}, unit.Kelvin, st)
				require.NoError(t, err)
				_, err = v.Plus(short)
				assert.ErrorIs(t, err, storage.ErrSizeMismatch)

				other, err := NewAbsVector([]float64{1, 2}, unit.AbsKelvin, st)
				require.NoError(t, err)
				_, err = v.MinusAbs(other)
				assert.ErrorIs(t, err, storage.ErrSizeMismatch)
			})
		})
	}

	t.Run("from scalars", func(t *testing.T) {
		v, err := AbsVectorOf(storage.TypeDense,
			scalar.NewAbs(1, unit.AbsKilometer), scalar.NewAbs(500, unit.AbsMeter))
		require.NoError(t, err)
		assert.True(t, v.Unit().Equal(unit.AbsKilometer))
		assert.InDeltaSlice(t, []float64{1000, 500}, v.ValuesSI(), 1e-12)
		assert.Equal(t, "[1, 0.5] km", v.String())

		_, err = AbsVectorOf[unit.Length](storage.TypeDense)
		assert.ErrorIs(t, err, storage.ErrEmpty)
	})

	t.Run("display unit", func(t *testing.T) {
		v, err := NewAbsVectorSI([]float64{273.15, 373.15}, unit.AbsKelvin, storage.TypeDense)
		require.NoError(t, err)
		c := v.WithUnit(unit.AbsCelsius)
		assert.InDeltaSlice(t, []float64{0, 100}, c.ValuesInUnit(), 1e-9)
		assert.True(t, c.Equal(v))
		assert.True(t, v.ToSparse().Equal(v))
	})
}

func TestMutableAbsVector(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			v, err := NewAbsVector([]float64{10, 20}, unit.AbsCelsius, st)
			require.NoError(t, err)
			m := v.Mutable()

			d, err := NewVector([]float64{5, 5}, unit.Kelvin, st)
			require.NoError(t, err)
			require.NoError(t, m.IncrementBy(d))
			assert.InDeltaSlice(t, []float64{15, 25}, m.ValuesInUnit(), 1e-9)
			// the source shares storage copy-on-write
			assert.InDeltaSlice(t, []float64{10, 20}, v.ValuesInUnit(), 1e-9)

			require.NoError(t, m.DecrementBy(d))
			assert.InDeltaSlice(t, []float64{10, 20}, m.ValuesInUnit(), 1e-9)

			m.IncrementByScalar(scalar.New(9, unit.Fahrenheit))
			assert.InDeltaSlice(t, []float64{15, 25}, m.ValuesInUnit(), 1e-9)
			m.DecrementByScalar(scalar.New(5, unit.Kelvin))
			assert.InDeltaSlice(t, []float64{10, 20}, m.ValuesInUnit(), 1e-9)

			require.NoError(t, m.Set(0, scalar.NewAbs(50, unit.AbsFahrenheit)))
			require.NoError(t, m.SetInUnit(1, 300, unit.AbsKelvin))
			got, err := m.GetInUnit(0)
			require.NoError(t, err)
			assert.InDelta(t, 10, got, 1e-9)
			si, err := m.GetSI(1)
			require.NoError(t, err)
			assert.Equal(t, 300.0, si)

			assert.ErrorIs(t, m.SetSI(2, 1), storage.ErrOutOfRange)

			require.NoError(t, m.SetInUnit(1, 20.4, unit.AbsCelsius))
			m.Round()
			got, err = m.GetInUnit(1)
			require.NoError(t, err)
			assert.InDelta(t, 20, got, 1e-9)

			m.SetDisplayUnit(unit.AbsKelvin)
			assert.InDeltaSlice(t, []float64{283.15, 293.15}, m.ValuesInUnit(), 1e-9)

			require.NoError(t, m.Normalize())
			assert.InDelta(t, 1, m.ValuesSI()[0]+m.ValuesSI()[1], 1e-12)
		})
	}

	t.Run("normalize zero sum", func(t *testing.T) {
		v, err := NewAbsVectorSI([]float64{1, -1}, unit.AbsKelvin, storage.TypeDense)
		require.NoError(t, err)
		m := v.Mutable()
		assert.ErrorIs(t, m.Normalize(), storage.ErrDivideByZero)
		assert.Equal(t, []float64{1, -1}, m.ValuesSI())
	})

	t.Run("minus abs", func(t *testing.T) {
		a, err := NewAbsVector([]float64{3, 4}, unit.AbsHour, storage.TypeDense)
		require.NoError(t, err)
		b, err := NewAbsVector([]float64{1, 1}, unit.AbsHour, storage.TypeDense)
		require.NoError(t, err)

		d, err := a.Mutable().MinusAbs(b)
		require.NoError(t, err)
		assert.True(t, d.Unit().Equal(unit.Hour))
		assert.InDeltaSlice(t, []float64{2, 3}, d.ValuesInUnit(), 1e-12)
		d.MultiplyBy(2)
		assert.InDeltaSlice(t, []float64{4, 6}, d.ValuesInUnit(), 1e-12)
	})
}

func TestAbsMatrix(t *testing.T) {
	for _, st := range storageTypes {
		t.Run(st.String(), func(t *testing.T) {
			m, err := NewAbsMatrix([][]float64{{0, 1}, {2, 3}}, unit.AbsKilometer, st)
			require.NoError(t, err)
			assert.Equal(t, "Position", m.Kind().Name())
			assert.Equal(t, [][]float64{{0, 1000}, {2000, 3000}}, m.ValuesSI2D())

			got, err := m.Get(1, 0)
			require.NoError(t, err)
			assert.Equal(t, 2000.0, got.SI())

			d, err := NewMatrix([][]float64{{500, 500}, {500, 500}}, unit.Meter, st)
			require.NoError(t, err)

			p, err := m.Plus(d)
			require.NoError(t, err)
			assert.True(t, p.Unit().Equal(unit.AbsKilometer))
			assert.InDeltaSlice(t, []float64{0.5, 1.5, 2.5, 3.5}, p.ValuesInUnit(), 1e-12)

			q, err := m.Minus(d)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{-0.5, 0.5, 1.5, 2.5}, q.ValuesInUnit(), 1e-12)

			diff, err := p.MinusAbs(m)
			require.NoError(t, err)
			assert.True(t, diff.Unit().Equal(unit.Kilometer))
			assert.True(t, diff.Equal(d))

			row, err := m.Row(1)
			require.NoError(t, err)
			assert.Equal(t, []float64{2000, 3000}, row.ValuesSI())
			col, err := m.Column(1)
			require.NoError(t, err)
			assert.Equal(t, []float64{1000, 3000}, col.ValuesSI())
			_, err = m.Row(2)
			assert.ErrorIs(t, err, storage.ErrOutOfRange)

			tr := m.Transpose()
			assert.Equal(t, [][]float64{{0, 2000}, {1000, 3000}}, tr.ValuesSI2D())
			assert.Equal(t, st, tr.StorageType())

			mm := m.Mutable()
			require.NoError(t, mm.SetInUnit(0, 0, 4, unit.AbsKilometer))
			require.NoError(t, mm.IncrementBy(d))
			v, err := mm.GetSI(0, 0)
			require.NoError(t, err)
			assert.Equal(t, 4500.0, v)
			v, err = m.GetSI(0, 0)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v)

			rel, err := mm.MinusAbs(m)
			require.NoError(t, err)
			assert.Equal(t, []float64{4500, 500, 500, 500}, rel.ValuesSI())
		})
	}
}

func TestAbsJSON(t *testing.T) {
	v, err := NewAbsVector([]float64{20, 100}, unit.AbsCelsius, storage.TypeDense)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"AbsoluteTemperature","unit":"degC","storage":"dense","rows":2,"cols":1,"values":[20,100]}`, string(data))

	var back MutableAbsVector[unit.Temperature]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(v))
	assert.True(t, back.Unit().Equal(unit.AbsCelsius))

	t.Run("relative record", func(t *testing.T) {
		rel, err := NewVector([]float64{20, 100}, unit.Celsius, storage.TypeDense)
		require.NoError(t, err)
		data, err := json.Marshal(rel)
		require.NoError(t, err)

		var abs AbsVector[unit.Temperature]
		assert.ErrorIs(t, json.Unmarshal(data, &abs), unit.ErrNotFound)
	})

	t.Run("matrix", func(t *testing.T) {
		m, err := NewAbsMatrix([][]float64{{1, 2}, {3, 4}}, unit.AbsHour, storage.TypeSparse)
		require.NoError(t, err)
		data, err := json.Marshal(m)
		require.NoError(t, err)

		var back AbsMatrix[unit.Duration]
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, back.Equal(m))
		assert.Equal(t, storage.TypeSparse, back.StorageType())

		kept, err := NewAbsVector([]float64{1}, unit.AbsHour, storage.TypeDense)
		require.NoError(t, err)
		assert.ErrorIs(t, json.Unmarshal(data, kept), storage.ErrSizeMismatch)
		assert.Equal(t, 1, kept.Size())
	})
}
