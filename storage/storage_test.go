package storage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/testutil"
)

type linear float64

func (l linear) ToStandard(v float64) float64 { return v * float64(l) }

func mustNew(t *testing.T, values [][]float64, hint Type) Data {
	t.Helper()
	d, err := New(values, nil, hint)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	t.Run("converts through scale", func(t *testing.T) {
		d, err := New([][]float64{{1, 2}, {0, 4}}, linear(1000), TypeDense)
		require.NoError(t, err)
		assert.Equal(t, TypeDense, d.Type())
		assert.Equal(t, []float64{1000, 2000, 0, 4000}, d.Values())
	})

	t.Run("sparse hint", func(t *testing.T) {
		d := mustNew(t, [][]float64{{0, 2}, {0, 0}}, TypeSparse)
		assert.Equal(t, TypeSparse, d.Type())
		assert.Equal(t, 1, d.Cardinality())
		v, err := d.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := New(nil, nil, TypeDense)
		require.ErrorIs(t, err, ErrEmpty)
		_, err = New([][]float64{{}}, nil, TypeDense)
		require.ErrorIs(t, err, ErrEmpty)
		_, err = New([][]float64{{1, 2}, {3}}, nil, TypeDense)
		require.ErrorIs(t, err, ErrJagged)
		_, err = FromSI([]float64{1, 2, 3}, 2, 2, TypeDense)
		require.ErrorIs(t, err, ErrSizeMismatch)
	})

	t.Run("large input converted in parallel", func(t *testing.T) {
		rows, cols := 512, 64
		values := make([][]float64, rows)
		for r := range values {
			values[r] = make([]float64, cols)
			for c := range values[r] {
				values[r][c] = float64(r*cols + c)
			}
		}
		d, err := New(values, linear(2), TypeDense)
		require.NoError(t, err)
		flat := d.Values()
		for i, v := range flat {
			require.Equal(t, float64(2*i), v)
		}
	})
}

func TestFromSparse(t *testing.T) {
	d, err := FromSparse([]Entry{{Row: 0, Col: 2, Value: 5}, {Row: 1, Col: 0, Value: 1}}, 2, 3, linear(10), TypeSparse)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 50}, {10, 0, 0}}, d.Dense2D())

	_, err = FromSparse([]Entry{{Row: 2, Col: 0, Value: 1}}, 2, 3, nil, TypeSparse)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestResultRepresentation(t *testing.T) {
	values := [][]float64{{1, 0}, {0, 2}}
	dense := mustNew(t, values, TypeDense)
	sparse := mustNew(t, values, TypeSparse)

	tests := []struct {
		name string
		fn   func(a, b Data) (Data, error)
		a, b Data
		want Type
	}{
		{"plus dense+dense", Plus, dense, dense, TypeDense},
		{"plus dense+sparse", Plus, dense, sparse, TypeDense},
		{"plus sparse+sparse", Plus, sparse, sparse, TypeSparse},
		{"minus sparse+dense", Minus, sparse, dense, TypeDense},
		{"minus sparse+sparse", Minus, sparse, sparse, TypeSparse},
		{"times dense+dense", Times, dense, dense, TypeDense},
		{"times dense+sparse", Times, dense, sparse, TypeSparse},
		{"times sparse+sparse", Times, sparse, sparse, TypeSparse},
		{"divide dense+dense", Divide, dense, dense, TypeDense},
		{"divide sparse+dense", Divide, sparse, dense, TypeSparse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Type())
		})
	}
}

func TestElementwiseIndependentOfRepresentation(t *testing.T) {
	a := [][]float64{{1, 0, 3}, {0, 5, 0}}
	b := [][]float64{{2, 0, 0}, {4, 5, 6}}

	for _, fn := range []func(a, b Data) (Data, error){Plus, Minus, Times} {
		want, err := fn(mustNew(t, a, TypeDense), mustNew(t, b, TypeDense))
		require.NoError(t, err)
		for _, ha := range []Type{TypeDense, TypeSparse} {
			for _, hb := range []Type{TypeDense, TypeSparse} {
				got, err := fn(mustNew(t, a, ha), mustNew(t, b, hb))
				require.NoError(t, err)
				assert.True(t, Equal(want, got), "%v %v: %v vs %v", ha, hb, want.Values(), got.Values())
			}
		}
	}

	plus, err := Plus(mustNew(t, a, TypeDense), mustNew(t, b, TypeSparse))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 0, 3}, {4, 10, 6}}, plus.Dense2D())
}

func TestRandomizedRepresentation(t *testing.T) {
	rng := testutil.NewRNG(4711)
	// 200x100 crosses the parallel threshold.
	a := rng.SparseMatrix(200, 100, 0.1)
	b := rng.SparseMatrix(200, 100, 0.3)

	for _, fn := range []func(a, b Data) (Data, error){Plus, Minus, Times} {
		want, err := fn(mustNew(t, a, TypeDense), mustNew(t, b, TypeDense))
		require.NoError(t, err)
		got, err := fn(mustNew(t, a, TypeSparse), mustNew(t, b, TypeSparse))
		require.NoError(t, err)
		assert.Equal(t, TypeSparse, got.Type())
		assert.True(t, Equal(want, got), "seed %d", rng.Seed())
	}

	dense := mustNew(t, a, TypeDense)
	sparse := mustNew(t, a, TypeSparse)
	assert.Equal(t, dense.Cardinality(), sparse.Cardinality())
	assert.InDelta(t, dense.Sum(), sparse.Sum(), 1e-9)

	dense.MultiplyBy(3)
	sparse.MultiplyBy(3)
	dense.IncrementBy(0.5)
	sparse.IncrementBy(0.5)
	assert.True(t, Equal(dense, sparse))
}

func TestElementwiseDoesNotMutateOperands(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}}, TypeDense)
	b := mustNew(t, [][]float64{{3, 4}}, TypeDense)
	_, err := Plus(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, a.Values())
	assert.Equal(t, []float64{3, 4}, b.Values())
}

func TestDivideIEEE(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 0}}, TypeSparse)
	b := mustNew(t, [][]float64{{0, 0}}, TypeDense)
	got, err := Divide(a, b)
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	assert.True(t, math.IsInf(v, 1))
	v, _ = got.At(0, 1)
	assert.True(t, math.IsNaN(v))
}

func TestTimesImplicitZero(t *testing.T) {
	inf := [][]float64{{math.Inf(1), 2}}
	zero := [][]float64{{0, 3}}

	t.Run("sparse operands skip implicit zeros", func(t *testing.T) {
		got, err := Times(mustNew(t, inf, TypeSparse), mustNew(t, zero, TypeSparse))
		require.NoError(t, err)
		assert.Equal(t, TypeSparse, got.Type())
		assert.Equal(t, []float64{0, 6}, got.Values())
	})

	t.Run("dense operand evaluates every cell", func(t *testing.T) {
		for _, types := range [][2]Type{{TypeDense, TypeDense}, {TypeSparse, TypeDense}, {TypeDense, TypeSparse}} {
			got, err := Times(mustNew(t, inf, types[0]), mustNew(t, zero, types[1]))
			require.NoError(t, err)
			v, _ := got.At(0, 0)
			assert.True(t, math.IsNaN(v), "%v x %v", types[0], types[1])
			v, _ = got.At(0, 1)
			assert.Equal(t, 6.0, v)
		}
	})
}

func TestSizeMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}}, TypeDense)
	b := mustNew(t, [][]float64{{1}, {2}}, TypeDense)
	for _, fn := range []func(a, b Data) (Data, error){Plus, Minus, Times, Divide} {
		_, err := fn(a, b)
		require.ErrorIs(t, err, ErrSizeMismatch)
	}
	require.ErrorIs(t, a.Copy().IncrementByData(b), ErrSizeMismatch)
	require.ErrorIs(t, a.ToSparse().MultiplyByData(b), ErrSizeMismatch)
}

func TestBroadcastKeepsRepresentation(t *testing.T) {
	for _, hint := range []Type{TypeDense, TypeSparse} {
		t.Run(hint.String(), func(t *testing.T) {
			d := mustNew(t, [][]float64{{0, 2}, {4, 0}}, hint)

			d.IncrementBy(1)
			assert.Equal(t, hint, d.Type())
			assert.Equal(t, []float64{1, 3, 5, 1}, d.Values())

			d.DecrementBy(1)
			assert.Equal(t, []float64{0, 2, 4, 0}, d.Values())
			assert.Equal(t, 2, d.Cardinality())

			d.MultiplyBy(3)
			assert.Equal(t, []float64{0, 6, 12, 0}, d.Values())

			d.DivideBy(2)
			assert.Equal(t, hint, d.Type())
			assert.Equal(t, []float64{0, 3, 6, 0}, d.Values())

			d.MultiplyBy(0)
			assert.Equal(t, 0, d.Cardinality())
		})
	}
}

func TestInPlaceData(t *testing.T) {
	for _, hint := range []Type{TypeDense, TypeSparse} {
		t.Run(hint.String(), func(t *testing.T) {
			d := mustNew(t, [][]float64{{1, 2}, {3, 4}}, hint)
			other := mustNew(t, [][]float64{{1, 0}, {0, 1}}, TypeSparse)

			require.NoError(t, d.IncrementByData(other))
			assert.Equal(t, []float64{2, 2, 3, 5}, d.Values())
			require.NoError(t, d.DecrementByData(other))
			require.NoError(t, d.MultiplyByData(other))
			assert.Equal(t, []float64{1, 0, 0, 4}, d.Values())
			assert.Equal(t, hint, d.Type())

			require.NoError(t, d.DivideByData(mustNew(t, [][]float64{{2, 1}, {1, 4}}, TypeDense)))
			assert.Equal(t, []float64{0.5, 0, 0, 1}, d.Values())
			assert.Equal(t, hint, d.Type())
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, hint := range []Type{TypeDense, TypeSparse} {
		t.Run(hint.String(), func(t *testing.T) {
			zeros := mustNew(t, [][]float64{{0, 0}, {0, 0}}, hint)
			require.ErrorIs(t, zeros.Normalize(), ErrDivideByZero)

			ones := mustNew(t, [][]float64{{1, 1}, {1, 1}}, hint)
			require.NoError(t, ones.Normalize())
			assert.Equal(t, [][]float64{{0.25, 0.25}, {0.25, 0.25}}, ones.Dense2D())
		})
	}
}

func TestSparseSet(t *testing.T) {
	s := mustNew(t, [][]float64{{0, 0, 0}}, TypeSparse)
	require.NoError(t, s.Set(0, 2, 3))
	require.NoError(t, s.Set(0, 0, 1))
	require.NoError(t, s.Set(0, 1, 2))
	assert.Equal(t, []float64{1, 2, 3}, s.Values())
	assert.Equal(t, 3, s.Cardinality())

	require.NoError(t, s.Set(0, 1, 0))
	assert.Equal(t, []float64{1, 0, 3}, s.Values())
	assert.Equal(t, 2, s.Cardinality())

	require.ErrorIs(t, s.Set(1, 0, 1), ErrOutOfRange)
	_, err := s.At(0, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCopyIsDeep(t *testing.T) {
	for _, hint := range []Type{TypeDense, TypeSparse} {
		d := mustNew(t, [][]float64{{1, 2}}, hint)
		c := d.Copy()
		require.NoError(t, c.Set(0, 0, 9))
		c.IncrementBy(1)
		assert.Equal(t, []float64{1, 2}, d.Values())
		assert.Equal(t, []float64{10, 3}, c.Values())
	}
}

func TestConversionLossless(t *testing.T) {
	values := [][]float64{{0, -1.5, 0}, {math.Pi, 0, 1e-300}}
	d := mustNew(t, values, TypeDense)
	assert.True(t, Equal(d, d.ToSparse()))
	assert.True(t, Equal(d.ToSparse().ToDense(), d))
	assert.Equal(t, values, d.ToSparse().Dense2D())
	assert.InDelta(t, math.Pi-1.5, d.ToSparse().Sum(), 1e-12)
}

func TestParseType(t *testing.T) {
	ty, err := ParseType("Sparse")
	require.NoError(t, err)
	assert.Equal(t, TypeSparse, ty)
	_, err = ParseType("columnar")
	require.Error(t, err)
}

func BenchmarkPlus(b *testing.B) {
	values := testutil.NewRNG(42).SparseMatrix(256, 256, 0.15)

	for _, hint := range []Type{TypeDense, TypeSparse} {
		x, _ := New(values, nil, hint)
		b.Run(hint.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Plus(x, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
