package dimension

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	force  = New(1, 1, -2)
	energy = New(2, 1, -2)
	speed  = New(1, 0, -1)
)

func TestExponent(t *testing.T) {
	t.Run("zero value equals Int(0)", func(t *testing.T) {
		assert.Equal(t, Exponent{}, Int(0))
		assert.True(t, Int(0).IsZero())
	})

	t.Run("fractions are reduced", func(t *testing.T) {
		assert.Equal(t, Frac(1, 2), Frac(2, 4))
		assert.Equal(t, Frac(-1, 2), Frac(1, -2))
		assert.Equal(t, Int(3), Frac(6, 2))
		assert.Equal(t, "1/2", Frac(2, 4).String())
	})

	t.Run("arithmetic", func(t *testing.T) {
		assert.Equal(t, Int(1), Frac(1, 2).Add(Frac(1, 2)))
		assert.Equal(t, Frac(1, 6), Frac(1, 2).Sub(Frac(1, 3)))
		assert.Equal(t, Int(0), Frac(1, 2).Sub(Frac(1, 2)))
		assert.Equal(t, Frac(3, 4), Frac(3, 2).Mul(Frac(1, 2)))
		assert.InDelta(t, 0.75, Frac(3, 4).Float(), 1e-15)
	})

	t.Run("zero denominator panics", func(t *testing.T) {
		assert.Panics(t, func() { Frac(1, 0) })
	})
}

func TestVectorAlgebra(t *testing.T) {
	t.Run("add and sub", func(t *testing.T) {
		assert.Equal(t, energy, Add(force, Length))
		assert.Equal(t, speed, Sub(Length, Time))
		assert.Equal(t, Dimensionless, Sub(force, force))
	})

	t.Run("inverse is the group inverse", func(t *testing.T) {
		for _, d := range []Vector{Dimensionless, force, energy, speed, Scale(Length, Frac(1, 2)), Money} {
			assert.Equal(t, Dimensionless, Add(d, Neg(d)), d.String())
		}
	})

	t.Run("add is associative and commutative", func(t *testing.T) {
		d1, d2, d3 := force, Scale(speed, Frac(-3, 2)), Money
		assert.True(t, Equal(Add(Add(d1, d2), d3), Add(d1, Add(d2, d3))))
		assert.True(t, Equal(Add(d1, d2), Add(d2, d1)))
	})

	t.Run("scale", func(t *testing.T) {
		area := Scale(Length, Int(2))
		assert.Equal(t, Length, Scale(area, Frac(1, 2)))
		assert.True(t, Scale(Length, Frac(1, 2)).IsFractional())
		assert.False(t, area.IsFractional())
	})

	t.Run("zero vector is dimensionless", func(t *testing.T) {
		assert.True(t, Vector{}.IsDimensionless())
		assert.False(t, Length.IsDimensionless())
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[Vector]string{Sub(Length, Time): "speed"}
		assert.Equal(t, "speed", m[speed])
	})
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want string
	}{
		{"dimensionless", Dimensionless, "1"},
		{"length", Length, "m"},
		{"speed", speed, "m/s"},
		{"energy", energy, "kg.m2/s2"},
		{"frequency", Neg(Time), "1/s"},
		{"sqrt length", Scale(Length, Frac(1, 2)), "m(1/2)"},
		{"money per kg", Sub(Money, Mass), "¤/kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Vector
	}{
		{"1", Dimensionless},
		{"", Dimensionless},
		{"m", Length},
		{"kgm2/s3", New(2, 1, -3)},
		{"kg.m2/s3", New(2, 1, -3)},
		{"m.s-2", New(1, 0, -2)},
		{"mol/m3", Sub(Amount, Scale(Length, Int(3)))},
		{"m(1/2)", Scale(Length, Frac(1, 2))},
		{"money/s", Sub(Money, Time)},
		{"1/s", Neg(Time)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("round trip", func(t *testing.T) {
		for _, v := range []Vector{force, energy, speed, Neg(Time), Scale(Mass, Frac(-1, 2)), Money} {
			got, err := Parse(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("errors", func(t *testing.T) {
		for _, in := range []string{"m/s/s", "xyz", "m-", "m(1/0)"} {
			_, err := Parse(in)
			assert.Error(t, err, in)
		}
		assert.Panics(t, func() { MustParse("q") })
	})
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(speed, Sub(Length, Time)))

	err := Check(speed, Length)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))

	var me *MismatchError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, speed, me.Expected)
	assert.Equal(t, Length, me.Actual)
	assert.Equal(t, "dimension mismatch: expected m/s, got m", err.Error())
}
