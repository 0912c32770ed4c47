package scalar

import (
	"cmp"
	"math"
	"strconv"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
)

// Rel is a relative quantity of kind K. The zero value is zero in K's
// standard unit.
type Rel[K unit.Quantity] struct {
	si   float64
	unit unit.Unit[K]
}

// New returns value expressed in u.
func New[K unit.Quantity](value float64, u unit.Unit[K]) Rel[K] {
	return Rel[K]{si: u.ToStandard(value), unit: u}
}

// FromSI returns a quantity of si standard units, displayed in the standard
// unit.
func FromSI[K unit.Quantity](si float64) Rel[K] {
	return Rel[K]{si: si}
}

// FromSIIn returns a quantity of si standard units displayed in u.
func FromSIIn[K unit.Quantity](si float64, u unit.Unit[K]) Rel[K] {
	return Rel[K]{si: si, unit: u}
}

func (Rel[K]) relative() {}

// SI returns the value in the standard unit.
func (r Rel[K]) SI() float64 { return r.si }

// Dimensions returns the dimension vector of K.
func (r Rel[K]) Dimensions() dimension.Vector { return unit.KindOf[K]().Dimensions() }

// Kind returns the descriptor of K.
func (r Rel[K]) Kind() *unit.Kind { return unit.KindOf[K]() }

// Unit returns the display unit.
func (r Rel[K]) Unit() unit.Unit[K] { return r.unit }

// InUnit returns the value in the display unit.
func (r Rel[K]) InUnit() float64 { return r.unit.FromStandard(r.si) }

// In returns the value expressed in u.
func (r Rel[K]) In(u unit.Unit[K]) float64 { return u.FromStandard(r.si) }

// WithUnit returns the same quantity displayed in u.
func (r Rel[K]) WithUnit(u unit.Unit[K]) Rel[K] { return Rel[K]{si: r.si, unit: u} }

// Generic drops the kind.
func (r Rel[K]) Generic() SI { return generic(r) }

// Plus returns r + o. The result keeps r's unit when both share it, otherwise
// it is displayed in the standard unit.
func (r Rel[K]) Plus(o Rel[K]) Rel[K] {
	return Rel[K]{si: r.si + o.si, unit: commonUnit(r.unit, o.unit)}
}

// Minus returns r - o with the display rule of Plus.
func (r Rel[K]) Minus(o Rel[K]) Rel[K] {
	return Rel[K]{si: r.si - o.si, unit: commonUnit(r.unit, o.unit)}
}

func commonUnit[K unit.Quantity](a, b unit.Unit[K]) unit.Unit[K] {
	if a.Equal(b) {
		return a
	}
	return unit.Standard[K]()
}

// MultiplyBy scales r by f.
func (r Rel[K]) MultiplyBy(f float64) Rel[K] { return Rel[K]{si: r.si * f, unit: r.unit} }

// DivideBy divides r by f.
func (r Rel[K]) DivideBy(f float64) Rel[K] { return Rel[K]{si: r.si / f, unit: r.unit} }

// Times multiplies r by q. The result is a named Rel when the product's
// dimension vector is registered, otherwise an SI.
func (r Rel[K]) Times(q Quantity) Quantity { return generic(r).Times(q).Promote() }

// Divide divides r by q; see Times.
func (r Rel[K]) Divide(q Quantity) Quantity { return generic(r).Divide(q).Promote() }

// Inv returns 1/r, promoted like Times.
func (r Rel[K]) Inv() Quantity { return generic(r).Inv().Promote() }

// Sqrt returns the square root, promoted like Times.
func (r Rel[K]) Sqrt() Quantity { return generic(r).Sqrt().Promote() }

// Pow raises r to e, promoted like Times.
func (r Rel[K]) Pow(e dimension.Exponent) Quantity { return generic(r).Pow(e).Promote() }

func (r Rel[K]) Lt(o Rel[K]) bool { return r.si < o.si }
func (r Rel[K]) Le(o Rel[K]) bool { return r.si <= o.si }
func (r Rel[K]) Gt(o Rel[K]) bool { return r.si > o.si }
func (r Rel[K]) Ge(o Rel[K]) bool { return r.si >= o.si }
func (r Rel[K]) Eq(o Rel[K]) bool { return r.si == o.si }
func (r Rel[K]) Ne(o Rel[K]) bool { return r.si != o.si }

func (r Rel[K]) Lt0() bool { return r.si < 0 }
func (r Rel[K]) Le0() bool { return r.si <= 0 }
func (r Rel[K]) Gt0() bool { return r.si > 0 }
func (r Rel[K]) Ge0() bool { return r.si >= 0 }
func (r Rel[K]) Eq0() bool { return r.si == 0 }
func (r Rel[K]) Ne0() bool { return r.si != 0 }

// Compare returns -1, 0 or +1 like cmp.Compare on the standard values.
func (r Rel[K]) Compare(o Rel[K]) int { return cmp.Compare(r.si, o.si) }

// Abs returns |r|.
func (r Rel[K]) Abs() Rel[K] { return Rel[K]{si: math.Abs(r.si), unit: r.unit} }

// Neg returns -r.
func (r Rel[K]) Neg() Rel[K] { return Rel[K]{si: -r.si, unit: r.unit} }

// Ceil rounds up in the display unit.
func (r Rel[K]) Ceil() Rel[K] { return r.inDisplay(math.Ceil) }

// Floor rounds down in the display unit.
func (r Rel[K]) Floor() Rel[K] { return r.inDisplay(math.Floor) }

// Round rounds half away from zero in the display unit.
func (r Rel[K]) Round() Rel[K] { return r.inDisplay(math.Round) }

// Rint rounds half to even in the display unit.
func (r Rel[K]) Rint() Rel[K] { return r.inDisplay(math.RoundToEven) }

func (r Rel[K]) inDisplay(fn func(float64) float64) Rel[K] {
	return New(fn(r.InUnit()), r.unit)
}

func (r Rel[K]) String() string { return format(r.InUnit(), r.unit.Symbol()) }

func format(v float64, symbol string) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " " + symbol
}
