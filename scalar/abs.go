package scalar

import (
	"cmp"
	"math"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
)

// Abs is a position on the absolute scale whose differences are Rel[K],
// e.g. Abs[unit.Temperature] is an absolute temperature.
type Abs[K unit.AbsQuantity] struct {
	si   float64
	unit unit.AbsUnit[K]
}

// NewAbs returns value expressed in u.
func NewAbs[K unit.AbsQuantity](value float64, u unit.AbsUnit[K]) Abs[K] {
	return Abs[K]{si: u.ToStandard(value), unit: u}
}

// AbsFromSI returns a position of si standard units in the standard unit.
func AbsFromSI[K unit.AbsQuantity](si float64) Abs[K] {
	return Abs[K]{si: si}
}

// AbsFromSIIn returns a position of si standard units displayed in u.
func AbsFromSIIn[K unit.AbsQuantity](si float64, u unit.AbsUnit[K]) Abs[K] {
	return Abs[K]{si: si, unit: u}
}

// SI returns the value in the standard unit of the absolute kind.
func (a Abs[K]) SI() float64 { return a.si }

// Dimensions returns the dimension vector of K.
func (a Abs[K]) Dimensions() dimension.Vector { return unit.KindOf[K]().Dimensions() }

// Unit returns the display unit.
func (a Abs[K]) Unit() unit.AbsUnit[K] { return a.unit }

// InUnit returns the value in the display unit.
func (a Abs[K]) InUnit() float64 { return a.unit.FromStandard(a.si) }

// In returns the value expressed in u.
func (a Abs[K]) In(u unit.AbsUnit[K]) float64 { return u.FromStandard(a.si) }

// WithUnit returns the same position displayed in u.
func (a Abs[K]) WithUnit(u unit.AbsUnit[K]) Abs[K] { return Abs[K]{si: a.si, unit: u} }

// AddTo returns a moved by r.
func AddTo[K unit.AbsQuantity](r Rel[K], a Abs[K]) Abs[K] { return a.Plus(r) }

// ToAbs reinterprets r as a position: the value in the display unit is kept
// and the unit is mapped to its absolute counterpart, so a difference of
// 10 °C becomes 10 °C. Units without an absolute twin map to the standard
// unit of the absolute kind.
func ToAbs[K unit.AbsQuantity](r Rel[K]) Abs[K] {
	u := unit.Absolute(r.unit)
	return NewAbs(u.Relative().FromStandard(r.si), u)
}

// Plus moves a by r. The display unit stays a's.
func (a Abs[K]) Plus(r Rel[K]) Abs[K] { return Abs[K]{si: a.si + r.si, unit: a.unit} }

// Minus moves a back by r. The display unit stays a's.
func (a Abs[K]) Minus(r Rel[K]) Abs[K] { return Abs[K]{si: a.si - r.si, unit: a.unit} }

// MinusAbs returns the difference a - o, displayed in the relative
// counterpart of a's unit.
func (a Abs[K]) MinusAbs(o Abs[K]) Rel[K] {
	return Rel[K]{si: a.si - o.si, unit: a.unit.Relative()}
}

func (a Abs[K]) Lt(o Abs[K]) bool { return a.si < o.si }
func (a Abs[K]) Le(o Abs[K]) bool { return a.si <= o.si }
func (a Abs[K]) Gt(o Abs[K]) bool { return a.si > o.si }
func (a Abs[K]) Ge(o Abs[K]) bool { return a.si >= o.si }
func (a Abs[K]) Eq(o Abs[K]) bool { return a.si == o.si }
func (a Abs[K]) Ne(o Abs[K]) bool { return a.si != o.si }

func (a Abs[K]) Lt0() bool { return a.si < 0 }
func (a Abs[K]) Le0() bool { return a.si <= 0 }
func (a Abs[K]) Gt0() bool { return a.si > 0 }
func (a Abs[K]) Ge0() bool { return a.si >= 0 }
func (a Abs[K]) Eq0() bool { return a.si == 0 }
func (a Abs[K]) Ne0() bool { return a.si != 0 }

// Compare returns -1, 0 or +1 like cmp.Compare on the standard values.
func (a Abs[K]) Compare(o Abs[K]) int { return cmp.Compare(a.si, o.si) }

// Ceil rounds up in the display unit.
func (a Abs[K]) Ceil() Abs[K] { return a.inDisplay(math.Ceil) }

// Floor rounds down in the display unit.
func (a Abs[K]) Floor() Abs[K] { return a.inDisplay(math.Floor) }

// Round rounds half away from zero in the display unit.
func (a Abs[K]) Round() Abs[K] { return a.inDisplay(math.Round) }

// Rint rounds half to even in the display unit.
func (a Abs[K]) Rint() Abs[K] { return a.inDisplay(math.RoundToEven) }

func (a Abs[K]) inDisplay(fn func(float64) float64) Abs[K] {
	return NewAbs(fn(a.InUnit()), a.unit)
}

// ToRel reinterprets a as a relative quantity: the value in the display unit
// is kept and the unit is mapped to its relative counterpart, so 20 °C
// becomes a difference of 20 °C.
func (a Abs[K]) ToRel() Rel[K] {
	u := a.unit.Relative()
	return New(unit.Absolute(u).FromStandard(a.si), u)
}

func (a Abs[K]) String() string { return format(a.InUnit(), a.unit.Symbol()) }
