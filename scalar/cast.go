package scalar

import (
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
)

// As casts q to kind K without converting its value. It fails with a
// *dimension.MismatchError unless q has K's dimensions. The result is
// displayed in K's standard unit.
func As[K unit.Quantity](q Quantity) (Rel[K], error) {
	if err := dimension.Check(unit.KindOf[K]().Dimensions(), q.Dimensions()); err != nil {
		return Rel[K]{}, fmt.Errorf("cast to %s: %w", unit.KindOf[K](), err)
	}
	return Rel[K]{si: q.SI()}, nil
}

// AsIn is As with an explicit display unit.
func AsIn[K unit.Quantity](q Quantity, u unit.Unit[K]) (Rel[K], error) {
	r, err := As[K](q)
	if err != nil {
		return Rel[K]{}, err
	}
	return r.WithUnit(u), nil
}

// Mul returns a*b as kind R, e.g. Mul[unit.Area](length, length).
func Mul[R unit.Quantity](a, b Quantity) (Rel[R], error) {
	return As[R](generic(a).Times(b))
}

// Div returns a/b as kind R, e.g. Div[unit.Speed](length, duration).
func Div[R unit.Quantity](a, b Quantity) (Rel[R], error) {
	return As[R](generic(a).Divide(b))
}
