package scalar

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/unitgo/dimension"
)

// SI is a relative quantity typed only by its dimension vector. Its value is
// always in coherent SI units.
type SI struct {
	si   float64
	dims dimension.Vector
}

// NewSI returns si standard units of dimension dims.
func NewSI(si float64, dims dimension.Vector) SI {
	return SI{si: si, dims: dims}
}

func (SI) relative() {}

// SI returns the value in standard units.
func (s SI) SI() float64 { return s.si }

// Dimensions returns the dimension vector.
func (s SI) Dimensions() dimension.Vector { return s.dims }

// Plus adds o. Both operands must have the same dimensions.
func (s SI) Plus(o Quantity) (SI, error) {
	if err := dimension.Check(s.dims, o.Dimensions()); err != nil {
		return SI{}, err
	}
	return SI{si: s.si + o.SI(), dims: s.dims}, nil
}

// Minus subtracts o. Both operands must have the same dimensions.
func (s SI) Minus(o Quantity) (SI, error) {
	if err := dimension.Check(s.dims, o.Dimensions()); err != nil {
		return SI{}, err
	}
	return SI{si: s.si - o.SI(), dims: s.dims}, nil
}

// Times multiplies by q; the dimensions add.
func (s SI) Times(q Quantity) SI {
	return SI{si: s.si * q.SI(), dims: dimension.Add(s.dims, q.Dimensions())}
}

// Divide divides by q; the dimensions subtract.
func (s SI) Divide(q Quantity) SI {
	return SI{si: s.si / q.SI(), dims: dimension.Sub(s.dims, q.Dimensions())}
}

// MultiplyBy scales the value by f.
func (s SI) MultiplyBy(f float64) SI { return SI{si: s.si * f, dims: s.dims} }

// DivideBy divides the value by f.
func (s SI) DivideBy(f float64) SI { return SI{si: s.si / f, dims: s.dims} }

// Inv returns 1/s.
func (s SI) Inv() SI { return SI{si: 1 / s.si, dims: dimension.Neg(s.dims)} }

// Sqrt returns the square root; exponents are halved.
func (s SI) Sqrt() SI {
	return SI{si: math.Sqrt(s.si), dims: dimension.Scale(s.dims, dimension.Frac(1, 2))}
}

// Pow raises s to the rational power e.
func (s SI) Pow(e dimension.Exponent) SI {
	return SI{si: math.Pow(s.si, e.Float()), dims: dimension.Scale(s.dims, e)}
}

// Abs returns |s|.
func (s SI) Abs() SI { return SI{si: math.Abs(s.si), dims: s.dims} }

// Neg returns -s.
func (s SI) Neg() SI { return SI{si: -s.si, dims: s.dims} }

// Compare compares the values of two quantities with equal dimensions.
func (s SI) Compare(o Quantity) (int, error) {
	if err := dimension.Check(s.dims, o.Dimensions()); err != nil {
		return 0, err
	}
	return cmp.Compare(s.si, o.SI()), nil
}

func (s SI) String() string {
	return strconv.FormatFloat(s.si, 'g', -1, 64) + " " + s.dims.String()
}

// GoString formats s for %#v.
func (s SI) GoString() string {
	return fmt.Sprintf("scalar.SI{si: %g, dims: %q}", s.si, s.dims.String())
}
