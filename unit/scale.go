package unit

import "fmt"

// Scale converts values of a unit to and from its kind's standard unit:
//
//	standard = value*Factor + Offset
type Scale struct {
	Factor float64
	Offset float64
}

// Identity is the scale of every standard unit.
var Identity = Scale{Factor: 1}

// Linear returns a ratio scale without offset.
func Linear(factor float64) Scale {
	return Scale{Factor: factor}
}

// OffsetLinear returns an interval scale. Only absolute units use offsets.
func OffsetLinear(factor, offset float64) Scale {
	return Scale{Factor: factor, Offset: offset}
}

// ToStandard converts v from this scale to the standard unit.
func (s Scale) ToStandard(v float64) float64 {
	return v*s.Factor + s.Offset
}

// FromStandard converts a standard-unit value v to this scale.
func (s Scale) FromStandard(v float64) float64 {
	return (v - s.Offset) / s.Factor
}

// IsIdentity reports whether the scale is factor 1 without offset.
func (s Scale) IsIdentity() bool {
	return s.Factor == 1 && s.Offset == 0
}

func (s Scale) String() string {
	if s.Offset == 0 {
		return fmt.Sprintf("x%g", s.Factor)
	}
	return fmt.Sprintf("x%g%+g", s.Factor, s.Offset)
}
