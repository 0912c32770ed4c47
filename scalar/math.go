package scalar

import "github.com/hupe1980/unitgo/unit"

// Max returns the largest argument. On ties the earlier argument wins.
func Max[K unit.Quantity](first Rel[K], rest ...Rel[K]) Rel[K] {
	m := first
	for _, r := range rest {
		if r.si > m.si {
			m = r
		}
	}
	return m
}

// Min returns the smallest argument. On ties the earlier argument wins.
func Min[K unit.Quantity](first Rel[K], rest ...Rel[K]) Rel[K] {
	m := first
	for _, r := range rest {
		if r.si < m.si {
			m = r
		}
	}
	return m
}

// Sum adds all arguments; the result is displayed in first's unit.
func Sum[K unit.Quantity](first Rel[K], rest ...Rel[K]) Rel[K] {
	s := first.si
	for _, r := range rest {
		s += r.si
	}
	return Rel[K]{si: s, unit: first.unit}
}

// Interpolate returns zero + (one-zero)*ratio in zero's unit.
func Interpolate[K unit.Quantity](zero, one Rel[K], ratio float64) Rel[K] {
	return Rel[K]{si: zero.si + (one.si-zero.si)*ratio, unit: zero.unit}
}

// MaxAbs is Max for absolute quantities.
func MaxAbs[K unit.AbsQuantity](first Abs[K], rest ...Abs[K]) Abs[K] {
	m := first
	for _, a := range rest {
		if a.si > m.si {
			m = a
		}
	}
	return m
}

// MinAbs is Min for absolute quantities.
func MinAbs[K unit.AbsQuantity](first Abs[K], rest ...Abs[K]) Abs[K] {
	m := first
	for _, a := range rest {
		if a.si < m.si {
			m = a
		}
	}
	return m
}

// InterpolateAbs returns zero + (one-zero)*ratio in zero's unit.
func InterpolateAbs[K unit.AbsQuantity](zero, one Abs[K], ratio float64) Abs[K] {
	return Abs[K]{si: zero.si + (one.si-zero.si)*ratio, unit: zero.unit}
}
