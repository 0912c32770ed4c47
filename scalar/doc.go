// Package scalar implements single quantities with a unit.
//
// Rel[K] is a relative quantity (a difference or magnitude) of kind K, Abs[K]
// a position on the absolute scale whose differences are Rel[K]. SI is a
// relative quantity typed only by its dimension vector; it is what Times and
// Divide return when the result dimension has no named kind.
//
// Every quantity stores its value in the standard unit of its kind and keeps
// a separate display unit. Arithmetic and comparisons use the standard value
// only; the display unit matters for String, In and the rounding functions.
//
//	l := scalar.New(5, unit.Meter)
//	d := scalar.New(2, unit.Second)
//	v, err := scalar.Div[unit.Speed](l, d) // 2.5 m/s
package scalar
