// Package dimension provides the dimension vector used to tag every quantity.
//
// A Vector holds one rational exponent per base quantity: the seven SI base
// quantities (length, mass, time, electrical current, thermodynamic temperature,
// amount of substance, luminous intensity) plus a money pseudo-dimension.
//
// Vectors are plain comparable values. Two vectors are equal iff every exponent
// matches exactly, so a Vector can be used as a map key:
//
//	speed := dimension.Sub(dimension.Length, dimension.Time)
//	fmt.Println(speed) // m/s
//
// The zero Vector denotes a dimensionless quantity.
package dimension
