// Package conv provides checked integer conversions.
//
// Storage addresses cells by uint32 row-major positions and dimension
// exponents are int32 fractions; these helpers reject values that do not fit
// instead of silently truncating them.
package conv
