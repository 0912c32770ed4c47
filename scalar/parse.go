package scalar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/unitgo/unit"
)

// SplitValueUnit splits "<value> <unit>" into the number and the unit
// abbreviation. The space is optional ("100m"); the unit may be empty.
func SplitValueUnit(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", ErrEmptyInput
	}
	for i := len(s); i > 0; i-- {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err != nil {
			continue
		}
		return v, strings.TrimSpace(s[i:]), nil
	}
	return 0, "", fmt.Errorf("%q: no leading number: %w", s, ErrSyntax)
}

// Parse reads "<value> <unit>" where unit is an abbreviation of kind K,
// e.g. Parse[unit.Length]("100 m").
func Parse[K unit.Quantity](s string) (Rel[K], error) {
	v, abbrev, err := splitWithUnit(s)
	if err != nil {
		return Rel[K]{}, err
	}
	u, err := unit.Lookup[K](abbrev)
	if err != nil {
		return Rel[K]{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return New(v, u), nil
}

// ParseAbs reads "<value> <unit>" where unit belongs to the absolute
// counterpart of K, e.g. ParseAbs[unit.Temperature]("20 degC").
func ParseAbs[K unit.AbsQuantity](s string) (Abs[K], error) {
	v, abbrev, err := splitWithUnit(s)
	if err != nil {
		return Abs[K]{}, err
	}
	u, err := unit.LookupAbs[K](abbrev)
	if err != nil {
		return Abs[K]{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return NewAbs(v, u), nil
}

func splitWithUnit(s string) (float64, string, error) {
	v, abbrev, err := SplitValueUnit(s)
	if err != nil {
		return 0, "", err
	}
	if abbrev == "" {
		return 0, "", fmt.Errorf("%q: missing unit: %w", s, ErrSyntax)
	}
	return v, abbrev, nil
}
