package unit

import (
	"slices"

	"github.com/hupe1980/unitgo/dimension"
)

// Definition is an immutable unit of measurement.
type Definition struct {
	id            string
	name          string
	symbol        string
	abbreviations []string
	scale         Scale
	kind          *Kind

	// relative is the unit that measures differences of this absolute unit;
	// nil for relative units.
	relative *Definition
}

// ID returns the unique (per kind) textual abbreviation of the unit.
func (d *Definition) ID() string { return d.id }

// Name returns the long name, e.g. "kilometer".
func (d *Definition) Name() string { return d.name }

// Symbol returns the display abbreviation, e.g. "km" or "°C".
func (d *Definition) Symbol() string { return d.symbol }

// Abbreviations returns all abbreviations that resolve to this unit.
func (d *Definition) Abbreviations() []string { return slices.Clone(d.abbreviations) }

// Scale returns the conversion to the standard unit.
func (d *Definition) Scale() Scale { return d.scale }

// Kind returns the kind the unit belongs to.
func (d *Definition) Kind() *Kind { return d.kind }

// Dimensions returns the dimension vector of the unit's kind.
func (d *Definition) Dimensions() dimension.Vector { return d.kind.dims }

// Standard returns the standard unit of the unit's kind.
func (d *Definition) Standard() *Definition { return d.kind.standard }

// IsStandard reports whether d is its kind's standard unit.
func (d *Definition) IsStandard() bool { return d.kind.standard == d }

// IsAbsolute reports whether d belongs to an absolute kind.
func (d *Definition) IsAbsolute() bool { return d.kind.absolute }

// Relative returns the relative counterpart of an absolute unit, or d itself
// for relative units.
func (d *Definition) Relative() *Definition {
	if d.relative == nil {
		return d
	}
	return d.relative
}

// Absolute returns the absolute unit whose relative counterpart is d.
func (d *Definition) Absolute() (*Definition, error) {
	if d.kind.absolute {
		return d, nil
	}
	abs := d.kind.counterpart
	if abs == nil {
		return nil, ErrNoCounterpart
	}
	for _, u := range abs.units {
		if u.relative == d {
			return u, nil
		}
	}
	return abs.standard, nil
}

// ToStandard converts v expressed in d to the standard unit.
func (d *Definition) ToStandard(v float64) float64 { return d.scale.ToStandard(v) }

// FromStandard converts a standard-unit value to d.
func (d *Definition) FromStandard(v float64) float64 { return d.scale.FromStandard(v) }

func (d *Definition) String() string { return d.symbol }
