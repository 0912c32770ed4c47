package unit

import (
	"fmt"
	"slices"

	"github.com/hupe1980/unitgo/dimension"
)

// Kind describes one named quantity kind and owns its units.
type Kind struct {
	name        string
	dims        dimension.Vector
	absolute    bool
	counterpart *Kind
	standard    *Definition
	units       []*Definition
	byAbbrev    map[string]*Definition
}

func newKind(name string, dims dimension.Vector) *Kind {
	return &Kind{
		name:     name,
		dims:     dims,
		byAbbrev: make(map[string]*Definition),
	}
}

// newAbsoluteKind creates the absolute counterpart of rel.
func newAbsoluteKind(name string, rel *Kind) *Kind {
	k := newKind(name, rel.dims)
	k.absolute = true
	k.counterpart = rel
	rel.counterpart = k
	return k
}

// Name returns the kind name, e.g. "Length".
func (k *Kind) Name() string { return k.name }

// Dimensions returns the kind's dimension vector.
func (k *Kind) Dimensions() dimension.Vector { return k.dims }

// IsAbsolute reports whether the kind measures positions on a scale.
func (k *Kind) IsAbsolute() bool { return k.absolute }

// Standard returns the standard unit.
func (k *Kind) Standard() *Definition { return k.standard }

// Units returns the units of the kind in registration order.
func (k *Kind) Units() []*Definition { return slices.Clone(k.units) }

// Absolute returns the absolute counterpart of a relative kind.
func (k *Kind) Absolute() (*Kind, error) {
	if k.absolute {
		return k, nil
	}
	if k.counterpart == nil {
		return nil, fmt.Errorf("%s: %w", k.name, ErrNoCounterpart)
	}
	return k.counterpart, nil
}

// Relative returns the relative counterpart of an absolute kind, or k itself.
func (k *Kind) Relative() *Kind {
	if k.absolute {
		return k.counterpart
	}
	return k
}

// FindByAbbreviation returns the unit of k that carries the abbreviation.
func (k *Kind) FindByAbbreviation(abbrev string) (*Definition, error) {
	if d, ok := k.byAbbrev[abbrev]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%s unit %q: %w", k.name, abbrev, ErrNotFound)
}

func (k *Kind) String() string { return k.name }

// unitSpec is one row of a unit table.
type unitSpec struct {
	name    string
	symbol  string
	scale   Scale
	abbrevs []string
}

// define registers a unit with k. The first unit with the identity scale
// becomes the standard unit.
func (k *Kind) define(us unitSpec) *Definition {
	d := &Definition{
		id:     us.symbol,
		name:   us.name,
		symbol: us.symbol,
		scale:  us.scale,
		kind:   k,
	}
	if len(us.abbrevs) > 0 {
		d.id = us.abbrevs[0]
	}
	d.abbreviations = appendUnique(nil, d.id)
	d.abbreviations = appendUnique(d.abbreviations, us.symbol)
	for _, a := range us.abbrevs {
		d.abbreviations = appendUnique(d.abbreviations, a)
	}
	for _, a := range d.abbreviations {
		if _, dup := k.byAbbrev[a]; dup {
			panic(fmt.Sprintf("unit: duplicate abbreviation %q in kind %s", a, k.name))
		}
		k.byAbbrev[a] = d
	}
	if k.standard == nil && us.scale.IsIdentity() {
		k.standard = d
	}
	k.units = append(k.units, d)
	return d
}

// defineAbsolute registers an absolute unit of k with its relative counterpart.
func (k *Kind) defineAbsolute(us unitSpec, relative *Definition) *Definition {
	d := k.define(us)
	d.relative = relative
	return d
}

func appendUnique(list []string, s string) []string {
	if s == "" || slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
