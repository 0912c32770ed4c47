package unit

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hupe1980/unitgo/dimension"
)

type registry struct {
	byDims   map[dimension.Vector]*Kind
	byName   map[string]*Kind
	byAbbrev map[string]*Definition
}

var (
	regOnce sync.Once
	reg     *registry
)

func getRegistry() *registry {
	regOnce.Do(func() {
		r := &registry{
			byDims:   make(map[dimension.Vector]*Kind),
			byName:   make(map[string]*Kind),
			byAbbrev: make(map[string]*Definition),
		}
		for _, k := range allKinds {
			r.byName[k.name] = k
			if k.absolute {
				continue
			}
			if _, ok := r.byDims[k.dims]; !ok {
				r.byDims[k.dims] = k
			}
			for _, d := range k.units {
				for _, a := range d.abbreviations {
					if _, ok := r.byAbbrev[a]; !ok {
						r.byAbbrev[a] = d
					}
				}
			}
		}
		reg = r
	})
	return reg
}

// Kinds returns every registered kind, relative kinds first.
func Kinds() []*Kind { return slices.Clone(allKinds) }

// KindByName returns the kind with the given name, e.g. "Speed".
func KindByName(name string) (*Kind, error) {
	if k, ok := getRegistry().byName[name]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("kind %q: %w", name, ErrNotFound)
}

// FindByDimensions returns the primary relative kind for dims.
func FindByDimensions(dims dimension.Vector) (*Kind, error) {
	if k, ok := getRegistry().byDims[dims]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("dimensions %s: %w", dims, ErrNoSuchQuantity)
}

// FindByAbbreviation resolves an abbreviation across all relative kinds.
// When several kinds share an abbreviation the earliest registered kind wins.
func FindByAbbreviation(abbrev string) (*Definition, error) {
	if d, ok := getRegistry().byAbbrev[abbrev]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unit %q: %w", abbrev, ErrNotFound)
}
