package unit

import "fmt"

// Quantity is implemented by the zero-size marker types of the relative kinds.
// It is the type-parameter constraint of scalar and container types.
type Quantity interface {
	Descriptor() *Kind
}

// AbsQuantity is implemented by the markers of the relative kinds that have an
// absolute counterpart: Angle, Length, Duration and Temperature.
type AbsQuantity interface {
	Quantity
	hasAbsolute()
}

// KindOf returns the descriptor of marker K.
func KindOf[K Quantity]() *Kind {
	var k K
	return k.Descriptor()
}

// Unit is a unit handle bound to kind K at compile time. The zero value
// denotes K's standard unit.
type Unit[K Quantity] struct {
	def *Definition
}

// Definition returns the untyped unit.
func (u Unit[K]) Definition() *Definition {
	if u.def == nil {
		return KindOf[K]().standard
	}
	return u.def
}

// Symbol returns the display abbreviation.
func (u Unit[K]) Symbol() string { return u.Definition().symbol }

// ToStandard converts v in u to the standard unit.
func (u Unit[K]) ToStandard(v float64) float64 { return u.Definition().ToStandard(v) }

// FromStandard converts a standard-unit value to u.
func (u Unit[K]) FromStandard(v float64) float64 { return u.Definition().FromStandard(v) }

// Equal reports whether both handles denote the same unit.
func (u Unit[K]) Equal(o Unit[K]) bool { return u.Definition() == o.Definition() }

func (u Unit[K]) String() string { return u.Symbol() }

// AbsUnit is a unit of the absolute counterpart of relative kind K.
// The zero value denotes the absolute kind's standard unit.
type AbsUnit[K AbsQuantity] struct {
	def *Definition
}

// Definition returns the untyped unit.
func (u AbsUnit[K]) Definition() *Definition {
	if u.def == nil {
		return KindOf[K]().counterpart.standard
	}
	return u.def
}

// Symbol returns the display abbreviation.
func (u AbsUnit[K]) Symbol() string { return u.Definition().symbol }

// ToStandard converts v in u to the standard unit.
func (u AbsUnit[K]) ToStandard(v float64) float64 { return u.Definition().ToStandard(v) }

// FromStandard converts a standard-unit value to u.
func (u AbsUnit[K]) FromStandard(v float64) float64 { return u.Definition().FromStandard(v) }

// Relative returns the unit measuring differences of u.
func (u AbsUnit[K]) Relative() Unit[K] { return Unit[K]{def: u.Definition().relative} }

// Absolute returns the absolute unit paired with u, or the absolute kind's
// standard unit when u has no twin.
func Absolute[K AbsQuantity](u Unit[K]) AbsUnit[K] {
	def, _ := u.Definition().Absolute()
	return AbsUnit[K]{def: def}
}

// Equal reports whether both handles denote the same unit.
func (u AbsUnit[K]) Equal(o AbsUnit[K]) bool { return u.Definition() == o.Definition() }

func (u AbsUnit[K]) String() string { return u.Symbol() }

// Standard returns the standard unit of K.
func Standard[K Quantity]() Unit[K] {
	return Unit[K]{def: KindOf[K]().standard}
}

// Typed binds def to K. It fails with ErrWrongKind when def belongs to
// another kind.
func Typed[K Quantity](def *Definition) (Unit[K], error) {
	k := KindOf[K]()
	if def == nil || def.kind != k {
		return Unit[K]{}, fmt.Errorf("%v is not a %s unit: %w", def, k.name, ErrWrongKind)
	}
	return Unit[K]{def: def}, nil
}

// TypedAbs binds def to the absolute counterpart of K.
func TypedAbs[K AbsQuantity](def *Definition) (AbsUnit[K], error) {
	k := KindOf[K]()
	if def == nil || def.kind != k.counterpart {
		return AbsUnit[K]{}, fmt.Errorf("%v is not a %s unit: %w", def, k.counterpart.name, ErrWrongKind)
	}
	return AbsUnit[K]{def: def}, nil
}

// Lookup resolves an abbreviation within kind K.
func Lookup[K Quantity](abbrev string) (Unit[K], error) {
	def, err := KindOf[K]().FindByAbbreviation(abbrev)
	if err != nil {
		return Unit[K]{}, err
	}
	return Unit[K]{def: def}, nil
}

// LookupAbs resolves an abbreviation within the absolute counterpart of K.
func LookupAbs[K AbsQuantity](abbrev string) (AbsUnit[K], error) {
	def, err := KindOf[K]().counterpart.FindByAbbreviation(abbrev)
	if err != nil {
		return AbsUnit[K]{}, err
	}
	return AbsUnit[K]{def: def}, nil
}

func rel[K Quantity](def *Definition) Unit[K]    { return Unit[K]{def: def} }
func abs[K AbsQuantity](def *Definition) AbsUnit[K] { return AbsUnit[K]{def: def} }
