// Package unit defines units of measurement and the named quantity kinds they
// belong to.
//
// # Model
//
// A Definition is one unit: a display symbol, a set of abbreviations and a
// linear Scale to the standard (SI-coherent) unit of its Kind. A Kind groups
// all units of one physical quantity (Length, Speed, ...) and owns the
// DimensionVector shared by those units. Absolute kinds (Position, Time,
// AbsoluteTemperature, Direction) are paired with the relative kind that
// measures differences between them.
//
// Every Kind is also exposed as a zero-size marker type (Length, Speed, ...)
// that satisfies Quantity. Markers are used as type parameters by the scalar
// and container packages, and typed unit handles (Unit[K], AbsUnit[K]) keep a
// unit bound to its kind at compile time:
//
//	var u unit.Unit[unit.Length] = unit.Kilometer
//	fmt.Println(u.ToStandard(1.5)) // 1500
//
// # Registry
//
// All kinds and units are built once during package initialization and never
// mutated afterwards. Lookups go through FindByAbbreviation, FindByDimensions
// and KindByName; the lookup indexes are built on first use.
package unit
