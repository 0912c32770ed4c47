// Package unitgo provides dimensionally-safe physical quantities for Go.
//
// Quantities carry their kind in the type system: a scalar.Length cannot be
// added to a scalar.Duration, and multiplying two lengths yields a value whose
// dimensions are checked against the requested result kind.
//
// # Quick Start
//
//	d := scalar.New(5, unit.Meter)
//	t := scalar.New(2, unit.Second)
//	v, _ := scalar.Div[unit.Speed](d, t) // 2.5 m/s
//
//	fmt.Println(d.Plus(scalar.New(3, unit.Meter))) // 8 m
//
// # Packages
//
//   - dimension: rational exponent vectors over the SI base dimensions
//   - unit: kinds, unit definitions and the registry
//   - scalar: Rel, Abs and generic SI quantities
//   - storage: dense and sparse value storage
//   - container: typed vectors and matrices with copy-on-write
//   - linalg: determinant, inverse and eigenvalues
//   - codec: wire records and JSON codecs
//   - metric: Prometheus metrics collector
//
// # Run-time Conversion
//
// When the unit is only known at run time, use a Converter:
//
//	c := unitgo.New(unitgo.WithLogLevel(slog.LevelDebug))
//	m, _ := c.Parse(ctx, "100 km")
//	mi, _ := c.Convert(ctx, m, "mi")
//	fmt.Println(mi) // about 62.137 mi
//
// Temperatures and other absolute quantities are read with ParseAbsolute:
//
//	t, _ := c.ParseAbsolute(ctx, "20 degC")
//	f, _ := c.Convert(ctx, t, "degF") // 68 °F
package unitgo
