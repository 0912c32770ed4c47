package unitgo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/scalar"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

// Measurement is a value in a unit chosen at run time. Typed code should use
// the scalar package instead.
type Measurement struct {
	Value float64
	Unit  *unit.Definition
}

// SI returns the value in the standard unit of its kind.
func (m Measurement) SI() float64 { return m.Unit.ToStandard(m.Value) }

// Kind returns the kind of the unit.
func (m Measurement) Kind() *unit.Kind { return m.Unit.Kind() }

// String formats m as "<value> <symbol>".
func (m Measurement) String() string {
	return strconv.FormatFloat(m.Value, 'g', -1, 64) + " " + m.Unit.Symbol()
}

func (m Measurement) record() codec.ScalarRecord {
	return codec.ScalarRecord{
		Value:    m.Value,
		Unit:     m.Unit.ID(),
		Kind:     m.Kind().Name(),
		Absolute: m.Unit.IsAbsolute(),
	}
}

// Converter parses and converts measurements whose kind is inferred from the
// unit abbreviation. It is safe for concurrent use.
type Converter struct {
	codec   codec.Codec
	storage storage.Type
	metrics MetricsCollector
	logger  *Logger
}

// New returns a Converter configured by optFns.
func New(optFns ...Option) *Converter {
	o := applyOptions(optFns)
	return &Converter{
		codec:   o.codec,
		storage: o.storageType,
		metrics: o.metricsCollector,
		logger:  o.logger,
	}
}

// Parse reads "<value> <unit>" as a relative quantity, e.g. "100 m" or
// "5 degC" (a temperature difference). The first kind registered for the
// abbreviation wins.
func (c *Converter) Parse(ctx context.Context, s string) (Measurement, error) {
	return c.parse(ctx, s, unit.FindByAbbreviation)
}

// ParseAbsolute reads "<value> <unit>" as an absolute quantity, e.g.
// "20 degC" (a temperature reading) or "12 h" (a point in time).
func (c *Converter) ParseAbsolute(ctx context.Context, s string) (Measurement, error) {
	return c.parse(ctx, s, findAbsolute)
}

func (c *Converter) parse(ctx context.Context, s string, find func(string) (*unit.Definition, error)) (m Measurement, err error) {
	start := time.Now()
	defer func() {
		kind := ""
		if err == nil {
			kind = m.Kind().Name()
		}
		c.metrics.RecordParse(kind, time.Since(start), err)
		c.logger.LogParse(ctx, s, m, err)
	}()

	v, abbrev, err := scalar.SplitValueUnit(s)
	if err != nil {
		return Measurement{}, translateError(s, err)
	}
	if abbrev == "" {
		return Measurement{}, translateError(s, fmt.Errorf("missing unit: %w", scalar.ErrSyntax))
	}
	def, err := find(abbrev)
	if err != nil {
		return Measurement{}, translateError(s, err)
	}
	return Measurement{Value: v, Unit: def}, nil
}

// Convert expresses m in the unit abbreviated by to. The target unit is
// looked up in m's kind first, then among all kinds of the same
// relative/absolute flavour; its dimensions must match m's.
// A Measurement without a unit fails with an *ErrConversion wrapping
// ErrMissingUnit.
func (c *Converter) Convert(ctx context.Context, m Measurement, to string) (out Measurement, err error) {
	start := time.Now()
	kind, from := "", ""
	if m.Unit != nil {
		kind, from = m.Kind().Name(), m.Unit.ID()
	}
	defer func() {
		c.metrics.RecordConvert(kind, 1, time.Since(start), err)
		c.logger.WithKind(kind).LogConvert(ctx, from, to, err)
	}()

	if m.Unit == nil {
		return Measurement{}, &ErrConversion{To: to, cause: ErrMissingUnit}
	}
	target, err := c.resolve(m.Unit, to)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: target.FromStandard(m.SI()), Unit: target}, nil
}

// ConvertAll converts values from one unit to another through the storage
// representation selected by WithStorageType.
func (c *Converter) ConvertAll(ctx context.Context, values []float64, from, to string) (out []float64, err error) {
	start := time.Now()
	kind := ""
	defer func() {
		c.metrics.RecordConvert(kind, len(values), time.Since(start), err)
		c.logger.LogConvert(ctx, from, to, err)
	}()

	src, err := unit.FindByAbbreviation(from)
	if err != nil {
		return nil, translateError(from, err)
	}
	kind = src.Kind().Name()
	target, err := c.resolve(src, to)
	if err != nil {
		return nil, err
	}
	d, err := storage.NewVector(values, src, c.storage)
	if err != nil {
		return nil, err
	}
	out = d.Values()
	for i, si := range out {
		out[i] = target.FromStandard(si)
	}
	return out, nil
}

// Marshal encodes m as a codec.ScalarRecord with the configured codec.
func (c *Converter) Marshal(m Measurement) ([]byte, error) {
	if m.Unit == nil {
		return nil, ErrMissingUnit
	}
	return c.codec.Marshal(m.record())
}

func (c *Converter) resolve(from *unit.Definition, to string) (*unit.Definition, error) {
	if def, err := from.Kind().FindByAbbreviation(to); err == nil {
		return def, nil
	}
	find := unit.FindByAbbreviation
	if from.IsAbsolute() {
		find = findAbsolute
	}
	def, err := find(to)
	if err != nil {
		return nil, translateError(to, err)
	}
	if def.Dimensions() != from.Dimensions() {
		return nil, conversionError(from, def)
	}
	return def, nil
}

func findAbsolute(abbrev string) (*unit.Definition, error) {
	for _, k := range unit.Kinds() {
		if !k.IsAbsolute() {
			continue
		}
		if def, err := k.FindByAbbreviation(abbrev); err == nil {
			return def, nil
		}
	}
	return nil, fmt.Errorf("absolute unit %q: %w", abbrev, unit.ErrNotFound)
}
