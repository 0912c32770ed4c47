package scalar

import (
	"fmt"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
)

// MarshalJSON encodes r as a codec.ScalarRecord in its display unit.
func (r Rel[K]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(codec.ScalarRecord{
		Value: r.InUnit(),
		Unit:  r.unit.Definition().ID(),
		Kind:  unit.KindOf[K]().Name(),
	})
}

// UnmarshalJSON decodes a codec.ScalarRecord whose unit belongs to K.
func (r *Rel[K]) UnmarshalJSON(data []byte) error {
	var rec codec.ScalarRecord
	if err := codec.Default.Unmarshal(data, &rec); err != nil {
		return err
	}
	u, err := unit.Lookup[K](rec.Unit)
	if err != nil {
		return fmt.Errorf("decode %s: %w", unit.KindOf[K](), err)
	}
	*r = New(rec.Value, u)
	return nil
}

// MarshalJSON encodes a as a codec.ScalarRecord in its display unit.
func (a Abs[K]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(codec.ScalarRecord{
		Value:    a.InUnit(),
		Unit:     a.unit.Definition().ID(),
		Kind:     a.unit.Definition().Kind().Name(),
		Absolute: true,
	})
}

// UnmarshalJSON decodes a codec.ScalarRecord whose unit belongs to the
// absolute counterpart of K.
func (a *Abs[K]) UnmarshalJSON(data []byte) error {
	var rec codec.ScalarRecord
	if err := codec.Default.Unmarshal(data, &rec); err != nil {
		return err
	}
	u, err := unit.LookupAbs[K](rec.Unit)
	if err != nil {
		return fmt.Errorf("decode absolute %s: %w", unit.KindOf[K](), err)
	}
	*a = NewAbs(rec.Value, u)
	return nil
}

// MarshalJSON encodes s with its dimensions in SI notation.
func (s SI) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(codec.ScalarRecord{Value: s.si, Dimensions: s.dims.String()})
}

// UnmarshalJSON decodes a codec.ScalarRecord carrying dimensions.
func (s *SI) UnmarshalJSON(data []byte) error {
	var rec codec.ScalarRecord
	if err := codec.Default.Unmarshal(data, &rec); err != nil {
		return err
	}
	dims, err := dimension.Parse(rec.Dimensions)
	if err != nil {
		return err
	}
	*s = SI{si: rec.Value, dims: dims}
	return nil
}
