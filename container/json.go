package container

import (
	"fmt"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

func record(kind *unit.Kind, d storage.Data, u scaled, id string) codec.ArrayRecord {
	return codec.ArrayRecord{
		Kind:    kind.Name(),
		Unit:    id,
		Storage: d.Type().String(),
		Rows:    d.Rows(),
		Cols:    d.Cols(),
		Values:  valuesIn(d, u),
	}
}

// decodeRecord reads a codec.ArrayRecord of kind, resolving its unit with
// lookup. Nothing is returned unless the whole record is valid.
func decodeRecord[U scaled](data []byte, kind *unit.Kind, lookup func(string) (U, error)) (storage.Data, U, error) {
	var (
		rec  codec.ArrayRecord
		zero U
	)
	if err := codec.Default.Unmarshal(data, &rec); err != nil {
		return nil, zero, err
	}
	if rec.Kind != "" && rec.Kind != kind.Name() {
		return nil, zero, fmt.Errorf("decode %s: record holds %s: %w", kind, rec.Kind, unit.ErrNotFound)
	}
	u, err := lookup(rec.Unit)
	if err != nil {
		return nil, zero, fmt.Errorf("decode %s: %w", kind, err)
	}
	t := storage.TypeDense
	if rec.Storage != "" {
		if t, err = storage.ParseType(rec.Storage); err != nil {
			return nil, zero, err
		}
	}
	si := make([]float64, len(rec.Values))
	for i, v := range rec.Values {
		si[i] = u.ToStandard(v)
	}
	d, err := storage.FromSI(si, rec.Rows, rec.Cols, t)
	if err != nil {
		return nil, zero, fmt.Errorf("decode %s: %w", kind, err)
	}
	return d, u, nil
}

func (b *base[K]) record() codec.ArrayRecord {
	return record(unit.KindOf[K](), b.data, b.unit, b.unit.Definition().ID())
}

func decodeBase[K unit.Quantity](data []byte, vector bool) (base[K], error) {
	d, u, err := decodeRecord(data, unit.KindOf[K](), unit.Lookup[K])
	if err != nil {
		return base[K]{}, err
	}
	if vector {
		if err := checkCols(d); err != nil {
			return base[K]{}, err
		}
	}
	return base[K]{data: d, unit: u}, nil
}

func (b *absBase[K]) record() codec.ArrayRecord {
	return record(b.Kind(), b.data, b.unit, b.unit.Definition().ID())
}

func decodeAbsBase[K unit.AbsQuantity](data []byte, vector bool) (absBase[K], error) {
	kind, _ := unit.KindOf[K]().Absolute()
	d, u, err := decodeRecord(data, kind, unit.LookupAbs[K])
	if err != nil {
		return absBase[K]{}, err
	}
	if vector {
		if err := checkCols(d); err != nil {
			return absBase[K]{}, err
		}
	}
	return absBase[K]{data: d, unit: u}, nil
}

// MarshalJSON encodes v as a codec.ArrayRecord in its display unit.
func (v *Vector[K]) MarshalJSON() ([]byte, error) { return codec.Default.Marshal(v.record()) }

// UnmarshalJSON decodes a single-column codec.ArrayRecord. v is left
// unchanged on error.
func (v *Vector[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeBase[K](data, true)
	if err != nil {
		return err
	}
	v.base = b
	return nil
}

// MarshalJSON encodes v as a codec.ArrayRecord in its display unit.
func (v *MutableVector[K]) MarshalJSON() ([]byte, error) { return codec.Default.Marshal(v.record()) }

// UnmarshalJSON decodes a single-column codec.ArrayRecord. v is left
// unchanged on error.
func (v *MutableVector[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeBase[K](data, true)
	if err != nil {
		return err
	}
	v.base = b
	return nil
}

// MarshalJSON encodes m as a codec.ArrayRecord in its display unit.
func (m *Matrix[K]) MarshalJSON() ([]byte, error) { return codec.Default.Marshal(m.record()) }

// UnmarshalJSON decodes a codec.ArrayRecord.
func (m *Matrix[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeBase[K](data, false)
	if err != nil {
		return err
	}
	m.base = b
	return nil
}

// MarshalJSON encodes m as a codec.ArrayRecord in its display unit.
func (m *MutableMatrix[K]) MarshalJSON() ([]byte, error) { return codec.Default.Marshal(m.record()) }

// UnmarshalJSON decodes a codec.ArrayRecord.
func (m *MutableMatrix[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeBase[K](data, false)
	if err != nil {
		return err
	}
	m.base = b
	return nil
}

// MarshalJSON encodes v as a codec.ArrayRecord of the absolute kind.
func (v *AbsVector[K]) MarshalJSON() ([]byte, error) { return codec.Default.Marshal(v.record()) }

// UnmarshalJSON decodes a single-column codec.ArrayRecord of the absolute
// kind. v is left unchanged on error.
func (v *AbsVector[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeAbsBase[K](data, true)
	if err != nil {
		return err
	}
	v.absBase = b
	return nil
}

// MarshalJSON encodes v as a codec.ArrayRecord of the absolute kind.
func (v *MutableAbsVector[K]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(v.record())
}

// UnmarshalJSON decodes a single-column codec.ArrayRecord of the absolute
// kind. v is left unchanged on error.
func (v *MutableAbsVector[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeAbsBase[K](data, true)
	if err != nil {
		return err
	}
	v.absBase = b
	return nil
}

// MarshalJSON encodes m as a codec.ArrayRecord of the absolute kind.
func (m *AbsMatrix[K]) MarshalJSON() ([]byte, error) { return codec.Default.Marshal(m.record()) }

// UnmarshalJSON decodes a codec.ArrayRecord of the absolute kind.
func (m *AbsMatrix[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeAbsBase[K](data, false)
	if err != nil {
		return err
	}
	m.absBase = b
	return nil
}

// MarshalJSON encodes m as a codec.ArrayRecord of the absolute kind.
func (m *MutableAbsMatrix[K]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(m.record())
}

// UnmarshalJSON decodes a codec.ArrayRecord of the absolute kind.
func (m *MutableAbsMatrix[K]) UnmarshalJSON(data []byte) error {
	b, err := decodeAbsBase[K](data, false)
	if err != nil {
		return err
	}
	m.absBase = b
	return nil
}
