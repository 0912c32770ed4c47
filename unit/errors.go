package unit

import "errors"

var (
	// ErrNotFound is returned when an abbreviation matches no unit.
	ErrNotFound = errors.New("unit not found")

	// ErrNoSuchQuantity is returned when no named kind is registered for a
	// dimension vector or name.
	ErrNoSuchQuantity = errors.New("no such quantity")

	// ErrNoCounterpart is returned when an absolute/relative counterpart is
	// requested for a kind that has none.
	ErrNoCounterpart = errors.New("kind has no absolute/relative counterpart")

	// ErrWrongKind is returned when a definition is bound to a typed handle of
	// another kind.
	ErrWrongKind = errors.New("unit belongs to another kind")
)
