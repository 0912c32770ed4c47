package scalar

import (
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
)

// Quantity is a relative quantity of any kind: a Rel[K] or an SI.
type Quantity interface {
	// SI returns the value in standard units.
	SI() float64
	// Dimensions returns the dimension vector.
	Dimensions() dimension.Vector
	String() string

	relative()
}

var (
	_ Quantity = Rel[unit.Length]{}
	_ Quantity = SI{}
)

func generic(q Quantity) SI {
	return SI{si: q.SI(), dims: q.Dimensions()}
}
