package scalar

import (
	"sync"

	"github.com/hupe1980/unitgo/unit"
)

type promoter func(si float64) Quantity

var (
	promotersOnce sync.Once
	promoters     map[*unit.Kind]promoter
)

func register[K unit.Quantity](m map[*unit.Kind]promoter) {
	m[unit.KindOf[K]()] = func(si float64) Quantity { return FromSI[K](si) }
}

func promoterTable() map[*unit.Kind]promoter {
	promotersOnce.Do(func() {
		m := make(map[*unit.Kind]promoter)
		register[unit.Dimensionless](m)
		register[unit.Angle](m)
		register[unit.Length](m)
		register[unit.Area](m)
		register[unit.Volume](m)
		register[unit.Mass](m)
		register[unit.Duration](m)
		register[unit.Speed](m)
		register[unit.Acceleration](m)
		register[unit.Force](m)
		register[unit.Energy](m)
		register[unit.Torque](m)
		register[unit.Power](m)
		register[unit.Pressure](m)
		register[unit.Frequency](m)
		register[unit.Density](m)
		register[unit.FlowVolume](m)
		register[unit.FlowMass](m)
		register[unit.ElectricalCurrent](m)
		register[unit.ElectricalCharge](m)
		register[unit.ElectricalPotential](m)
		register[unit.ElectricalResistance](m)
		register[unit.Temperature](m)
		register[unit.AmountOfSubstance](m)
		register[unit.LuminousIntensity](m)
		register[unit.Money](m)
		promoters = m
	})
	return promoters
}

// Promote returns s as a Rel of the primary kind registered for its
// dimensions, displayed in that kind's standard unit. Without such a kind s
// is returned unchanged.
func (s SI) Promote() Quantity {
	k, err := unit.FindByDimensions(s.dims)
	if err != nil {
		return s
	}
	if p, ok := promoterTable()[k]; ok {
		return p(s.si)
	}
	return s
}
