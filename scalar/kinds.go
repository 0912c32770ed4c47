package scalar

import "github.com/hupe1980/unitgo/unit"

// Named relative quantities.
type (
	Dimensionless        = Rel[unit.Dimensionless]
	Angle                = Rel[unit.Angle]
	Length               = Rel[unit.Length]
	Area                 = Rel[unit.Area]
	Volume               = Rel[unit.Volume]
	Mass                 = Rel[unit.Mass]
	Duration             = Rel[unit.Duration]
	Speed                = Rel[unit.Speed]
	Acceleration         = Rel[unit.Acceleration]
	Force                = Rel[unit.Force]
	Energy               = Rel[unit.Energy]
	Torque               = Rel[unit.Torque]
	Power                = Rel[unit.Power]
	Pressure             = Rel[unit.Pressure]
	Frequency            = Rel[unit.Frequency]
	Density              = Rel[unit.Density]
	FlowVolume           = Rel[unit.FlowVolume]
	FlowMass             = Rel[unit.FlowMass]
	ElectricalCurrent    = Rel[unit.ElectricalCurrent]
	ElectricalCharge     = Rel[unit.ElectricalCharge]
	ElectricalPotential  = Rel[unit.ElectricalPotential]
	ElectricalResistance = Rel[unit.ElectricalResistance]
	Temperature          = Rel[unit.Temperature]
	AmountOfSubstance    = Rel[unit.AmountOfSubstance]
	LuminousIntensity    = Rel[unit.LuminousIntensity]
	Money                = Rel[unit.Money]
)

// Named absolute quantities.
type (
	Position            = Abs[unit.Length]
	Time                = Abs[unit.Duration]
	AbsoluteTemperature = Abs[unit.Temperature]
	Direction           = Abs[unit.Angle]
)
