package unit

import (
	"math"

	"github.com/hupe1980/unitgo/dimension"
)

// Kind descriptors. The order of allKinds decides which kind is primary for a
// dimension vector shared by several kinds.
var (
	dimensionlessKind        = newKind("Dimensionless", dimension.Dimensionless)
	angleKind                = newKind("Angle", dimension.Dimensionless)
	lengthKind               = newKind("Length", dimension.Length)
	areaKind                 = newKind("Area", dimension.New(2))
	volumeKind               = newKind("Volume", dimension.New(3))
	massKind                 = newKind("Mass", dimension.Mass)
	durationKind             = newKind("Duration", dimension.Time)
	speedKind                = newKind("Speed", dimension.New(1, 0, -1))
	accelerationKind         = newKind("Acceleration", dimension.New(1, 0, -2))
	forceKind                = newKind("Force", dimension.New(1, 1, -2))
	energyKind               = newKind("Energy", dimension.New(2, 1, -2))
	torqueKind               = newKind("Torque", dimension.New(2, 1, -2))
	powerKind                = newKind("Power", dimension.New(2, 1, -3))
	pressureKind             = newKind("Pressure", dimension.New(-1, 1, -2))
	frequencyKind            = newKind("Frequency", dimension.New(0, 0, -1))
	densityKind              = newKind("Density", dimension.New(-3, 1))
	flowVolumeKind           = newKind("FlowVolume", dimension.New(3, 0, -1))
	flowMassKind             = newKind("FlowMass", dimension.New(0, 1, -1))
	electricalCurrentKind    = newKind("ElectricalCurrent", dimension.Current)
	electricalChargeKind     = newKind("ElectricalCharge", dimension.New(0, 0, 1, 1))
	electricalPotentialKind  = newKind("ElectricalPotential", dimension.New(2, 1, -3, -1))
	electricalResistanceKind = newKind("ElectricalResistance", dimension.New(2, 1, -3, -2))
	temperatureKind          = newKind("Temperature", dimension.Temperature)
	amountOfSubstanceKind    = newKind("AmountOfSubstance", dimension.Amount)
	luminousIntensityKind    = newKind("LuminousIntensity", dimension.LuminousIntensity)
	moneyKind                = newKind("Money", dimension.Money)

	positionKind            = newAbsoluteKind("Position", lengthKind)
	timeKind                = newAbsoluteKind("Time", durationKind)
	absoluteTemperatureKind = newAbsoluteKind("AbsoluteTemperature", temperatureKind)
	directionKind           = newAbsoluteKind("Direction", angleKind)
)

var allKinds = []*Kind{
	dimensionlessKind, angleKind, lengthKind, areaKind, volumeKind, massKind, durationKind, speedKind,
	accelerationKind, forceKind, energyKind, torqueKind, powerKind, pressureKind, frequencyKind, densityKind,
	flowVolumeKind, flowMassKind, electricalCurrentKind, electricalChargeKind, electricalPotentialKind,
	electricalResistanceKind, temperatureKind, amountOfSubstanceKind, luminousIntensityKind, moneyKind,
	positionKind, timeKind, absoluteTemperatureKind, directionKind,
}

// Marker types of the relative kinds.
type (
	Dimensionless        struct{}
	Angle                struct{}
	Length               struct{}
	Area                 struct{}
	Volume               struct{}
	Mass                 struct{}
	Duration             struct{}
	Speed                struct{}
	Acceleration         struct{}
	Force                struct{}
	Energy               struct{}
	Torque               struct{}
	Power                struct{}
	Pressure             struct{}
	Frequency            struct{}
	Density              struct{}
	FlowVolume           struct{}
	FlowMass             struct{}
	ElectricalCurrent    struct{}
	ElectricalCharge     struct{}
	ElectricalPotential  struct{}
	ElectricalResistance struct{}
	Temperature          struct{}
	AmountOfSubstance    struct{}
	LuminousIntensity    struct{}
	Money                struct{}
)

func (Dimensionless) Descriptor() *Kind        { return dimensionlessKind }
func (Angle) Descriptor() *Kind                { return angleKind }
func (Length) Descriptor() *Kind               { return lengthKind }
func (Area) Descriptor() *Kind                 { return areaKind }
func (Volume) Descriptor() *Kind               { return volumeKind }
func (Mass) Descriptor() *Kind                 { return massKind }
func (Duration) Descriptor() *Kind             { return durationKind }
func (Speed) Descriptor() *Kind                { return speedKind }
func (Acceleration) Descriptor() *Kind         { return accelerationKind }
func (Force) Descriptor() *Kind                { return forceKind }
func (Energy) Descriptor() *Kind               { return energyKind }
func (Torque) Descriptor() *Kind               { return torqueKind }
func (Power) Descriptor() *Kind                { return powerKind }
func (Pressure) Descriptor() *Kind             { return pressureKind }
func (Frequency) Descriptor() *Kind            { return frequencyKind }
func (Density) Descriptor() *Kind              { return densityKind }
func (FlowVolume) Descriptor() *Kind           { return flowVolumeKind }
func (FlowMass) Descriptor() *Kind             { return flowMassKind }
func (ElectricalCurrent) Descriptor() *Kind    { return electricalCurrentKind }
func (ElectricalCharge) Descriptor() *Kind     { return electricalChargeKind }
func (ElectricalPotential) Descriptor() *Kind  { return electricalPotentialKind }
func (ElectricalResistance) Descriptor() *Kind { return electricalResistanceKind }
func (Temperature) Descriptor() *Kind          { return temperatureKind }
func (AmountOfSubstance) Descriptor() *Kind    { return amountOfSubstanceKind }
func (LuminousIntensity) Descriptor() *Kind    { return luminousIntensityKind }
func (Money) Descriptor() *Kind                { return moneyKind }

func (Angle) hasAbsolute()       {}
func (Length) hasAbsolute()      {}
func (Duration) hasAbsolute()    {}
func (Temperature) hasAbsolute() {}

// Dimensionless and Angle.
var (
	One     = rel[Dimensionless](dimensionlessKind.define(unitSpec{name: "one", scale: Identity, abbrevs: []string{"1"}}))
	Percent = rel[Dimensionless](dimensionlessKind.define(unitSpec{name: "percent", symbol: "%", scale: Linear(0.01)}))
	PPM     = rel[Dimensionless](dimensionlessKind.define(unitSpec{name: "parts per million", symbol: "ppm", scale: Linear(1e-6)}))

	Radian     = rel[Angle](angleKind.define(unitSpec{name: "radian", symbol: "rad", scale: Identity}))
	Degree     = rel[Angle](angleKind.define(unitSpec{name: "degree", symbol: "°", scale: Linear(math.Pi / 180), abbrevs: []string{"deg"}}))
	Gradian    = rel[Angle](angleKind.define(unitSpec{name: "gradian", symbol: "grad", scale: Linear(math.Pi / 200)}))
	Arcminute  = rel[Angle](angleKind.define(unitSpec{name: "arcminute", symbol: "'", scale: Linear(math.Pi / 10800), abbrevs: []string{"arcmin"}}))
	Arcsecond  = rel[Angle](angleKind.define(unitSpec{name: "arcsecond", symbol: "\"", scale: Linear(math.Pi / 648000), abbrevs: []string{"arcsec"}}))
	Revolution = rel[Angle](angleKind.define(unitSpec{name: "revolution", symbol: "rev", scale: Linear(2 * math.Pi)}))

	AbsRadian = abs[Angle](directionKind.defineAbsolute(unitSpec{name: "radian", symbol: "rad", scale: Identity}, Radian.def))
	AbsDegree = abs[Angle](directionKind.defineAbsolute(unitSpec{name: "degree", symbol: "°", scale: Linear(math.Pi / 180), abbrevs: []string{"deg"}}, Degree.def))
)

// Length, Position, Area, Volume.
var (
	meterSpec = unitSpec{name: "meter", symbol: "m", scale: Identity}

	Meter            = rel[Length](lengthKind.define(meterSpec))
	Kilometer        = rel[Length](lengthKind.definePrefixed(Kilo, meterSpec))
	Centimeter       = rel[Length](lengthKind.definePrefixed(Centi, meterSpec))
	Millimeter       = rel[Length](lengthKind.definePrefixed(Milli, meterSpec))
	Inch             = rel[Length](lengthKind.define(unitSpec{name: "inch", symbol: "in", scale: Linear(0.0254)}))
	Foot             = rel[Length](lengthKind.define(unitSpec{name: "foot", symbol: "ft", scale: Linear(0.3048)}))
	Yard             = rel[Length](lengthKind.define(unitSpec{name: "yard", symbol: "yd", scale: Linear(0.9144)}))
	Mile             = rel[Length](lengthKind.define(unitSpec{name: "mile", symbol: "mi", scale: Linear(1609.344)}))
	NauticalMile     = rel[Length](lengthKind.define(unitSpec{name: "nautical mile", symbol: "NM", scale: Linear(1852)}))
	AstronomicalUnit = rel[Length](lengthKind.define(unitSpec{name: "astronomical unit", symbol: "AU", scale: Linear(149597870700)}))
	LightYear        = rel[Length](lengthKind.define(unitSpec{name: "light year", symbol: "ly", scale: Linear(9460730472580800)}))

	AbsMeter      = abs[Length](positionKind.defineAbsolute(meterSpec, Meter.def))
	AbsKilometer  = abs[Length](positionKind.defineAbsolute(unitSpec{name: "kilometer", symbol: "km", scale: Linear(1000)}, Kilometer.def))
	AbsCentimeter = abs[Length](positionKind.defineAbsolute(unitSpec{name: "centimeter", symbol: "cm", scale: Linear(0.01)}, Centimeter.def))
	AbsMillimeter = abs[Length](positionKind.defineAbsolute(unitSpec{name: "millimeter", symbol: "mm", scale: Linear(0.001)}, Millimeter.def))
	AbsFoot       = abs[Length](positionKind.defineAbsolute(unitSpec{name: "foot", symbol: "ft", scale: Linear(0.3048)}, Foot.def))
	AbsMile       = abs[Length](positionKind.defineAbsolute(unitSpec{name: "mile", symbol: "mi", scale: Linear(1609.344)}, Mile.def))

	SquareMeter      = rel[Area](areaKind.define(unitSpec{name: "square meter", symbol: "m²", scale: Identity, abbrevs: []string{"m2", "m^2"}}))
	SquareKilometer  = rel[Area](areaKind.define(unitSpec{name: "square kilometer", symbol: "km²", scale: Linear(1e6), abbrevs: []string{"km2", "km^2"}}))
	SquareCentimeter = rel[Area](areaKind.define(unitSpec{name: "square centimeter", symbol: "cm²", scale: Linear(1e-4), abbrevs: []string{"cm2", "cm^2"}}))
	SquareMillimeter = rel[Area](areaKind.define(unitSpec{name: "square millimeter", symbol: "mm²", scale: Linear(1e-6), abbrevs: []string{"mm2", "mm^2"}}))
	SquareFoot       = rel[Area](areaKind.define(unitSpec{name: "square foot", symbol: "ft²", scale: Linear(0.09290304), abbrevs: []string{"ft2", "ft^2"}}))
	SquareInch       = rel[Area](areaKind.define(unitSpec{name: "square inch", symbol: "in²", scale: Linear(0.00064516), abbrevs: []string{"in2", "in^2"}}))
	Are              = rel[Area](areaKind.define(unitSpec{name: "are", symbol: "a", scale: Linear(100)}))
	Hectare          = rel[Area](areaKind.define(unitSpec{name: "hectare", symbol: "ha", scale: Linear(1e4)}))
	Acre             = rel[Area](areaKind.define(unitSpec{name: "acre", symbol: "ac", scale: Linear(4046.8564224)}))

	CubicMeter      = rel[Volume](volumeKind.define(unitSpec{name: "cubic meter", symbol: "m³", scale: Identity, abbrevs: []string{"m3", "m^3"}}))
	CubicCentimeter = rel[Volume](volumeKind.define(unitSpec{name: "cubic centimeter", symbol: "cm³", scale: Linear(1e-6), abbrevs: []string{"cm3", "cm^3", "cc"}}))
	CubicFoot       = rel[Volume](volumeKind.define(unitSpec{name: "cubic foot", symbol: "ft³", scale: Linear(0.028316846592), abbrevs: []string{"ft3", "ft^3"}}))
	Liter           = rel[Volume](volumeKind.define(unitSpec{name: "liter", symbol: "L", scale: Linear(1e-3), abbrevs: []string{"L", "l"}}))
	Milliliter      = rel[Volume](volumeKind.define(unitSpec{name: "milliliter", symbol: "mL", scale: Linear(1e-6), abbrevs: []string{"mL", "ml"}}))
	Gallon          = rel[Volume](volumeKind.define(unitSpec{name: "gallon (US)", symbol: "gal", scale: Linear(3.785411784e-3)}))
)

// Mass, Duration, Time.
var (
	gramSpec   = unitSpec{name: "gram", symbol: "g", scale: Linear(1e-3)}
	secondSpec = unitSpec{name: "second", symbol: "s", scale: Identity}

	Kilogram = rel[Mass](massKind.define(unitSpec{name: "kilogram", symbol: "kg", scale: Identity}))
	Gram     = rel[Mass](massKind.define(gramSpec))
	Tonne    = rel[Mass](massKind.define(unitSpec{name: "tonne", symbol: "t", scale: Linear(1000)}))
	Pound    = rel[Mass](massKind.define(unitSpec{name: "pound", symbol: "lb", scale: Linear(0.45359237)}))
	Ounce    = rel[Mass](massKind.define(unitSpec{name: "ounce", symbol: "oz", scale: Linear(0.028349523125)}))

	Second      = rel[Duration](durationKind.define(secondSpec))
	Millisecond = rel[Duration](durationKind.definePrefixed(Milli, secondSpec))
	Minute      = rel[Duration](durationKind.define(unitSpec{name: "minute", symbol: "min", scale: Linear(60)}))
	Hour        = rel[Duration](durationKind.define(unitSpec{name: "hour", symbol: "h", scale: Linear(3600), abbrevs: []string{"h", "hr"}}))
	Day         = rel[Duration](durationKind.define(unitSpec{name: "day", symbol: "d", scale: Linear(86400), abbrevs: []string{"d", "day"}}))
	Week        = rel[Duration](durationKind.define(unitSpec{name: "week", symbol: "wk", scale: Linear(604800)}))

	AbsSecond = abs[Duration](timeKind.defineAbsolute(secondSpec, Second.def))
	AbsMinute = abs[Duration](timeKind.defineAbsolute(unitSpec{name: "minute", symbol: "min", scale: Linear(60)}, Minute.def))
	AbsHour   = abs[Duration](timeKind.defineAbsolute(unitSpec{name: "hour", symbol: "h", scale: Linear(3600), abbrevs: []string{"h", "hr"}}, Hour.def))
	AbsDay    = abs[Duration](timeKind.defineAbsolute(unitSpec{name: "day", symbol: "d", scale: Linear(86400), abbrevs: []string{"d", "day"}}, Day.def))
)

// Kinematics and mechanics.
var (
	MeterPerSecond    = rel[Speed](speedKind.define(unitSpec{name: "meter per second", symbol: "m/s", scale: Identity}))
	KilometerPerHour  = rel[Speed](speedKind.define(unitSpec{name: "kilometer per hour", symbol: "km/h", scale: Linear(1 / 3.6), abbrevs: []string{"km/h", "kph"}}))
	MilePerHour       = rel[Speed](speedKind.define(unitSpec{name: "mile per hour", symbol: "mi/h", scale: Linear(0.44704), abbrevs: []string{"mi/h", "mph"}}))
	Knot              = rel[Speed](speedKind.define(unitSpec{name: "knot", symbol: "kt", scale: Linear(1852.0 / 3600.0)}))
	FootPerSecond     = rel[Speed](speedKind.define(unitSpec{name: "foot per second", symbol: "ft/s", scale: Linear(0.3048)}))
	MeterPerSecond2   = rel[Acceleration](accelerationKind.define(unitSpec{name: "meter per second squared", symbol: "m/s²", scale: Identity, abbrevs: []string{"m/s2", "m/s^2"}}))
	StandardGravity   = rel[Acceleration](accelerationKind.define(unitSpec{name: "standard gravity", symbol: "g0", scale: Linear(9.80665)}))
	Gal               = rel[Acceleration](accelerationKind.define(unitSpec{name: "gal", symbol: "Gal", scale: Linear(0.01)}))
	Newton            = rel[Force](forceKind.define(unitSpec{name: "newton", symbol: "N", scale: Identity}))
	Dyne              = rel[Force](forceKind.define(unitSpec{name: "dyne", symbol: "dyn", scale: Linear(1e-5)}))
	KilogramForce     = rel[Force](forceKind.define(unitSpec{name: "kilogram-force", symbol: "kgf", scale: Linear(9.80665)}))
	PoundForce        = rel[Force](forceKind.define(unitSpec{name: "pound-force", symbol: "lbf", scale: Linear(4.4482216152605)}))
	Joule             = rel[Energy](energyKind.define(unitSpec{name: "joule", symbol: "J", scale: Identity}))
	WattHour          = rel[Energy](energyKind.define(unitSpec{name: "watt hour", symbol: "Wh", scale: Linear(3600)}))
	KilowattHour      = rel[Energy](energyKind.define(unitSpec{name: "kilowatt hour", symbol: "kWh", scale: Linear(3.6e6)}))
	Calorie           = rel[Energy](energyKind.define(unitSpec{name: "calorie", symbol: "cal", scale: Linear(4.184)}))
	Kilocalorie       = rel[Energy](energyKind.define(unitSpec{name: "kilocalorie", symbol: "kcal", scale: Linear(4184)}))
	Electronvolt      = rel[Energy](energyKind.define(unitSpec{name: "electronvolt", symbol: "eV", scale: Linear(1.602176634e-19)}))
	NewtonMeter       = rel[Torque](torqueKind.define(unitSpec{name: "newton meter", symbol: "N.m", scale: Identity, abbrevs: []string{"N.m", "Nm"}}))
	PoundFoot         = rel[Torque](torqueKind.define(unitSpec{name: "pound-foot", symbol: "lbf.ft", scale: Linear(1.3558179483314004)}))
	Watt              = rel[Power](powerKind.define(unitSpec{name: "watt", symbol: "W", scale: Identity}))
	Horsepower        = rel[Power](powerKind.define(unitSpec{name: "horsepower", symbol: "hp", scale: Linear(745.69987158227022)}))
	Pascal            = rel[Pressure](pressureKind.define(unitSpec{name: "pascal", symbol: "Pa", scale: Identity}))
	Bar               = rel[Pressure](pressureKind.define(unitSpec{name: "bar", symbol: "bar", scale: Linear(1e5)}))
	Millibar          = rel[Pressure](pressureKind.define(unitSpec{name: "millibar", symbol: "mbar", scale: Linear(100)}))
	Atmosphere        = rel[Pressure](pressureKind.define(unitSpec{name: "standard atmosphere", symbol: "atm", scale: Linear(101325)}))
	PSI               = rel[Pressure](pressureKind.define(unitSpec{name: "pound per square inch", symbol: "psi", scale: Linear(6894.757293168361)}))
	MillimeterMercury = rel[Pressure](pressureKind.define(unitSpec{name: "millimeter of mercury", symbol: "mmHg", scale: Linear(133.322387415)}))
	Hertz             = rel[Frequency](frequencyKind.define(unitSpec{name: "hertz", symbol: "Hz", scale: Identity, abbrevs: []string{"Hz", "1/s"}}))
	RPM               = rel[Frequency](frequencyKind.define(unitSpec{name: "revolutions per minute", symbol: "rpm", scale: Linear(1.0 / 60.0)}))
	KilogramPerCubic  = rel[Density](densityKind.define(unitSpec{name: "kilogram per cubic meter", symbol: "kg/m³", scale: Identity, abbrevs: []string{"kg/m3", "kg/m^3"}}))
	GramPerCubicCm    = rel[Density](densityKind.define(unitSpec{name: "gram per cubic centimeter", symbol: "g/cm³", scale: Linear(1000), abbrevs: []string{"g/cm3", "g/cm^3"}}))
	CubicMeterPerSec  = rel[FlowVolume](flowVolumeKind.define(unitSpec{name: "cubic meter per second", symbol: "m³/s", scale: Identity, abbrevs: []string{"m3/s", "m^3/s"}}))
	LiterPerSecond    = rel[FlowVolume](flowVolumeKind.define(unitSpec{name: "liter per second", symbol: "L/s", scale: Linear(1e-3), abbrevs: []string{"L/s", "l/s"}}))
	LiterPerMinute    = rel[FlowVolume](flowVolumeKind.define(unitSpec{name: "liter per minute", symbol: "L/min", scale: Linear(1e-3 / 60), abbrevs: []string{"L/min", "l/min"}}))
	KilogramPerSecond = rel[FlowMass](flowMassKind.define(unitSpec{name: "kilogram per second", symbol: "kg/s", scale: Identity}))
	KilogramPerHour   = rel[FlowMass](flowMassKind.define(unitSpec{name: "kilogram per hour", symbol: "kg/h", scale: Linear(1.0 / 3600)}))
)

// Electromagnetism.
var (
	ampereSpec = unitSpec{name: "ampere", symbol: "A", scale: Identity}
	voltSpec   = unitSpec{name: "volt", symbol: "V", scale: Identity}
	ohmSpec    = unitSpec{name: "ohm", symbol: "Ω", scale: Identity, abbrevs: []string{"ohm"}}

	Ampere       = rel[ElectricalCurrent](electricalCurrentKind.define(ampereSpec))
	Milliampere  = rel[ElectricalCurrent](electricalCurrentKind.definePrefixed(Milli, ampereSpec))
	Coulomb      = rel[ElectricalCharge](electricalChargeKind.define(unitSpec{name: "coulomb", symbol: "C", scale: Identity}))
	AmpereHour   = rel[ElectricalCharge](electricalChargeKind.define(unitSpec{name: "ampere hour", symbol: "Ah", scale: Linear(3600)}))
	Volt         = rel[ElectricalPotential](electricalPotentialKind.define(voltSpec))
	Millivolt    = rel[ElectricalPotential](electricalPotentialKind.definePrefixed(Milli, voltSpec))
	Kilovolt     = rel[ElectricalPotential](electricalPotentialKind.definePrefixed(Kilo, voltSpec))
	Ohm          = rel[ElectricalResistance](electricalResistanceKind.define(ohmSpec))
	Kiloohm      = rel[ElectricalResistance](electricalResistanceKind.definePrefixed(Kilo, ohmSpec))
	Megaohm      = rel[ElectricalResistance](electricalResistanceKind.definePrefixed(Mega, ohmSpec))
	Mole         = rel[AmountOfSubstance](amountOfSubstanceKind.define(unitSpec{name: "mole", symbol: "mol", scale: Identity}))
	Candela      = rel[LuminousIntensity](luminousIntensityKind.define(unitSpec{name: "candela", symbol: "cd", scale: Identity}))
	MoneyUnit    = rel[Money](moneyKind.define(unitSpec{name: "money", symbol: "¤", scale: Identity, abbrevs: []string{"money", "¤"}}))

	Kiloampere      = rel[ElectricalCurrent](electricalCurrentKind.definePrefixed(Kilo, ampereSpec))
	MilliampereHour = rel[ElectricalCharge](electricalChargeKind.define(unitSpec{name: "milliampere hour", symbol: "mAh", scale: Linear(3.6)}))
)

// Temperature and AbsoluteTemperature. Relative units are ratio scales; the
// offsets of Celsius and Fahrenheit live on the absolute units only.
var (
	Kelvin     = rel[Temperature](temperatureKind.define(unitSpec{name: "kelvin", symbol: "K", scale: Identity}))
	Celsius    = rel[Temperature](temperatureKind.define(unitSpec{name: "degree Celsius", symbol: "°C", scale: Identity, abbrevs: []string{"degC", "°C"}}))
	Fahrenheit = rel[Temperature](temperatureKind.define(unitSpec{name: "degree Fahrenheit", symbol: "°F", scale: Linear(5.0 / 9.0), abbrevs: []string{"degF", "°F"}}))
	Rankine    = rel[Temperature](temperatureKind.define(unitSpec{name: "degree Rankine", symbol: "°R", scale: Linear(5.0 / 9.0), abbrevs: []string{"degR", "°R"}}))

	AbsKelvin     = abs[Temperature](absoluteTemperatureKind.defineAbsolute(unitSpec{name: "kelvin", symbol: "K", scale: Identity}, Kelvin.def))
	AbsCelsius    = abs[Temperature](absoluteTemperatureKind.defineAbsolute(unitSpec{name: "degree Celsius", symbol: "°C", scale: OffsetLinear(1, 273.15), abbrevs: []string{"degC", "°C"}}, Celsius.def))
	AbsFahrenheit = abs[Temperature](absoluteTemperatureKind.defineAbsolute(unitSpec{name: "degree Fahrenheit", symbol: "°F", scale: OffsetLinear(5.0/9.0, 459.67*5.0/9.0), abbrevs: []string{"degF", "°F"}}, Fahrenheit.def))
	AbsRankine    = abs[Temperature](absoluteTemperatureKind.defineAbsolute(unitSpec{name: "degree Rankine", symbol: "°R", scale: Linear(5.0 / 9.0), abbrevs: []string{"degR", "°R"}}, Rankine.def))
)

func init() {
	lengthKind.definePrefixes(meterSpec, Micro, Nano, Deci)
	massKind.definePrefixes(gramSpec, Milli, Micro)
	durationKind.definePrefixes(secondSpec, Micro, Nano)
	electricalPotentialKind.definePrefixes(voltSpec, Micro, Mega)
	electricalResistanceKind.definePrefixes(ohmSpec, Milli, Giga)
	for _, p := range []Prefix{Kilo, Mega, Giga, Tera} {
		energyKind.definePrefixed(p, unitSpec{name: "joule", symbol: "J", scale: Identity})
		powerKind.definePrefixed(p, unitSpec{name: "watt", symbol: "W", scale: Identity})
		frequencyKind.definePrefixed(p, unitSpec{name: "hertz", symbol: "Hz", scale: Identity})
	}
	for _, p := range []Prefix{Hecto, Kilo, Mega} {
		pressureKind.definePrefixed(p, unitSpec{name: "pascal", symbol: "Pa", scale: Identity})
	}
	amountOfSubstanceKind.definePrefixes(unitSpec{name: "mole", symbol: "mol", scale: Identity}, Milli, Kilo)
}
