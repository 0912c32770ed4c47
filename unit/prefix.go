package unit

// Prefix is an SI prefix used to derive scaled units.
type Prefix struct {
	Name    string
	Symbol  string
	Textual string
	Factor  float64
}

// SI prefixes.
var (
	Nano  = Prefix{Name: "nano", Symbol: "n", Textual: "n", Factor: 1e-9}
	Micro = Prefix{Name: "micro", Symbol: "µ", Textual: "u", Factor: 1e-6}
	Milli = Prefix{Name: "milli", Symbol: "m", Textual: "m", Factor: 1e-3}
	Centi = Prefix{Name: "centi", Symbol: "c", Textual: "c", Factor: 1e-2}
	Deci  = Prefix{Name: "deci", Symbol: "d", Textual: "d", Factor: 1e-1}
	Hecto = Prefix{Name: "hecto", Symbol: "h", Textual: "h", Factor: 1e2}
	Kilo  = Prefix{Name: "kilo", Symbol: "k", Textual: "k", Factor: 1e3}
	Mega  = Prefix{Name: "mega", Symbol: "M", Textual: "M", Factor: 1e6}
	Giga  = Prefix{Name: "giga", Symbol: "G", Textual: "G", Factor: 1e9}
	Tera  = Prefix{Name: "tera", Symbol: "T", Textual: "T", Factor: 1e12}
)

// definePrefixed registers base scaled by p, e.g. Kilo + meter = kilometer.
func (k *Kind) definePrefixed(p Prefix, base unitSpec) *Definition {
	us := unitSpec{
		name:   p.Name + base.name,
		symbol: p.Symbol + base.symbol,
		scale:  Linear(p.Factor * base.scale.Factor),
	}
	if p.Textual != p.Symbol {
		us.abbrevs = []string{p.Textual + base.symbol, p.Symbol + base.symbol}
	}
	for _, a := range base.abbrevs {
		if a != base.symbol {
			us.abbrevs = append(us.abbrevs, p.Textual+a)
		}
	}
	return k.define(us)
}

// definePrefixes registers base with every prefix in ps that is not yet
// registered (explicit table rows win).
func (k *Kind) definePrefixes(base unitSpec, ps ...Prefix) {
	for _, p := range ps {
		if _, exists := k.byAbbrev[p.Textual+base.symbol]; exists {
			continue
		}
		if _, exists := k.byAbbrev[p.Symbol+base.symbol]; exists {
			continue
		}
		k.definePrefixed(p, base)
	}
}
