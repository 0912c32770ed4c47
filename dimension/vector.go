package dimension

import (
	"fmt"
	"strings"
	"unicode"
)

// Base identifies one slot of a Vector.
type Base int

// Base quantities, in storage order.
const (
	BaseLength Base = iota
	BaseMass
	BaseTime
	BaseCurrent
	BaseTemperature
	BaseAmount
	BaseLuminousIntensity
	BaseMoney

	// NumBase is the number of slots in a Vector.
	NumBase
)

var baseSymbols = [NumBase]string{"m", "kg", "s", "A", "K", "mol", "cd", "¤"}

// Symbol returns the SI symbol of the base quantity.
func (b Base) Symbol() string {
	if b < 0 || b >= NumBase {
		return "?"
	}
	return baseSymbols[b]
}

func (b Base) String() string {
	switch b {
	case BaseLength:
		return "length"
	case BaseMass:
		return "mass"
	case BaseTime:
		return "time"
	case BaseCurrent:
		return "current"
	case BaseTemperature:
		return "temperature"
	case BaseAmount:
		return "amount"
	case BaseLuminousIntensity:
		return "luminous intensity"
	case BaseMoney:
		return "money"
	default:
		return fmt.Sprintf("base(%d)", int(b))
	}
}

// Vector is an immutable tuple of exponents over the base quantities.
type Vector [NumBase]Exponent

// Dimensionless is the zero vector.
var Dimensionless = Vector{}

// Single-base vectors.
var (
	Length            = Of(BaseLength, 1)
	Mass              = Of(BaseMass, 1)
	Time              = Of(BaseTime, 1)
	Current           = Of(BaseCurrent, 1)
	Temperature       = Of(BaseTemperature, 1)
	Amount            = Of(BaseAmount, 1)
	LuminousIntensity = Of(BaseLuminousIntensity, 1)
	Money             = Of(BaseMoney, 1)
)

// Of returns the vector with integer exponent n on base b and 0 elsewhere.
func Of(b Base, n int) Vector {
	var v Vector
	v[b] = Int(n)
	return v
}

// New builds a vector from integer exponents in Base order. Missing trailing
// exponents are 0; extra values panic.
func New(exps ...int) Vector {
	if len(exps) > int(NumBase) {
		panic("dimension: too many exponents")
	}
	var v Vector
	for i, n := range exps {
		v[i] = Int(n)
	}
	return v
}

// Add returns a+b, the vector of a product.
func Add(a, b Vector) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i].Add(b[i])
	}
	return r
}

// Sub returns a-b, the vector of a quotient.
func Sub(a, b Vector) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i].Sub(b[i])
	}
	return r
}

// Neg returns -a, the vector of a reciprocal.
func Neg(a Vector) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i].Neg()
	}
	return r
}

// Scale returns k*a, the vector of a power.
func Scale(a Vector, k Exponent) Vector {
	var r Vector
	for i := range r {
		r[i] = a[i].Mul(k)
	}
	return r
}

// Equal reports whether all exponents match exactly.
func Equal(a, b Vector) bool {
	return a == b
}

// Exp returns the exponent of base b.
func (v Vector) Exp(b Base) Exponent {
	return v[b]
}

// IsDimensionless reports whether v is the zero vector.
func (v Vector) IsDimensionless() bool {
	return v == Dimensionless
}

// IsFractional reports whether any exponent is not an integer.
func (v Vector) IsFractional() bool {
	for _, e := range v {
		if !e.IsInt() {
			return true
		}
	}
	return false
}

// String formats v in SI notation, e.g. "kg.m2/s3". Dimensionless is "1".
func (v Vector) String() string {
	var num, den []string
	for _, b := range symbolOrder {
		e := v[b]
		switch {
		case e.IsZero():
			continue
		case e.num > 0:
			num = append(num, term(b, e))
		default:
			den = append(den, term(b, e.Neg()))
		}
	}
	if len(num) == 0 && len(den) == 0 {
		return "1"
	}
	var sb strings.Builder
	if len(num) == 0 {
		sb.WriteString("1")
	} else {
		sb.WriteString(strings.Join(num, "."))
	}
	if len(den) > 0 {
		sb.WriteString("/")
		sb.WriteString(strings.Join(den, "."))
	}
	return sb.String()
}

// symbolOrder is the conventional print order (mass before length, as in kg.m2/s2).
var symbolOrder = []Base{
	BaseMass, BaseLength, BaseTime, BaseCurrent, BaseTemperature, BaseAmount, BaseLuminousIntensity, BaseMoney,
}

func term(b Base, e Exponent) string {
	switch {
	case e == Int(1):
		return b.Symbol()
	case e.IsInt():
		return b.Symbol() + e.String()
	default:
		return b.Symbol() + "(" + e.String() + ")"
	}
}

// Parse reads SI notation as produced by String. Terms may be separated by "."
// or written back to back ("kgm2/s3"); at most one "/" is allowed.
func Parse(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	parts := splitDivision(s)
	if len(parts) > 2 {
		return Vector{}, fmt.Errorf("dimension: %q contains more than one division sign", s)
	}
	num, err := parseTerms(parts[0])
	if err != nil {
		return Vector{}, err
	}
	if len(parts) == 1 {
		return num, nil
	}
	den, err := parseTerms(parts[1])
	if err != nil {
		return Vector{}, err
	}
	return Sub(num, den), nil
}

// splitDivision splits s at every "/" that is not inside an exponent.
func splitDivision(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '/':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// parseSymbols lists symbols longest first so that "mol" wins over "m".
var parseSymbols = []struct {
	sym  string
	base Base
}{
	{"money", BaseMoney},
	{"mol", BaseAmount},
	{"kg", BaseMass},
	{"cd", BaseLuminousIntensity},
	{"¤", BaseMoney},
	{"m", BaseLength},
	{"s", BaseTime},
	{"A", BaseCurrent},
	{"K", BaseTemperature},
}

func parseTerms(s string) (Vector, error) {
	var v Vector
	rest := strings.TrimSpace(s)
	if rest == "" || rest == "1" {
		return v, nil
	}
	for rest != "" {
		rest = strings.TrimLeft(rest, ". ")
		if rest == "" {
			break
		}
		matched := false
		for _, ps := range parseSymbols {
			if !strings.HasPrefix(rest, ps.sym) {
				continue
			}
			rest = rest[len(ps.sym):]
			expText, tail := splitExponent(rest)
			rest = tail
			e := Int(1)
			if expText != "" {
				var err error
				if e, err = parseExponent(expText); err != nil {
					return Vector{}, err
				}
			}
			v[ps.base] = v[ps.base].Add(e)
			matched = true
			break
		}
		if !matched {
			return Vector{}, fmt.Errorf("dimension: unknown symbol at %q in %q", rest, s)
		}
	}
	return v, nil
}

// splitExponent splits a leading exponent ("-2", "3", "(1/2)") from s.
func splitExponent(s string) (string, string) {
	if strings.HasPrefix(s, "(") {
		if i := strings.IndexByte(s, ')'); i > 0 {
			return s[:i+1], s[i+1:]
		}
		return s, ""
	}
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i == 1 && s[0] == '-' {
		// a bare minus sign is not an exponent
		return s, ""
	}
	return s[:i], s[i:]
}
