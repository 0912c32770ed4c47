package dimension

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/unitgo/internal/conv"
)

// Exponent is a reduced fraction. The zero value is 0.
//
// Denominators are kept positive; a zero den field is read as 1 so that the
// zero value needs no constructor.
type Exponent struct {
	num int32
	den int32
}

// Int returns the integer exponent n.
func Int(n int) Exponent {
	if n == 0 {
		return Exponent{}
	}
	return Exponent{num: int32(n), den: 1}
}

// Frac returns the reduced fraction num/den. It panics when den is zero.
func Frac(num, den int) Exponent {
	if den == 0 {
		panic("dimension: zero denominator")
	}
	return reduce(int64(num), int64(den))
}

func reduce(num, den int64) Exponent {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Exponent{}
	}
	g := gcd(abs64(num), den)
	return Exponent{num: int32(num / g), den: int32(den / g)}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Num returns the numerator.
func (e Exponent) Num() int { return int(e.num) }

// Den returns the (positive) denominator.
func (e Exponent) Den() int {
	if e.den == 0 {
		return 1
	}
	return int(e.den)
}

// IsZero reports whether the exponent is 0.
func (e Exponent) IsZero() bool { return e.num == 0 }

// IsInt reports whether the exponent has denominator 1.
func (e Exponent) IsInt() bool { return e.Den() == 1 }

// Add returns e+o.
func (e Exponent) Add(o Exponent) Exponent {
	n := int64(e.num)*int64(o.Den()) + int64(o.num)*int64(e.Den())
	return reduce(n, int64(e.Den())*int64(o.Den()))
}

// Sub returns e-o.
func (e Exponent) Sub(o Exponent) Exponent {
	return e.Add(o.Neg())
}

// Neg returns -e.
func (e Exponent) Neg() Exponent {
	return Exponent{num: -e.num, den: e.den}
}

// Mul returns e*o.
func (e Exponent) Mul(o Exponent) Exponent {
	return reduce(int64(e.num)*int64(o.num), int64(e.Den())*int64(o.Den()))
}

// Float returns the exponent as a float64.
func (e Exponent) Float() float64 {
	return float64(e.num) / float64(e.Den())
}

// String formats the exponent as "n" or "n/d".
func (e Exponent) String() string {
	if e.IsInt() {
		return strconv.Itoa(int(e.num))
	}
	return fmt.Sprintf("%d/%d", e.num, e.Den())
}

// parseExponent parses "2", "-1" or "(1/2)" / "(-3/2)".
func parseExponent(s string) (Exponent, error) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[1:len(s)-1], "/")
		if len(parts) != 2 {
			return Exponent{}, fmt.Errorf("dimension: invalid fractional exponent %q", s)
		}
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return Exponent{}, fmt.Errorf("dimension: invalid exponent %q: %w", s, err)
		}
		d, err := strconv.Atoi(parts[1])
		if err != nil || d == 0 {
			return Exponent{}, fmt.Errorf("dimension: invalid exponent %q", s)
		}
		if err := checkRange(s, n, d); err != nil {
			return Exponent{}, err
		}
		return Frac(n, d), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Exponent{}, fmt.Errorf("dimension: invalid exponent %q: %w", s, err)
	}
	if err := checkRange(s, n); err != nil {
		return Exponent{}, err
	}
	return Int(n), nil
}

func checkRange(s string, vs ...int) error {
	for _, v := range vs {
		if _, err := conv.IntToInt32(v); err != nil {
			return fmt.Errorf("dimension: exponent %q out of range: %w", s, err)
		}
	}
	return nil
}
