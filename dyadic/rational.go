package dyadic

import (
	"fmt"
	"regexp"
	"strconv"
)

// Rational represents n / 2^k exactly. The zero value is the number 0.
type Rational struct {
	num int64
	exp uint8
}

// Zero is the additive identity.
var Zero = Rational{}

// normalize reduces num/2^exp to lowest terms: it shifts factors of two
// out of num until num is odd or exp reaches zero, and canonicalizes
// zero to (0,0).
func normalize(num int64, exp uint8) Rational {
	if num == 0 {
		return Rational{}
	}
	for exp > 0 && num%2 == 0 {
		num /= 2
		exp--
	}
	return Rational{num: num, exp: exp}
}

// NewInteger returns the dyadic rational equal to the integer n.
func NewInteger(n int64) Rational { return Rational{num: n, exp: 0} }

// New returns numerator / 2^exponent, auto-reducing to lowest terms: an
// unreduced pair is simplified rather than rejected.
func New(numerator int64, exponent uint8) Rational {
	return normalize(numerator, exponent)
}

// FromFraction returns numerator/denominator as a Rational. denominator
// must be nonzero and, after removing its sign, a power of two;
// otherwise FromFraction returns ErrInvalidRational (this is the only
// way construction of a Rational can fail: a zero or non-dyadic
// denominator).
func FromFraction(numerator, denominator int64) (Rational, error) {
	if denominator == 0 {
		return Rational{}, ErrInvalidRational
	}
	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}
	exp := uint8(0)
	for denominator > 1 {
		if denominator%2 != 0 {
			return Rational{}, ErrInvalidRational
		}
		denominator /= 2
		exp++
	}
	return normalize(numerator, exp), nil
}

// Numerator returns the reduced numerator.
func (a Rational) Numerator() int64 { return a.num }

// DenominatorExponent returns k such that the reduced denominator is 2^k.
func (a Rational) DenominatorExponent() uint8 { return a.exp }

// Denominator returns 2^k, the reduced denominator.
func (a Rational) Denominator() int64 { return int64(1) << a.exp }

// align rescales a and b to a shared denominator exponent and returns
// their numerators at that exponent together with the exponent itself.
func align(a, b Rational) (an, bn int64, exp uint8) {
	switch {
	case a.exp == b.exp:
		return a.num, b.num, a.exp
	case a.exp > b.exp:
		diff := a.exp - b.exp
		return a.num, b.num << diff, a.exp
	default:
		diff := b.exp - a.exp
		return a.num << diff, b.num, b.exp
	}
}

// Add returns a+b.
func Add(a, b Rational) Rational {
	an, bn, exp := align(a, b)
	return normalize(an+bn, exp)
}

// Sub returns a-b.
func Sub(a, b Rational) Rational {
	an, bn, exp := align(a, b)
	return normalize(an-bn, exp)
}

// Neg returns -a.
func Neg(a Rational) Rational { return Rational{num: -a.num, exp: a.exp} }

// MulInt returns a*n for an integer n.
func MulInt(a Rational, n int64) Rational { return normalize(a.num*n, a.exp) }

// DivPow2 returns a / 2^k.
func DivPow2(a Rational, k uint8) Rational { return normalize(a.num, a.exp+k) }

// timesPow2 returns a * 2^k exactly, for k possibly negative.
func (a Rational) timesPow2(k int) Rational {
	newExp := int(a.exp) - k
	if newExp >= 0 {
		return normalize(a.num, uint8(newExp))
	}
	return normalize(a.num<<uint(-newExp), 0)
}

// Compare returns -1, 0, or 1 as a<b, a==b, a>b.
func Compare(a, b Rational) int {
	an, bn, _ := align(a, b)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// Less reports whether a<b.
func Less(a, b Rational) bool { return Compare(a, b) < 0 }

// Equal reports whether a==b.
func Equal(a, b Rational) bool { return a.num == b.num && a.exp == b.exp }

// IsInteger reports whether a has denominator 1.
func (a Rational) IsInteger() bool { return a.exp == 0 }

// Floor returns the greatest integer <= a.
func (a Rational) Floor() int64 {
	if a.exp == 0 {
		return a.num
	}
	d := int64(1) << a.exp
	q := a.num / d
	if a.num%d != 0 && a.num < 0 {
		q--
	}
	return q
}

// Mean returns (a+b)/2.
func Mean(a, b Rational) Rational { return DivPow2(Add(a, b), 1) }

// SimplestBetween returns the simplest dyadic rational strictly between
// a and b (order-independent: a and b may be given in either order).
// "Simplest" is: the integer in the open interval if one exists;
// otherwise the dyadic number with the smallest denominator exponent,
// ties (impossible among distinct dyadics at equal exponent, since
// their numerators then differ) broken toward the smaller absolute
// numerator.
//
// If a==b, SimplestBetween returns a (there is no open interval to pick
// from, but the table's number-shortcut check only ever calls this when
// the interval is genuinely non-degenerate).
func SimplestBetween(a, b Rational) Rational {
	if Equal(a, b) {
		return a
	}
	if Compare(a, b) > 0 {
		a, b = b, a
	}
	switch {
	case a.isNegative() && b.isPositiveOrZero() && !Equal(b, Zero):
		return Zero
	case !a.isNegative():
		return simplestNonNegativeBetween(a, b)
	default: // b <= 0
		return Neg(simplestNonNegativeBetween(Neg(b), Neg(a)))
	}
}

func (a Rational) isNegative() bool       { return a.num < 0 }
func (a Rational) isPositiveOrZero() bool { return a.num >= 0 }

// simplestNonNegativeBetween requires 0 <= a < b.
func simplestNonNegativeBetween(a, b Rational) Rational {
	n := a.Floor() + 1
	if Compare(NewInteger(n), b) < 0 {
		return NewInteger(n)
	}
	for k := 1; k < 256; k++ {
		scaled := a.timesPow2(k)
		m := scaled.Floor() + 1
		cand := New(m, uint8(k))
		if Compare(cand, b) < 0 {
			return cand
		}
	}
	// Unreachable for well-formed dyadic a<b: some exponent always
	// separates two distinct dyadic rationals.
	return a
}

// String renders a in "p" (integer) or "p/q" form.
func (a Rational) String() string {
	if a.exp == 0 {
		return strconv.FormatInt(a.num, 10)
	}
	return fmt.Sprintf("%d/%d", a.num, a.Denominator())
}

var rationalText = regexp.MustCompile(`^(-?\d+)(?:/(\d+))?$`)

// ParseRational parses the "-?\d+(/\d+)?" grammar. A denominator that is
// not a power of two is rejected as ErrInvalidRational, since every
// value in this system is dyadic.
func ParseRational(s string) (Rational, error) {
	m := rationalText.FindStringSubmatch(s)
	if m == nil {
		return Rational{}, ErrInvalidRational
	}
	num, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Rational{}, ErrInvalidRational
	}
	if m[2] == "" {
		return NewInteger(num), nil
	}
	den, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Rational{}, ErrInvalidRational
	}
	return FromFraction(num, den)
}
