package exactexpr

import (
	"math"
	"math/big"
	"strconv"
)

// Kind identifies the variant of a Number. Kinds are ordered by rank:
// arithmetic between two numbers dispatches on the lower-ranked one.
type Kind int8

const (
	// KindInteger is an exact integer.
	KindInteger Kind = iota
	// KindRational is an exact fraction in lowest terms with a denominator
	// greater than one.
	KindRational
	// KindRounded is a finite float64 approximation.
	KindRounded
	// KindReallyBig is a finite value too large in magnitude for float64.
	KindReallyBig
	// KindReallySmall is a nonzero value too small in magnitude for float64.
	KindReallySmall
	// KindInfinity is a signed infinity.
	KindInfinity
	// KindUnknown is a finite or infinite value that cannot be determined.
	KindUnknown
	// KindNaN is an undefined value.
	KindNaN
)

var kindNames = [...]string{
	KindInteger:     "Integer",
	KindRational:    "Rational",
	KindRounded:     "Rounded",
	KindReallyBig:   "ReallyBig",
	KindReallySmall: "ReallySmall",
	KindInfinity:    "Infinity",
	KindUnknown:     "Unknown",
	KindNaN:         "NaN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Number is a real value that is exact wherever exactness is representable.
// Numbers are immutable. The zero value is the integer 0.
type Number struct {
	kind Kind
	neg  bool
	// num is the magnitude of an integer or the numerator of a rational.
	// nil means zero.
	num *big.Int
	// den is the denominator of a rational.
	den *big.Int
	f   float64
}

// NewInteger creates an integer from a sign and magnitude. The Number takes
// ownership of mag; it must not be modified afterward. A negative mag flips
// the sign.
func NewInteger(neg bool, mag *big.Int) Number {
	if mag.Sign() < 0 {
		neg = !neg
		mag = new(big.Int).Abs(mag)
	}
	if mag.Sign() == 0 {
		return Number{}
	}
	return Number{kind: KindInteger, neg: neg, num: mag}
}

// Int64 creates an integer.
func Int64(x int64) Number {
	return NewInteger(false, big.NewInt(x))
}

// NewRational creates the fraction num/den with the given sign, reduced to
// lowest terms. 0/0 is NaN, n/0 is Infinity, and a denominator of one
// produces an integer. The Number takes ownership of num and den.
func NewRational(neg bool, num, den *big.Int) Number {
	if num.Sign() < 0 {
		neg = !neg
		num = new(big.Int).Abs(num)
	}
	if den.Sign() < 0 {
		neg = !neg
		den = new(big.Int).Abs(den)
	}
	switch {
	case den.Sign() == 0 && num.Sign() == 0:
		return NaN()
	case den.Sign() == 0:
		return Infinity(neg)
	case num.Sign() == 0:
		return Number{}
	}
	if g := gcd(num, den); g.Cmp(bigOne) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}
	if den.Cmp(bigOne) == 0 {
		return NewInteger(neg, num)
	}
	return Number{kind: KindRational, neg: neg, num: num, den: den}
}

// Rat creates an exact number from a big.Rat.
func Rat(x *big.Rat) Number {
	return NewRational(false, new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom()))
}

// NewRounded creates an approximate number. NaN produces NaN, and either
// infinity produces Unknown, since an overflowed float says nothing about
// the true magnitude.
func NewRounded(f float64) Number {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 0):
		return Unknown()
	case f == 0:
		f = 0
	}
	return Number{kind: KindRounded, f: f}
}

// ReallyBig creates a sentinel for a finite value too large for float64.
func ReallyBig(neg bool) Number {
	return Number{kind: KindReallyBig, neg: neg}
}

// ReallySmall creates a sentinel for a nonzero value too small for float64.
func ReallySmall(neg bool) Number {
	return Number{kind: KindReallySmall, neg: neg}
}

// Infinity creates a signed infinity.
func Infinity(neg bool) Number {
	return Number{kind: KindInfinity, neg: neg}
}

// Unknown creates an indeterminate value.
func Unknown() Number {
	return Number{kind: KindUnknown}
}

// NaN creates an undefined value.
func NaN() Number {
	return Number{kind: KindNaN}
}

var (
	one    = NewInteger(false, bigOne)
	negOne = NewInteger(true, bigOne)
	half   = NewRational(false, big.NewInt(1), big.NewInt(2))
)

// Kind returns the variant of n.
func (n Number) Kind() Kind {
	return n.kind
}

// IsZero returns whether n is the integer 0.
func (n Number) IsZero() bool {
	return n.kind == KindInteger && n.mag().Sign() == 0
}

// IsOne returns whether n is the integer 1.
func (n Number) IsOne() bool {
	return n.kind == KindInteger && !n.neg && n.mag().Cmp(bigOne) == 0
}

// Sign returns -1, 0, or 1 according to the sign of n. The second result is
// false if n is Unknown or NaN, which have no sign.
func (n Number) Sign() (int, bool) {
	switch n.kind {
	case KindUnknown, KindNaN:
		return 0, false
	case KindRounded:
		switch {
		case n.f < 0:
			return -1, true
		case n.f > 0:
			return 1, true
		}
		return 0, true
	case KindInteger:
		if n.IsZero() {
			return 0, true
		}
	}
	if n.neg {
		return -1, true
	}
	return 1, true
}

func (n Number) mag() *big.Int {
	if n.num == nil {
		return bigZero
	}
	return n.num
}

// Num returns the signed numerator of an exact number, or nil if n is not
// an Integer or Rational. The result is a fresh copy.
func (n Number) Num() *big.Int {
	switch n.kind {
	case KindInteger, KindRational:
		r := new(big.Int).Set(n.mag())
		if n.neg {
			r.Neg(r)
		}
		return r
	}
	return nil
}

// Denom returns the denominator of an exact number, which is 1 for integers,
// or nil if n is not an Integer or Rational. The result is a fresh copy.
func (n Number) Denom() *big.Int {
	switch n.kind {
	case KindInteger:
		return big.NewInt(1)
	case KindRational:
		return new(big.Int).Set(n.den)
	}
	return nil
}

// Rat returns n as a big.Rat if it is exact.
func (n Number) Rat() (*big.Rat, bool) {
	switch n.kind {
	case KindInteger:
		return new(big.Rat).SetInt(n.Num()), true
	case KindRational:
		return new(big.Rat).SetFrac(n.Num(), n.den), true
	}
	return nil, false
}

// Float64 returns the nearest float64 to n. The second result is false if n
// is a sentinel or an exact value outside the range of float64.
func (n Number) Float64() (float64, bool) {
	switch n.kind {
	case KindInteger, KindRational:
		f, over, under := n.approx()
		return f, !over && !under
	case KindRounded:
		return n.f, true
	}
	return 0, false
}

// approx converts an exact number to the nearest float64. over reports that
// the magnitude exceeds the float64 range, and under that a nonzero value
// rounds to zero.
func (n Number) approx() (f float64, over, under bool) {
	switch n.kind {
	case KindInteger:
		f, _ = new(big.Float).SetInt(n.mag()).Float64()
	case KindRational:
		f, _ = new(big.Rat).SetFrac(n.num, n.den).Float64()
	case KindRounded:
		return n.f, false, false
	default:
		panic("exactexpr: approx of " + n.kind.String())
	}
	if n.neg {
		f = -f
	}
	switch {
	case math.IsInf(f, 0):
		return f, true, false
	case f == 0 && !n.IsZero():
		return f, false, true
	}
	return f, false, false
}

// Equal returns whether n and m are the same value of the same kind.
// Sentinels compare by kind and sign. NaN equals NaN.
func (n Number) Equal(m Number) bool {
	if n.kind != m.kind || n.neg != m.neg {
		return false
	}
	switch n.kind {
	case KindInteger:
		return n.mag().Cmp(m.mag()) == 0
	case KindRational:
		return n.num.Cmp(m.num) == 0 && n.den.Cmp(m.den) == 0
	case KindRounded:
		return n.f == m.f
	}
	return true
}

// String formats n for display.
func (n Number) String() string {
	switch n.kind {
	case KindInteger:
		return n.Num().String()
	case KindRational:
		return n.Num().String() + "/" + n.den.String()
	case KindRounded:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case KindReallyBig:
		return signed(n.neg, "Really Big")
	case KindReallySmall:
		return signed(n.neg, "Really Small")
	case KindInfinity:
		return signed(n.neg, "Infinity")
	case KindUnknown:
		return "Unknown"
	case KindNaN:
		return "NaN"
	}
	panic("exactexpr: invalid number kind " + n.kind.String())
}

func signed(neg bool, s string) string {
	if neg {
		return "Negative " + s
	}
	return s
}

// GoString formats n in a constructor-like debugging form.
func (n Number) GoString() string {
	b := strconv.FormatBool(n.neg)
	switch n.kind {
	case KindInteger:
		return "Integer(" + b + ", " + n.mag().String() + ")"
	case KindRational:
		return "Rational(" + b + ", " + n.num.String() + ", " + n.den.String() + ")"
	case KindRounded:
		return "Rounded(" + strconv.FormatFloat(n.f, 'g', -1, 64) + ")"
	case KindReallyBig, KindReallySmall, KindInfinity:
		return n.kind.String() + "(" + b + ")"
	}
	return n.kind.String() + "()"
}
