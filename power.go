package exactexpr

import (
	"math"
	"math/big"
)

// Pow returns n raised to the power p. The result is a Number when it can be
// represented as one. When the power is a fraction and the root of the base
// is irrational, the result is an *Exponentiation of an exact base to the
// reciprocal of an integer, which is as exact as the value can be kept.
func (n Number) Pow(p Number) Node {
	return pow(n, p)
}

func pow(b, p Number) Node {
	if p.IsZero() {
		if b.kind == KindInfinity || b.kind == KindNaN {
			return NaN()
		}
		return one
	}
	if b.IsZero() {
		s, ok := p.Sign()
		switch {
		case !ok:
			return p
		case s < 0:
			return Infinity(false)
		}
		return b
	}
	if b.IsOne() {
		return one
	}
	switch b.kind {
	case KindInteger:
		return powInteger(b, p)
	case KindRational:
		return powRational(b, p)
	case KindRounded:
		return powRounded(b, p)
	case KindReallyBig, KindReallySmall:
		return powSentinel(b, p)
	case KindInfinity:
		return powInfinity(b, p)
	case KindUnknown, KindNaN:
		return b
	}
	panic("exactexpr: invalid number kind " + b.kind.String())
}

// fromPow builds an exact number from the results of intPow.
func fromPow(neg bool, v *big.Int, recip bool) Number {
	if recip {
		return NewRational(neg, big.NewInt(1), v)
	}
	return NewInteger(neg, v)
}

// ratio builds num/den or, if recip, den/num.
func ratio(neg bool, num, den *big.Int, recip bool) Number {
	if recip {
		return NewRational(neg, den, num)
	}
	return NewRational(neg, num, den)
}

// overflowed is the result of an integer power too large to compute. The
// base has magnitude at least 2, so the result grows unless the exponent is
// negative.
func overflowed(neg, recip bool) Number {
	if recip {
		return ReallySmall(neg)
	}
	return ReallyBig(neg)
}

// ratOverflowed is the result of a rational power too large to compute.
func ratOverflowed(b Number, neg, recip bool) Number {
	grows := b.num.Cmp(b.den) > 0
	if grows != recip {
		return ReallyBig(neg)
	}
	return ReallySmall(neg)
}

// unitRoot is 1/d, the power of an irrational root.
func unitRoot(d *big.Int) Number {
	return NewRational(false, big.NewInt(1), d)
}

func powInteger(b, p Number) Node {
	switch p.kind {
	case KindInteger:
		neg, v, recip, ok := intPow(b.neg, b.mag(), p.neg, p.mag())
		if !ok {
			return overflowed(neg, p.neg)
		}
		return fromPow(neg, v, recip)
	case KindRational:
		if rneg, root, ok := intNthRoot(b.neg, b.mag(), p.den); ok {
			neg, v, recip, ok := intPow(rneg, root, p.neg, p.num)
			if !ok {
				return overflowed(neg, p.neg)
			}
			return fromPow(neg, v, recip)
		}
		neg, v, recip, ok := intPow(b.neg, b.mag(), p.neg, p.num)
		if !ok {
			// Whatever root of this is still out of reach.
			return overflowed(neg, p.neg)
		}
		return &Exponentiation{base: fromPow(neg, v, recip), power: unitRoot(p.den)}
	case KindRounded:
		f, over, _ := b.approx()
		if over {
			return Unknown()
		}
		return NewRounded(math.Pow(f, p.f))
	case KindReallyBig:
		if b.neg {
			return Unknown()
		}
		if p.neg {
			return ReallySmall(false)
		}
		return ReallyBig(false)
	case KindReallySmall, KindUnknown:
		return Unknown()
	case KindInfinity, KindNaN:
		return NaN()
	}
	panic("exactexpr: invalid number kind " + p.kind.String())
}

func powRational(b, p Number) Node {
	switch p.kind {
	case KindInteger:
		neg, num, recip, ok := intPow(b.neg, b.num, p.neg, p.mag())
		_, den, _, okd := intPow(false, b.den, false, p.mag())
		if !ok || !okd {
			return ratOverflowed(b, neg, p.neg)
		}
		return ratio(neg, num, den, recip)
	case KindRational:
		nneg, nroot, ok := intNthRoot(b.neg, b.num, p.den)
		_, droot, okd := intNthRoot(false, b.den, p.den)
		if ok && okd {
			neg, num, recip, ok := intPow(nneg, nroot, p.neg, p.num)
			_, den, _, okd := intPow(false, droot, false, p.num)
			if !ok || !okd {
				return ratOverflowed(b, neg, p.neg)
			}
			return ratio(neg, num, den, recip)
		}
		neg, num, recip, ok := intPow(b.neg, b.num, p.neg, p.num)
		_, den, _, okd := intPow(false, b.den, false, p.num)
		if !ok || !okd {
			return Unknown()
		}
		return &Exponentiation{base: ratio(neg, num, den, recip), power: unitRoot(p.den)}
	case KindRounded:
		f, over, under := b.approx()
		if over || under {
			return Unknown()
		}
		return NewRounded(math.Pow(f, p.f))
	case KindReallyBig, KindReallySmall, KindUnknown:
		return Unknown()
	case KindInfinity, KindNaN:
		return NaN()
	}
	panic("exactexpr: invalid number kind " + p.kind.String())
}

func powRounded(b, p Number) Node {
	switch p.kind {
	case KindInteger, KindRational:
		e, over, _ := p.approx()
		if over {
			return Unknown()
		}
		return NewRounded(math.Pow(b.f, e))
	case KindRounded:
		return NewRounded(math.Pow(b.f, p.f))
	case KindReallyBig, KindReallySmall, KindUnknown:
		return Unknown()
	case KindInfinity, KindNaN:
		return NaN()
	}
	panic("exactexpr: invalid number kind " + p.kind.String())
}

// powSentinel raises ReallyBig or ReallySmall to a power.
func powSentinel(b, p Number) Node {
	grows := b.kind == KindReallyBig
	sentinel := func(large, neg bool) Number {
		if large {
			return ReallyBig(neg)
		}
		return ReallySmall(neg)
	}
	switch p.kind {
	case KindInteger:
		return sentinel(grows != p.neg, b.neg && odd(p.mag()))
	case KindReallyBig:
		if b.neg {
			return Unknown()
		}
		return sentinel(grows != p.neg, false)
	case KindRational, KindRounded, KindReallySmall, KindUnknown:
		return Unknown()
	case KindInfinity, KindNaN:
		return NaN()
	}
	panic("exactexpr: invalid number kind " + p.kind.String())
}

func powInfinity(b, p Number) Node {
	switch p.kind {
	case KindInteger:
		if p.neg {
			return Number{}
		}
		return Infinity(b.neg && odd(p.mag()))
	case KindRational, KindReallyBig, KindReallySmall:
		if p.neg {
			return Number{}
		}
		if b.neg {
			return Unknown()
		}
		return Infinity(false)
	case KindRounded:
		if p.f < 0 {
			return Number{}
		}
		if b.neg {
			return Unknown()
		}
		return Infinity(false)
	case KindUnknown:
		return Unknown()
	case KindInfinity, KindNaN:
		return NaN()
	}
	panic("exactexpr: invalid number kind " + p.kind.String())
}
