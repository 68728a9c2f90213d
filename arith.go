package exactexpr

import "math/big"

// Add returns n + m.
func (n Number) Add(m Number) Number {
	if n.kind > m.kind {
		return m.Add(n)
	}
	switch n.kind {
	case KindInteger:
		if n.IsZero() {
			return m
		}
		switch m.kind {
		case KindInteger:
			neg, v := addSigned(n.neg, n.mag(), m.neg, m.mag())
			return NewInteger(neg, v)
		case KindRational:
			l := new(big.Int).Mul(n.mag(), m.den)
			neg, v := addSigned(n.neg, l, m.neg, m.num)
			return NewRational(neg, v, m.den)
		case KindRounded:
			return addRounded(n, m)
		case KindReallyBig, KindReallySmall:
			return addSentinel(n, m)
		}
		return m
	case KindRational:
		switch m.kind {
		case KindRational:
			l := new(big.Int).Mul(n.num, m.den)
			r := new(big.Int).Mul(m.num, n.den)
			neg, v := addSigned(n.neg, l, m.neg, r)
			return NewRational(neg, v, new(big.Int).Mul(n.den, m.den))
		case KindRounded:
			return addRounded(n, m)
		case KindReallyBig, KindReallySmall:
			return addSentinel(n, m)
		}
		return m
	case KindRounded:
		switch m.kind {
		case KindRounded:
			return NewRounded(n.f + m.f)
		case KindReallySmall:
			if n.f == 0 {
				return m
			}
			return n
		}
		return m
	case KindReallyBig:
		switch m.kind {
		case KindReallyBig:
			if n.neg == m.neg {
				return n
			}
			return Unknown()
		case KindReallySmall:
			return n
		}
		return m
	case KindReallySmall, KindInfinity:
		if m.kind == n.kind {
			if n.neg == m.neg {
				return n
			}
			return Unknown()
		}
		return m
	case KindUnknown, KindNaN:
		// Unknown + Unknown, Unknown + NaN, NaN + NaN.
		return m
	}
	panic("exactexpr: invalid number kind " + n.kind.String())
}

// addRounded adds an exact number to a Rounded one.
func addRounded(x, r Number) Number {
	f, over, _ := x.approx()
	if over {
		return ReallyBig(x.neg).Add(r)
	}
	return NewRounded(f + r.f)
}

// addSentinel adds an exact number to ReallyBig or ReallySmall.
func addSentinel(x, s Number) Number {
	f, over, under := x.approx()
	switch {
	case over:
		return ReallyBig(x.neg).Add(s)
	case s.kind == KindReallyBig:
		return s
	case under:
		return ReallySmall(x.neg).Add(s)
	}
	return NewRounded(f)
}

// Multiply returns n * m.
func (n Number) Multiply(m Number) Number {
	if n.kind > m.kind {
		return m.Multiply(n)
	}
	switch n.kind {
	case KindInteger:
		if n.IsZero() {
			return n
		}
		if n.IsOne() {
			return m
		}
		switch m.kind {
		case KindInteger:
			neg, v := mulSigned(n.neg, n.mag(), m.neg, m.mag())
			return NewInteger(neg, v)
		case KindRational:
			neg, v := mulSigned(n.neg, n.mag(), m.neg, m.num)
			return NewRational(neg, v, m.den)
		case KindRounded:
			return mulRounded(n, m)
		case KindReallyBig:
			return ReallyBig(n.neg != m.neg)
		case KindReallySmall:
			return Unknown()
		case KindInfinity:
			return Infinity(n.neg != m.neg)
		}
		return m
	case KindRational:
		switch m.kind {
		case KindRational:
			neg, num := mulSigned(n.neg, n.num, m.neg, m.num)
			return NewRational(neg, num, new(big.Int).Mul(n.den, m.den))
		case KindRounded:
			return mulRounded(n, m)
		case KindReallyBig, KindReallySmall:
			return Unknown()
		case KindInfinity:
			return Infinity(n.neg != m.neg)
		}
		return m
	case KindRounded:
		switch m.kind {
		case KindRounded:
			return NewRounded(n.f * m.f)
		case KindReallyBig, KindReallySmall:
			return Unknown()
		case KindInfinity:
			if n.f == 0 {
				return NaN()
			}
			return Infinity((n.f < 0) != m.neg)
		}
		return m
	case KindReallyBig:
		switch m.kind {
		case KindReallyBig:
			return ReallyBig(n.neg != m.neg)
		case KindReallySmall:
			return Unknown()
		case KindInfinity:
			return Infinity(n.neg != m.neg)
		}
		return m
	case KindReallySmall:
		switch m.kind {
		case KindReallySmall:
			return ReallySmall(n.neg != m.neg)
		case KindInfinity:
			return Unknown()
		}
		return m
	case KindInfinity:
		if m.kind == KindInfinity {
			return Infinity(n.neg != m.neg)
		}
		return m
	case KindUnknown, KindNaN:
		return m
	}
	panic("exactexpr: invalid number kind " + n.kind.String())
}

// mulRounded multiplies an exact number by a Rounded one.
func mulRounded(x, r Number) Number {
	f, over, under := x.approx()
	switch {
	case over:
		return ReallyBig(x.neg).Multiply(r)
	case under:
		return ReallySmall(x.neg).Multiply(r)
	}
	return NewRounded(f * r.f)
}

// Negate returns -n. Unknown and NaN are unchanged.
func (n Number) Negate() Number {
	switch n.kind {
	case KindInteger:
		if n.IsZero() {
			return n
		}
		n.neg = !n.neg
	case KindRounded:
		return NewRounded(-n.f)
	case KindRational, KindReallyBig, KindReallySmall, KindInfinity:
		n.neg = !n.neg
	}
	return n
}

// Reciprocal returns 1/n. The reciprocal of 0 is Infinity, and the
// reciprocal of either infinity is 0.
func (n Number) Reciprocal() Number {
	switch n.kind {
	case KindInteger:
		if n.IsZero() {
			return Infinity(false)
		}
		return NewRational(n.neg, big.NewInt(1), n.mag())
	case KindRational:
		return NewRational(n.neg, n.den, n.num)
	case KindRounded:
		return NewRounded(1 / n.f)
	case KindReallyBig:
		return ReallySmall(n.neg)
	case KindReallySmall:
		return ReallyBig(n.neg)
	case KindInfinity:
		return Number{}
	}
	return n
}

// Factorial returns n! using the default memo. Only non-negative integers
// have factorials here; every other number gives NaN. Factorials of integers
// above FactorialCeiling are ReallyBig.
func (n Number) Factorial() Number {
	return n.factorial(DefaultMemo())
}

func (n Number) factorial(m *Memo) Number {
	if n.kind != KindInteger || n.neg {
		return NaN()
	}
	v, ok := m.Factorial(n.mag())
	if !ok {
		return ReallyBig(false)
	}
	return NewInteger(false, v)
}
