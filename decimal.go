package exactexpr

import (
	"math/big"
	"strings"
)

// MaxRepeatDigits is the longest repeating block Decimal will write.
const MaxRepeatDigits = 4096

// decimalNumber converts a lexed decimal literal to an exact number. lit is
// an optionally signed decimal such as "-12.5" or ".5", and repeat is the
// digit block that repeats forever after it, or empty.
func decimalNumber(m *Memo, lit, repeat string) Number {
	neg := false
	switch {
	case strings.HasPrefix(lit, "-"):
		neg = true
		lit = lit[1:]
	case strings.HasPrefix(lit, "+"):
		lit = lit[1:]
	}
	whole, frac, _ := strings.Cut(lit, ".")
	w := digits(whole)
	if repeat == "" {
		if strings.Trim(frac, "0") == "" {
			return NewInteger(neg, w)
		}
		den := m.PowerOfTen(len(frac))
		num := new(big.Int).Mul(w, den)
		num.Add(num, digits(frac))
		return NewRational(neg, num, den)
	}
	// x = w.frac(repeat) = (fixed*(10^r - 1) + repeat) / (10^k * (10^r - 1))
	// where fixed is w.frac scaled to an integer by 10^k.
	scale := m.PowerOfTen(len(frac))
	fixed := new(big.Int).Mul(w, scale)
	fixed.Add(fixed, digits(frac))
	nines := new(big.Int).Sub(m.PowerOfTen(len(repeat)), bigOne)
	num := fixed.Mul(fixed, nines)
	num.Add(num, digits(repeat))
	return NewRational(neg, num, new(big.Int).Mul(scale, nines))
}

// digits parses a string of decimal digits. The empty string is zero.
func digits(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("exactexpr: invalid digits " + s)
	}
	return v
}

// Decimal formats an exact number as decimal text. A value whose expansion
// repeats is written with the repeating block in parentheses, like
// "1.0(4)" for 47/45. The result is false if n is not exact or if the
// repeating block is longer than MaxRepeatDigits.
func (n Number) Decimal() (string, bool) {
	switch n.kind {
	case KindInteger:
		return n.String(), true
	case KindRational:
	default:
		return "", false
	}
	// The expansion of num/den has a fixed part as long as the larger
	// power of 2 or 5 in den, then repeats unless den has no other factors.
	d := new(big.Int).Set(n.den)
	m := new(big.Int)
	var twos, fives int
	for {
		if q, r := new(big.Int).QuoRem(d, bigTwo, m); r.Sign() == 0 {
			d, twos = q, twos+1
			continue
		}
		break
	}
	five := big.NewInt(5)
	for {
		if q, r := new(big.Int).QuoRem(d, five, m); r.Sign() == 0 {
			d, fives = q, fives+1
			continue
		}
		break
	}
	fixed := max(twos, fives)

	var b strings.Builder
	if n.neg {
		b.WriteByte('-')
	}
	q, r := new(big.Int).QuoRem(n.num, n.den, new(big.Int))
	b.WriteString(q.String())
	b.WriteByte('.')
	ten := big.NewInt(10)
	digit := func() {
		r.Mul(r, ten)
		q.QuoRem(r, n.den, m)
		r.Set(m)
		b.WriteString(q.String())
	}
	for i := 0; i < fixed; i++ {
		digit()
	}
	if d.Cmp(bigOne) == 0 {
		return b.String(), true
	}
	start := new(big.Int).Set(r)
	b.WriteByte('(')
	for i := 0; ; i++ {
		if i == MaxRepeatDigits {
			return "", false
		}
		digit()
		if r.Cmp(start) == 0 {
			break
		}
	}
	b.WriteByte(')')
	return b.String(), true
}
