package exactexpr

import (
	"math"
	"math/big"
)

// MaxPowBits bounds the size of exact integer powers. A power whose result
// would need more bits than this is reported as too large, and callers fall
// back to the ReallyBig and ReallySmall sentinels.
const MaxPowBits = 1 << 20

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// Values passed to and returned from the helpers in this file are never
// modified in place. Results are always freshly allocated or are one of the
// arguments or shared constants.

// addSigned adds two integers given as separate signs and magnitudes.
func addSigned(lneg bool, l *big.Int, rneg bool, r *big.Int) (bool, *big.Int) {
	if lneg == rneg {
		return lneg, new(big.Int).Add(l, r)
	}
	if l.Cmp(r) >= 0 {
		return lneg, new(big.Int).Sub(l, r)
	}
	return rneg, new(big.Int).Sub(r, l)
}

// mulSigned multiplies two integers given as separate signs and magnitudes.
func mulSigned(lneg bool, l *big.Int, rneg bool, r *big.Int) (bool, *big.Int) {
	return lneg != rneg, new(big.Int).Mul(l, r)
}

func odd(x *big.Int) bool {
	return x.Bit(0) == 1
}

// intPow raises l to the power r, where both have their signs split out.
// The result is negative iff l is negative and r is odd. A negative exponent
// does not produce a fraction; instead recip reports that the true result is
// the reciprocal of val. If the exponent is too large to compute, ok is false
// and only neg is meaningful.
func intPow(lneg bool, l *big.Int, rneg bool, r *big.Int) (neg bool, val *big.Int, recip, ok bool) {
	neg = lneg && odd(r)
	if l.Cmp(bigOne) == 0 {
		return neg, bigOne, rneg, true
	}
	if r.Sign() == 0 {
		return false, bigOne, false, true
	}
	if l.Sign() == 0 {
		return false, bigZero, rneg, true
	}
	if !r.IsUint64() {
		return neg, nil, false, false
	}
	e := r.Uint64()
	// l >= 2 here, so l^e needs at least e*(bitlen(l)-1) bits.
	if e > MaxPowBits || uint64(l.BitLen()-1)*e > MaxPowBits {
		return neg, nil, false, false
	}
	return neg, new(big.Int).Exp(l, r, nil), rneg, true
}

// intNthRoot finds the exact root-th root of an integer with its sign split
// out. ok is false if the root is not an integer, including when a negative
// number has an even root.
func intNthRoot(neg bool, mag, root *big.Int) (rneg bool, val *big.Int, ok bool) {
	if root.Sign() <= 0 || !root.IsUint64() {
		return false, nil, false
	}
	n := root.Uint64()
	if neg && n%2 == 0 {
		return false, nil, false
	}
	if n == 1 || mag.Sign() == 0 || mag.Cmp(bigOne) == 0 {
		return neg && mag.Sign() != 0, mag, true
	}
	if uint64(mag.BitLen()) <= n {
		// 1 < root < 2.
		return false, nil, false
	}
	x := floorRoot(mag, n)
	if new(big.Int).Exp(x, root, nil).Cmp(mag) != 0 {
		return false, nil, false
	}
	return neg, x, true
}

// floorRoot computes floor(a^(1/n)) for a > 1 and n >= 2 using Newton's
// method from a slight overestimate taken from the float64 logarithm of a.
func floorRoot(a *big.Int, n uint64) *big.Int {
	if n == 2 {
		return new(big.Int).Sqrt(a)
	}
	if uint64(a.BitLen()) <= n {
		return big.NewInt(1)
	}
	bn := new(big.Int).SetUint64(n)
	bn1 := new(big.Int).SetUint64(n - 1)
	x := rootEstimate(a, n)
	for {
		// y = ((n-1)x + a/x^(n-1)) / n
		t := new(big.Int).Exp(x, bn1, nil)
		t.Quo(a, t)
		y := new(big.Int).Mul(x, bn1)
		y.Add(y, t)
		y.Quo(y, bn)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// rootEstimate returns an integer just above a^(1/n). The float64 logarithm
// is good to far better than the 2^-20 margin added to it, so Newton's
// method starts above the root and within a relative 2^-19 of it.
func rootEstimate(a *big.Int, n uint64) *big.Int {
	shift := a.BitLen() - 64
	if shift < 0 {
		shift = 0
	}
	top := new(big.Int).Rsh(a, uint(shift)).Uint64()
	e := (math.Log2(float64(top))+float64(shift))/float64(n) + 0x1p-20
	k := math.Floor(e)
	m := math.Exp2(e - k)
	if k < 53 {
		return new(big.Int).SetUint64(uint64(math.Ldexp(m, int(k))) + 2)
	}
	x := new(big.Int).SetUint64(uint64(math.Ldexp(m, 52)) + 1)
	return x.Lsh(x, uint(k-52))
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}
