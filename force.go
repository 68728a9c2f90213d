package exactexpr

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// ToNumber computes the best Number for an evaluation tree. Exact parts of
// the tree stay exact; irrational parts are approximated. If m is nil, the
// default memo is used.
func ToNumber(n Node, m *Memo) Number {
	if m == nil {
		m = DefaultMemo()
	}
	return Reduce(n).force(m)
}

func (s *Sum) force(m *Memo) Number {
	v := s.acc
	for _, t := range s.terms {
		v = v.Add(t.force(m))
	}
	return v
}

func (p *Product) force(m *Memo) Number {
	v := p.acc
	for _, t := range p.terms {
		v = v.Multiply(t.force(m))
	}
	return v
}

func (e *Exponentiation) force(m *Memo) Number {
	b := e.base.force(m)
	p := e.power.force(m)
	switch r := pow(b, p).(type) {
	case Number:
		return r
	case *Exponentiation:
		return floatPow(r.base.(Number), r.power.(Number))
	default:
		panic("exactexpr: unexpected power result")
	}
}

// floatPow approximates an exact base to an exact power.
func floatPow(b, p Number) Number {
	e, ok := p.Float64()
	if !ok {
		return Unknown()
	}
	f, over, under := b.approx()
	if !over && !under {
		return NewRounded(math.Pow(f, e))
	}
	if b.neg {
		return NaN()
	}
	return bigPow(b, e)
}

// bigPow approximates a positive exact base outside the range of float64 to
// a power.
func bigPow(b Number, e float64) (r Number) {
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		err := x.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			r = NaN()
			return
		}
		panic(err)
	}()
	x := new(big.Float).SetPrec(64)
	switch b.kind {
	case KindInteger:
		x.SetInt(b.mag())
	case KindRational:
		x.SetRat(new(big.Rat).SetFrac(b.num, b.den))
	default:
		panic("exactexpr: bigPow of " + b.kind.String())
	}
	y := new(big.Float).SetPrec(64).SetFloat64(e)
	z := new(big.Float).SetPrec(64)
	bigfloat.Pow(z, x, y)
	f, _ := z.Float64()
	switch {
	case math.IsInf(f, 0):
		return ReallyBig(false)
	case f == 0:
		return ReallySmall(false)
	}
	return NewRounded(f)
}
