package exactexpr

import (
	"math"
	"strconv"
)

// Func identifies a function applied by a FunctionCall.
type Func int8

const (
	// FuncFactorial is the factorial n!, extended to non-integers by the
	// gamma function.
	FuncFactorial Func = iota + 1
)

func (f Func) String() string {
	switch f {
	case FuncFactorial:
		return "factorial"
	}
	return "Func(" + strconv.Itoa(int(f)) + ")"
}

// FunctionCall is a function applied to an argument that cannot be
// evaluated exactly.
type FunctionCall struct {
	fn  Func
	arg Node
}

// NewFactorial creates a node for arg!. The factorial of a bare integer is
// computed immediately using m; any other argument stays symbolic until the
// tree is forced.
func NewFactorial(arg Node, m *Memo) Node {
	arg = Reduce(arg)
	if n, ok := arg.(Number); ok && n.kind == KindInteger {
		return n.factorial(m)
	}
	return &FunctionCall{fn: FuncFactorial, arg: arg}
}

// Func returns the function c applies.
func (c *FunctionCall) Func() Func {
	return c.fn
}

// Arg returns the argument of c.
func (c *FunctionCall) Arg() Node {
	return c.arg
}

func (c *FunctionCall) factor() {}

func (c *FunctionCall) negate() Node {
	return &Product{terms: []Factor{c}, acc: negOne}
}

func (c *FunctionCall) force(m *Memo) Number {
	x := c.arg.force(m)
	switch c.fn {
	case FuncFactorial:
		return gammaFactorial(x, m)
	}
	panic("exactexpr: invalid function " + c.fn.String())
}

// gammaFactorial computes x! for any number, using Γ(x+1) where x is not an
// integer.
func gammaFactorial(x Number, m *Memo) Number {
	switch x.kind {
	case KindInteger:
		return x.factorial(m)
	case KindRational, KindRounded:
		f, over, under := x.approx()
		switch {
		case over && !x.neg:
			return ReallyBig(false)
		case over:
			return Unknown()
		case under:
			return NewRounded(1)
		}
		g := math.Gamma(f + 1)
		if math.IsInf(g, 1) && f > 0 {
			return ReallyBig(false)
		}
		return NewRounded(g)
	case KindReallyBig:
		if !x.neg {
			return ReallyBig(false)
		}
	case KindReallySmall:
		// Γ(1+ε) ≈ 1.
		return NewRounded(1)
	case KindUnknown:
		return x
	}
	return NaN()
}

func (c *FunctionCall) String() string {
	var b []byte
	b = append(b, '(')
	b = append(b, c.arg.String()...)
	b = append(b, ")!"...)
	return string(b)
}
