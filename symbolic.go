package exactexpr

import (
	"strings"
)

// Node is a node of an evaluation tree. Evaluation trees hold the parts of
// an expression that cannot be combined into a single exact Number, such as
// irrational roots, so that later operations can still cancel them exactly.
//
// The implementations are Number, *Sum, *Product, *Exponentiation, and
// *FunctionCall.
type Node interface {
	String() string
	// negate returns a node for the negation of the receiver.
	negate() Node
	// force computes the best Number for the node.
	force(m *Memo) Number
}

// Factor is a node that can be a term of a Product.
type Factor interface {
	Node
	factor()
}

func (n Number) negate() Node {
	return n.Negate()
}

func (n Number) force(*Memo) Number {
	return n
}

// Sum is an accumulator plus a list of products that cannot be combined
// into it. The zero value is not usable; use NewSum.
type Sum struct {
	terms []*Product
	acc   Number
}

// NewSum creates an empty sum, equal to 0.
func NewSum() *Sum {
	return &Sum{}
}

// Terms returns the products in s that are not part of its accumulator.
func (s *Sum) Terms() []*Product {
	return s.terms
}

// Accumulator returns the numeric part of s.
func (s *Sum) Accumulator() Number {
	return s.acc
}

// Push adds a product to s. A product that collapses to a number is added to
// the accumulator instead of being kept as a term. s takes ownership of p.
func (s *Sum) Push(p *Product) {
	if f, ok := p.CollapseToExponentiation(); ok {
		if e, ok := f.(*Exponentiation); ok {
			if v, ok := e.AsNumber(); ok {
				s.acc = s.acc.Add(v)
				return
			}
		}
	}
	s.terms = append(s.terms, p)
}

// PushNode adds any node to s. Nested sums are merged into s. s takes
// ownership of n.
func (s *Sum) PushNode(n Node) {
	switch n := n.(type) {
	case Number:
		s.acc = s.acc.Add(n)
	case *Sum:
		s.acc = s.acc.Add(n.acc)
		for _, t := range n.terms {
			s.Push(t)
		}
	case *Product:
		s.Push(n)
	case Factor:
		p := NewProduct()
		p.Push(n)
		s.Push(p)
	default:
		panic("exactexpr: unknown node type")
	}
}

// CollapseToProduct returns a product equal to s if s has at most one
// non-numeric part. Otherwise, it returns false and leaves s unchanged.
func (s *Sum) CollapseToProduct() (*Product, bool) {
	if len(s.terms) == 0 {
		p := NewProduct()
		p.scale(s.acc)
		return p, true
	}
	if s.acc.IsZero() && len(s.terms) == 1 {
		return s.terms[0], true
	}
	return nil, false
}

func (s *Sum) negate() Node {
	r := &Sum{terms: make([]*Product, len(s.terms)), acc: s.acc.Negate()}
	for i, t := range s.terms {
		r.terms[i] = t.negated()
	}
	return r
}

func (s *Sum) String() string {
	var b strings.Builder
	if !s.acc.IsZero() || len(s.terms) == 0 {
		b.WriteString(s.acc.String())
	}
	for _, t := range s.terms {
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Product is an accumulator times a list of factors that cannot be combined
// into it. The zero value is not usable; use NewProduct.
type Product struct {
	terms []Factor
	acc   Number
}

// NewProduct creates an empty product, equal to 1.
func NewProduct() *Product {
	return &Product{acc: one}
}

// Terms returns the factors in p that are not part of its accumulator.
func (p *Product) Terms() []Factor {
	return p.terms
}

// Accumulator returns the numeric part of p.
func (p *Product) Accumulator() Number {
	return p.acc
}

// scale multiplies the accumulator by v. Once the accumulator is zero, the
// symbolic terms no longer matter.
func (p *Product) scale(v Number) {
	p.acc = p.acc.Multiply(v)
	if p.acc.IsZero() {
		p.terms = nil
	}
}

// Push multiplies p by a factor. A numeric exponentiation is multiplied into
// the accumulator instead of being kept as a term.
func (p *Product) Push(f Factor) {
	if e, ok := f.(*Exponentiation); ok {
		if v, ok := e.AsNumber(); ok {
			p.scale(v)
			return
		}
	}
	if p.acc.IsZero() {
		return
	}
	p.terms = append(p.terms, f)
}

// PushNode multiplies p by any node. Nested products are merged into p, and
// a sum that does not collapse becomes a factor raised to the first power.
// p takes ownership of n.
func (p *Product) PushNode(n Node) {
	switch n := n.(type) {
	case Number:
		p.scale(n)
	case *Product:
		p.scale(n.acc)
		for _, t := range n.terms {
			p.Push(t)
		}
	case *Sum:
		if q, ok := n.CollapseToProduct(); ok {
			p.PushNode(q)
			return
		}
		p.Push(&Exponentiation{base: n, power: one})
	case Factor:
		p.Push(n)
	default:
		panic("exactexpr: unknown node type")
	}
}

// CollapseToExponentiation returns a single factor equal to p if p has at
// most one non-numeric part and no coefficient. A purely numeric product
// collapses to its accumulator raised to the first power. Otherwise, it
// returns false and leaves p unchanged.
func (p *Product) CollapseToExponentiation() (Factor, bool) {
	if p.acc.IsZero() || len(p.terms) == 0 {
		return &Exponentiation{base: p.acc, power: one}, true
	}
	if p.acc.IsOne() && len(p.terms) == 1 {
		return p.terms[0], true
	}
	return nil, false
}

func (p *Product) negated() *Product {
	return &Product{terms: append([]Factor(nil), p.terms...), acc: p.acc.Negate()}
}

func (p *Product) negate() Node {
	return p.negated()
}

func (p *Product) String() string {
	var b strings.Builder
	if !p.acc.IsOne() || len(p.terms) == 0 {
		b.WriteString(p.acc.String())
	}
	for _, t := range p.terms {
		if b.Len() > 0 {
			b.WriteString(" * ")
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Exponentiation is a base raised to a power where the result cannot be
// written as a single Number.
type Exponentiation struct {
	base, power Node
}

// NewExponentiation creates a node for base^power, simplifying where the
// result stays exact. Two numbers are combined immediately, and a power of
// a power multiplies the exponents when that does not change the value, so
// that (√2)^2 is exactly 2.
func NewExponentiation(base, power Node) Node {
	base, power = Reduce(base), Reduce(power)
	p, ok := power.(Number)
	if !ok {
		return &Exponentiation{base: base, power: power}
	}
	if p.IsOne() {
		return base
	}
	switch b := base.(type) {
	case Number:
		return pow(b, p)
	case *Exponentiation:
		q, ok := b.power.(Number)
		if !ok {
			break
		}
		// (x^q)^p = x^(qp) when x is not negative, or when p is an integer
		// and q takes no even root.
		if x, ok := b.base.(Number); ok && nonneg(x) || p.kind == KindInteger && oddRoot(q) {
			return NewExponentiation(b.base, q.Multiply(p))
		}
	}
	return &Exponentiation{base: base, power: power}
}

// oddRoot reports whether x^q is defined for negative x.
func oddRoot(q Number) bool {
	switch q.kind {
	case KindInteger:
		return true
	case KindRational:
		return q.den.Bit(0) == 1
	}
	return false
}

func nonneg(x Number) bool {
	s, ok := x.Sign()
	return ok && s >= 0
}

// Base returns the base of e.
func (e *Exponentiation) Base() Node {
	return e.base
}

// Power returns the power of e.
func (e *Exponentiation) Power() Node {
	return e.power
}

// AsNumber returns the base of e if e is a number to the first power.
func (e *Exponentiation) AsNumber() (Number, bool) {
	b, ok := e.base.(Number)
	if !ok {
		return Number{}, false
	}
	p, ok := e.power.(Number)
	if !ok || !p.IsOne() {
		return Number{}, false
	}
	return b, true
}

func (e *Exponentiation) factor() {}

func (e *Exponentiation) negate() Node {
	return &Product{terms: []Factor{e}, acc: negOne}
}

func (e *Exponentiation) String() string {
	var b strings.Builder
	writeOperand(&b, e.base)
	if p, ok := e.power.(Number); !ok || !p.IsOne() {
		b.WriteByte('^')
		writeOperand(&b, e.power)
	}
	return b.String()
}

// writeOperand writes n, in parentheses unless it is a non-negative integer.
func writeOperand(b *strings.Builder, n Node) {
	if x, ok := n.(Number); ok && x.kind == KindInteger && !x.neg {
		b.WriteString(x.String())
		return
	}
	b.WriteByte('(')
	b.WriteString(n.String())
	b.WriteByte(')')
}

// Reduce returns the simplest node equal to n, collapsing containers with a
// single part. The result may be n itself.
func Reduce(n Node) Node {
	switch x := n.(type) {
	case *Sum:
		if p, ok := x.CollapseToProduct(); ok {
			return Reduce(p)
		}
	case *Product:
		if f, ok := x.CollapseToExponentiation(); ok {
			return Reduce(f)
		}
	case *Exponentiation:
		if v, ok := x.AsNumber(); ok {
			return v
		}
	}
	return n
}

// reciprocal returns a node for 1/n.
func reciprocal(n Node) Node {
	switch n := n.(type) {
	case Number:
		return n.Reciprocal()
	case *Exponentiation:
		return NewExponentiation(n.base, n.power.negate())
	case *Product:
		q := NewProduct()
		q.scale(n.acc.Reciprocal())
		for _, t := range n.terms {
			q.PushNode(reciprocal(t))
		}
		return q
	}
	return NewExponentiation(n, negOne)
}
