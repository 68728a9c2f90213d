package exactexpr

import (
	"strconv"
	"strings"
)

// node is a node in the display tree of an expression. The display tree
// records exactly what was written, including parentheses, and is never
// simplified.
type node struct {
	kind nodeKind

	// text is the literal of a nodeNum, normalized so that it has no plus
	// sign and no bare leading decimal point.
	text string
	// repeat is the repeating digit block of a nodeNum.
	repeat string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal text and repeat

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodeExp // left ^ right

	nodeParen     // (left)
	nodeFactorial // left!
	nodeRadical   // √left
)

var nodeNames = [...]string{
	nodeNone:      "None",
	nodeNum:       "Num",
	nodeAdd:       "Add",
	nodeSub:       "Sub",
	nodeMul:       "Mul",
	nodeDiv:       "Div",
	nodeExp:       "Exp",
	nodeParen:     "Paren",
	nodeFactorial: "Factorial",
	nodeRadical:   "Radical",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeNames[k]
}

var binops = map[nodeKind]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodeExp: " ^ ",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n as plain text that parses back to the same display tree.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.text)
		if n.repeat != "" {
			b.WriteByte('(')
			b.WriteString(n.repeat)
			b.WriteByte(')')
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeExp:
		n.left.fmt(b)
		b.WriteString(binops[n.kind])
		n.right.fmt(b)
	case nodeParen:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFactorial:
		n.left.fmt(b)
		b.WriteString(" !")
	case nodeRadical:
		b.WriteString("√ ")
		n.left.fmt(b)
	default:
		panic("exactexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// tex writes n as LaTeX-like markup.
func (n *node) tex(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.text)
		if n.repeat != "" {
			b.WriteString(`\overline{`)
			b.WriteString(n.repeat)
			b.WriteByte('}')
		}
	case nodeAdd:
		n.left.tex(b)
		b.WriteByte('+')
		n.right.tex(b)
	case nodeSub:
		n.left.tex(b)
		b.WriteByte('-')
		n.right.tex(b)
	case nodeMul:
		n.left.tex(b)
		b.WriteString(`\times `)
		n.right.tex(b)
	case nodeDiv:
		b.WriteString(`\frac{`)
		n.left.tex(b)
		b.WriteString("}{")
		n.right.tex(b)
		b.WriteByte('}')
	case nodeExp:
		if n.left.kind == nodeNum && strings.HasPrefix(n.left.text, "-") || n.left.kind == nodeExp {
			b.WriteByte('{')
			n.left.tex(b)
			b.WriteByte('}')
		} else {
			n.left.tex(b)
		}
		b.WriteString("^{")
		n.right.tex(b)
		b.WriteByte('}')
	case nodeParen:
		b.WriteString(`\left(`)
		n.left.tex(b)
		b.WriteString(`\right)`)
	case nodeFactorial:
		n.left.tex(b)
		b.WriteByte('!')
	case nodeRadical:
		b.WriteString(`\sqrt{`)
		n.left.tex(b)
		b.WriteByte('}')
	default:
		panic("exactexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// Expr is the display tree of a parsed expression.
type Expr struct {
	n *node
}

// String formats the expression as plain text. Parsing the result produces
// the same expression.
func (e *Expr) String() string {
	return e.n.String()
}

// TeX formats the expression as LaTeX-like markup.
func (e *Expr) TeX() string {
	var b strings.Builder
	e.n.tex(&b)
	return b.String()
}
