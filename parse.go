package exactexpr

// Expr  = Term { ('+' | '-') Term }
// Term  = Power { ('*' | '/' | '×' | '÷') Power }
// Power = Factor { '^' Factor }    (right-associative)
// Factor = { '√' } Atom { '!' }
// Atom = ['+' | '-'] num | '(' Expr ')'
// num  = digits ['.' [digits] ['(' digits ')']] | '.' digits ['(' digits ')']

// parsectx holds general data for parsing.
type parsectx struct {
	// memo holds cached powers of ten and factorials for exact arithmetic.
	memo *Memo
	// depth is the current nesting depth of brackets and radicals.
	depth int
	// maxDepth is the limit on depth, or 0 for no limit.
	maxDepth int
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
}

// enter increases the nesting depth, returning an error if it exceeds the
// limit.
func (p *parsectx) enter(pos int) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return &LimitError{Col: pos, Limit: "depth", Max: p.maxDepth}
	}
	return nil
}

// parse parses a complete expression.
func parse(scan *lexer, p *parsectx) (*node, Node, error) {
	n, v, err := parseexpr(scan, p)
	if err != nil {
		return nil, nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	default:
		return nil, nil, itShouldNotHaveEndedThisWay(tok, "")
	}
	return n, Reduce(v), nil
}

// parseexpr parses a sum of terms. If there is no error, then parseexpr
// pushes the last token it scans, including EOF.
func parseexpr(scan *lexer, p *parsectx) (*node, *Sum, error) {
	n, v, err := parseterm(scan, p)
	if err != nil {
		return nil, nil, err
	}
	sum := NewSum()
	sum.Push(v)
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, nil, err
		}
		op := binop(tok.text)
		if tok.kind != tokenOp || op.prec != addprec {
			scan.push(tok)
			return n, sum, nil
		}
		rn, rv, err := parseterm(scan, p)
		if err != nil {
			return nil, nil, err
		}
		if op.op == nodeSub {
			rv = rv.negated()
		}
		sum.Push(rv)
		n = &node{kind: op.op, left: n, right: rn}
	}
}

// parseterm parses a product or quotient of powers. If there is no error,
// then parseterm pushes the last token it scans.
func parseterm(scan *lexer, p *parsectx) (*node, *Product, error) {
	n, v, err := parsepower(scan, p)
	if err != nil {
		return nil, nil, err
	}
	prod := NewProduct()
	prod.PushNode(v)
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, nil, err
		}
		op := binop(tok.text)
		if tok.kind != tokenOp || op.prec != mulprec {
			scan.push(tok)
			return n, prod, nil
		}
		rn, rv, err := parsepower(scan, p)
		if err != nil {
			return nil, nil, err
		}
		if op.op == nodeDiv {
			rv = reciprocal(rv)
		}
		prod.PushNode(rv)
		n = &node{kind: op.op, left: n, right: rn}
	}
}

// parsepower parses a right-associative chain of exponentiations. If there
// is no error, then parsepower pushes the last token it scans.
func parsepower(scan *lexer, p *parsectx) (*node, Node, error) {
	n, v, err := parsefactor(scan, p)
	if err != nil {
		return nil, nil, err
	}
	ns, vs := []*node{n}, []Node{v}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, nil, err
		}
		if tok.kind != tokenOp || binop(tok.text).prec != powprec {
			scan.push(tok)
			break
		}
		n, v, err := parsefactor(scan, p)
		if err != nil {
			return nil, nil, err
		}
		ns, vs = append(ns, n), append(vs, v)
	}
	// Fold from the right: a ^ b ^ c = a ^ (b ^ c).
	k := len(ns) - 1
	n, v = ns[k], vs[k]
	for i := k - 1; i >= 0; i-- {
		n = &node{kind: nodeExp, left: ns[i], right: n}
		v = NewExponentiation(vs[i], v)
	}
	return n, v, nil
}

// parsefactor parses a number or bracketed expression with any radicals
// before it and factorials after it.
func parsefactor(scan *lexer, p *parsectx) (*node, Node, error) {
	tok, err := scan.next("")
	if err != nil {
		return nil, nil, err
	}
	radicals := 0
	for tok.kind == tokenRadical {
		if err := p.enter(tok.pos); err != nil {
			return nil, nil, err
		}
		radicals++
		tok, err = scan.next("")
		if err != nil {
			return nil, nil, err
		}
	}
	var n *node
	var v Node
	switch tok.kind {
	case tokenNum:
		n, v = literal(p, "", tok)
	case tokenOp:
		if tok.text != "+" && tok.text != "-" {
			return nil, nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		num, err := scan.next("")
		if err != nil {
			return nil, nil, err
		}
		if num.kind != tokenNum {
			return nil, nil, &SignError{Col: tok.pos, Sign: tok.text}
		}
		n, v = literal(p, tok.text, num)
	case tokenOpen:
		if err := p.enter(tok.pos); err != nil {
			return nil, nil, err
		}
		in, sum, err := parseexpr(scan, p)
		if err != nil {
			return nil, nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, nil, itShouldNotHaveEndedThisWay(end, tok.text)
		}
		p.depth--
		n, v = &node{kind: nodeParen, left: in}, Reduce(sum)
	case tokenBang:
		return nil, nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
	case tokenClose:
		return nil, nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("exactexpr: unknown token: " + tok.String())
	}
	for ; radicals > 0; radicals-- {
		n = &node{kind: nodeRadical, left: n}
		v = NewExponentiation(v, half)
		p.depth--
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, nil, err
		}
		if tok.kind != tokenBang {
			scan.push(tok)
			return n, v, nil
		}
		n = &node{kind: nodeFactorial, left: n}
		v = NewFactorial(v, p.memo)
	}
}

// literal creates the nodes for a number token with an optional sign.
func literal(p *parsectx, sign string, tok lexToken) (*node, Number) {
	text := tok.text
	if text[0] == '.' {
		text = "0" + text
	}
	if sign == "-" {
		text = "-" + text
	}
	return &node{kind: nodeNum, text: text, repeat: tok.repeat}, decimalNumber(p.memo, text, tok.repeat)
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is the bracket that the
// expression should have closed, or empty if none.
func itShouldNotHaveEndedThisWay(tok lexToken, open string) error {
	switch tok.kind {
	case tokenEOF:
		if open == "" {
			panic("exactexpr: it really should not have ended this way: " + tok.String())
		}
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: open}
	case tokenClose:
		if open != "" {
			panic("exactexpr: it really should not have ended this way: " + tok.String())
		}
		return &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return &TrailingError{Col: tok.pos, Text: tok.text}
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

const (
	addprec int8 = 1
	mulprec int8 = 5
	powprec int8 = 15
)

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{addprec, false, nodeAdd}
	case "-":
		return operator{addprec, false, nodeSub}
	case "*":
		return operator{mulprec, false, nodeMul}
	case "/":
		return operator{mulprec, false, nodeDiv}
	case "^":
		return operator{powprec, true, nodeExp}
	default:
		return operator{}
	}
}
