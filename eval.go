package exactexpr

import (
	"io"
	"strings"
)

// Evaluator parses and evaluates expressions. An Evaluator is safe for
// concurrent use; the only state shared between evaluations is its Memo.
type Evaluator struct {
	memo      *Memo
	maxLength int
	maxDepth  int
	wseof     string
}

// NewEvaluator creates an evaluator. Without options, it uses DefaultMemo,
// DefaultMaxLength, and DefaultMaxDepth, and parses to the end of its input.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := Evaluator{
		maxLength: DefaultMaxLength,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case memoopt:
			ev.memo = opt.m
		case lenopt:
			ev.maxLength = int(opt)
		case depthopt:
			ev.maxDepth = int(opt)
		case eofopt:
			ev.wseof = string(opt)
		default:
			panic("exactexpr: unknown option type")
		}
	}
	if ev.memo == nil {
		ev.memo = DefaultMemo()
	}
	return &ev
}

// Memo returns the memo the evaluator uses.
func (ev *Evaluator) Memo() *Memo {
	return ev.memo
}

// Parse parses an expression into its display tree and its evaluation tree.
// The evaluation tree is already simplified as far as exact arithmetic
// allows. If the input is invalid, the error implements InputError.
func (ev *Evaluator) Parse(src io.RuneScanner) (*Expr, Node, error) {
	p := parsectx{
		memo:     ev.memo,
		maxDepth: ev.maxDepth,
		wseof:    ev.wseof,
	}
	n, v, err := parse(lex(src, ev.maxLength), &p)
	if err != nil {
		return nil, nil, err
	}
	return &Expr{n: n}, v, nil
}

// Evaluate parses an expression and computes its value.
func (ev *Evaluator) Evaluate(src io.RuneScanner) (*Result, error) {
	e, v, err := ev.Parse(src)
	if err != nil {
		return nil, err
	}
	r := Result{
		Expr:  e,
		Tree:  v,
		Value: ToNumber(v, ev.memo),
	}
	return &r, nil
}

// EvaluateString is a shortcut to parse and evaluate a string expression.
func (ev *Evaluator) EvaluateString(src string) (*Result, error) {
	return ev.Evaluate(strings.NewReader(src))
}

var defaultEvaluator = NewEvaluator()

// EvaluateString parses and evaluates a string expression with the default
// evaluator.
func EvaluateString(src string) (*Result, error) {
	return defaultEvaluator.EvaluateString(src)
}

// Result is the outcome of evaluating an expression.
type Result struct {
	// Expr is the expression as written.
	Expr *Expr
	// Tree is the simplified evaluation tree. Parts of it that are not exact
	// numbers, such as irrational roots, are kept symbolic.
	Tree Node
	// Value is the best number for the expression.
	Value Number
}

// TeX formats the expression as LaTeX-like markup.
func (r *Result) TeX() string {
	return r.Expr.TeX()
}

// String formats the expression and its value.
func (r *Result) String() string {
	return r.Expr.String() + " = " + r.Value.String()
}
