package exactexpr

import (
	"strconv"
	"unicode"
)

// Option is an option used when creating an Evaluator.
type Option interface {
	evalOption()
}

type (
	memoopt  struct{ m *Memo }
	lenopt   int
	depthopt int
	eofopt   string
)

func (memoopt) evalOption()  {}
func (lenopt) evalOption()   {}
func (depthopt) evalOption() {}
func (eofopt) evalOption()   {}

// Default limits for evaluators.
const (
	DefaultMaxLength = 1024
	DefaultMaxDepth  = 256
)

// WithMemo sets the memo an evaluator uses for factorials and powers of ten.
// By default, evaluators share DefaultMemo.
func WithMemo(m *Memo) Option {
	if m == nil {
		panic("exactexpr: nil memo")
	}
	return memoopt{m}
}

// WithMaxLength limits the number of runes in an expression. Zero means no
// limit. Panics if n is negative.
func WithMaxLength(n int) Option {
	if n < 0 {
		panic("exactexpr: negative max length " + strconv.Itoa(n))
	}
	return lenopt(n)
}

// WithMaxDepth limits the nesting of brackets and radicals in an expression.
// Zero means no limit. Panics if n is negative.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic("exactexpr: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression, so that several expressions can be read from one source.
// Whitespace does not end an expression where a number is expected, e.g. at
// the beginning of an expression or following an operator or bracket.
// Panics if any rune is not whitespace.
//
// StopOn overrides the effect of any previous StopOn. With no arguments,
// StopOn produces the default termination behavior, which is to parse to EOF.
func StopOn(chars ...rune) Option {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("exactexpr: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return eofopt(string(v))
}
