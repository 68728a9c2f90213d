package exactexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// repeat is the repeating digit block of a number token.
	repeat string
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal, possibly with a repeating block.
	tokenNum
	// tokenOp is a binary operator or a sign.
	tokenOp
	// tokenBang is the factorial operator !.
	tokenBang
	// tokenRadical is the square root operator √.
	tokenRadical
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

var tokenNames = [...]string{
	tokenNone:    "None",
	tokenEOF:     "EOF",
	tokenNum:     "Num",
	tokenOp:      "Op",
	tokenBang:    "Bang",
	tokenRadical: "Radical",
	tokenOpen:    "Open",
	tokenClose:   "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// Operators contains the runes which are considered to be binary operators.
// × and ÷ are synonyms for * and /.
const Operators = "+-*/^×÷"

var operstrs = map[rune]string{
	'+': "+",
	'-': "-",
	'*': "*",
	'/': "/",
	'^': "^",
	'×': "*",
	'÷': "/",
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rep  strings.Builder
	rune int
	max  int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner, max int) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
		max:  max,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("exactexpr: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("exactexpr: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
// Reading past the lexer's maximum length is an error.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
		if l.max > 0 && l.rune-1 > l.max {
			return r, &LimitError{Col: l.rune - 1, Limit: "length", Max: l.max}
		}
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, if the EOF token is not pushed, the result is an
// empty token with io.EOF. Whitespace runes in wseof are treated as EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	defer l.rep.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.repeat = l.rep.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '!':
			tok.text = "!"
			tok.kind = tokenBang
			return tok, nil
		case r == '√':
			tok.text = "√"
			tok.kind = tokenRadical
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		default:
			if s, ok := operstrs[r]; ok {
				tok.text = s
				tok.kind = tokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a decimal literal into l.buf. A literal that contains a
// decimal point may be followed immediately by a parenthesized block of
// digits that repeats forever, which is scanned into l.rep.
func (l *lexer) scanNum() error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
			dig = true
			continue
		case r == '.':
			l.buf.WriteRune(r)
			if dot {
				return l.error("number")
			}
			dot = true
			continue
		case r == '(' && dot:
			if err := l.scanRepeat(); err != nil {
				return err
			}
			dig = true
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
			return l.error("number")
		default:
			l.unreadRune()
		}
		break
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

// scanRepeat scans the digits and close parenthesis of a repeating block.
// The open parenthesis has already been read.
func (l *lexer) scanRepeat() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.buf.WriteString("(" + l.rep.String())
				return l.error("repeating decimal")
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			l.rep.WriteRune(r)
		case r == ')' && l.rep.Len() > 0:
			return nil
		default:
			l.buf.WriteString("(" + l.rep.String())
			l.buf.WriteRune(r)
			return l.error("repeating decimal")
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune - 1,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "repeating decimal", or the empty string (if a token kind hadn't been
	// decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
