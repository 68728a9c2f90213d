package exactexpr

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"2.", []lexToken{{text: "2.", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{"1a", []lexToken{{pos: 1}}, 1},
		{"1e1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 3}}, 1},
		// repeating decimals
		{"1.0(44)", []lexToken{{text: "1.0", kind: tokenNum, pos: 1, repeat: "44"}}, 0},
		{"0.(9)", []lexToken{{text: "0.", kind: tokenNum, pos: 1, repeat: "9"}}, 0},
		{".(3)", []lexToken{{text: ".", kind: tokenNum, pos: 1, repeat: "3"}}, 0},
		{"1(2)", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}, {text: "2", kind: tokenNum, pos: 3}, {text: ")", kind: tokenClose, pos: 4}}, 0},
		{"1.(2", []lexToken{{pos: 1}}, 1},
		{"1.()", []lexToken{{pos: 1}}, 1},
		{"1.(2a)", []lexToken{{pos: 1}, {text: ")", kind: tokenClose, pos: 6}}, 1},
		{"1.(2)3", []lexToken{{text: "1.", kind: tokenNum, pos: 1, repeat: "2"}, {text: "3", kind: tokenNum, pos: 6}}, 0},
		// operators
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1×0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1÷0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "/", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"++", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}}, 0},
		{"^", []lexToken{{text: "^", kind: tokenOp, pos: 1}}, 0},
		{"3!!", []lexToken{{text: "3", kind: tokenNum, pos: 1}, {text: "!", kind: tokenBang, pos: 2}, {text: "!", kind: tokenBang, pos: 3}}, 0},
		{"√√2", []lexToken{{text: "√", kind: tokenRadical, pos: 1}, {text: "√", kind: tokenRadical, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		// brackets
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"[", []lexToken{{pos: 1}}, 1},
		{"x", []lexToken{{pos: 1}}, 1},
		{"$0", []lexToken{{pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src), 0)
		for _, want := range c.tokens {
			got, err := scan.next("")
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(""); err != io.EOF; got, err = scan.next("") {
			if got.kind == tokenEOF && err == nil {
				continue
			}
			if c.errs > 0 {
				c.errs--
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexStop(t *testing.T) {
	scan := lex(strings.NewReader("1\n2"), 0)
	tok, err := scan.next("\n")
	if err != nil || tok.kind != tokenNum || tok.text != "1" {
		t.Fatalf("wrong first token %v, error %v", tok, err)
	}
	tok, err = scan.next("\n")
	if err != nil || tok.kind != tokenEOF {
		t.Fatalf("wrong stop token %v, error %v", tok, err)
	}
	if _, err := scan.next("\n"); err != io.EOF {
		t.Errorf("wrong error after stop: %v", err)
	}
}

func TestLexLimit(t *testing.T) {
	scan := lex(strings.NewReader("12345"), 4)
	_, err := scan.next("")
	var le *LimitError
	if !errors.As(err, &le) {
		t.Fatalf("wrong error %#v", err)
	}
	if le.Limit != "length" || le.Max != 4 || le.Pos() != 5 {
		t.Errorf("wrong limit error %#v", le)
	}
}
