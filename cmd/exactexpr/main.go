package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/exactexpr"
)

// formats maps output format names to their formatting functions.
var formats = map[string]func(r *exactexpr.Result) string{
	"value": func(r *exactexpr.Result) string {
		return r.Value.String()
	},
	"tex": func(r *exactexpr.Result) string {
		return r.TeX()
	},
	"plain": func(r *exactexpr.Result) string {
		return r.Expr.String()
	},
	"decimal": func(r *exactexpr.Result) string {
		if s, ok := r.Value.Decimal(); ok {
			return s
		}
		return r.Value.String()
	},
	"all": func(r *exactexpr.Result) string {
		return r.String() + "\t" + r.TeX()
	},
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	cfgFile   string
	inname    string
	format    string
	maxLength int
	maxDepth  int
	nl        bool
	echo      bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "exactexpr [flags] [expression...]",
		Short: "Evaluate arithmetic expressions exactly",
		Long: `exactexpr evaluates arithmetic expressions, keeping results exact
wherever they can be represented exactly.

Expressions are taken from the arguments, or from --in or standard input
when there are no arguments. Example:

  exactexpr '(2 ^ 3) ! / 5.6' '1.0(44)' '√ 2'`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.cfgFile, "config", "", "TOML config file")
	fl.StringVar(&f.inname, "in", "", "input file (default stdin if no args given)")
	fl.StringVar(&f.format, "format", "all", "output format: value, tex, plain, decimal, or all")
	fl.IntVar(&f.maxLength, "max-length", exactexpr.DefaultMaxLength, "maximum runes per expression (0 for no limit)")
	fl.IntVar(&f.maxDepth, "max-depth", exactexpr.DefaultMaxDepth, "maximum nesting of brackets and radicals (0 for no limit)")
	fl.BoolVarP(&f.nl, "lines", "n", false, "parse separate input lines as separate expressions")
	fl.BoolVar(&f.echo, "echo", false, "print simplified evaluation trees")
	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg := DefaultConfig()
	if f.cfgFile != "" {
		c, err := LoadConfig(f.cfgFile)
		if err != nil {
			return err
		}
		cfg = c
	}
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("max-length") {
		cfg.MaxLength = f.maxLength
	}
	if fl.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	opts := cfg.options()
	if f.nl {
		opts = append(opts, exactexpr.StopOn('\n'))
	}
	ev := exactexpr.NewEvaluator(opts...)
	format := formats[cfg.Format]

	var ins []io.RuneScanner
	in, c, err := infile(f.inname, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if c != nil {
		defer c.Close()
	}
	if in != nil {
		ins = append(ins, in)
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}

	out := cmd.OutOrStdout()
	total, failed := 0, 0
	eval := func(in io.RuneScanner) bool {
		total++
		r, err := ev.Evaluate(in)
		if err != nil {
			log.Print(err)
			failed++
			return false
		}
		if f.echo {
			fmt.Fprintf(out, "%v : ", r.Tree)
		}
		fmt.Fprintln(out, format(r))
		return true
	}
	for _, in := range ins {
		if !f.nl {
			eval(in)
			continue
		}
		src := &lineScanner{RuneScanner: in}
		for {
			more, err := src.more()
			if err != nil {
				return err
			}
			if !more {
				break
			}
			if !eval(src) {
				if err := src.skipLine(); err != nil {
					return err
				}
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, total)
	}
	return nil
}

// lineScanner tracks whether the last rune read from a source ended a line,
// so that a line holding an invalid expression can be skipped.
type lineScanner struct {
	io.RuneScanner
	eol, prev bool
}

func (s *lineScanner) ReadRune() (rune, int, error) {
	r, n, err := s.RuneScanner.ReadRune()
	s.prev, s.eol = s.eol, err == nil && r == '\n'
	return r, n, err
}

func (s *lineScanner) UnreadRune() error {
	if err := s.RuneScanner.UnreadRune(); err != nil {
		return err
	}
	s.eol = s.prev
	return nil
}

// more skips leading whitespace and reports whether any input remains.
func (s *lineScanner) more() (bool, error) {
	for {
		r, _, err := s.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if !unicode.IsSpace(r) {
			return true, s.UnreadRune()
		}
	}
}

// skipLine discards the rest of the current line.
func (s *lineScanner) skipLine() error {
	for !s.eol {
		if _, _, err := s.ReadRune(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// infile opens the expression input. The returned closer is nil unless a
// named file was opened.
func infile(inname string, std bool, stdin io.Reader) (*bufio.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return bufio.NewReader(in), in, nil
	case inname == "-", std:
		return bufio.NewReader(stdin), nil, nil
	}
	return nil, nil, nil
}
