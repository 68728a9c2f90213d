package exactexpr

import (
	"strings"
	"testing"
)

func TestDecimalNumber(t *testing.T) {
	m := NewMemo()
	cases := []struct {
		lit, repeat string
		want        Number
	}{
		{"0", "", Number{}},
		{"-0.000", "", Number{}},
		{"12", "", Int64(12)},
		{"-44.000000", "", Int64(-44)},
		{"+7.", "", Int64(7)},
		{"1.625", "", rat(false, 13, 8)},
		{"-0.456", "", rat(true, 57, 125)},
		{"0.5", "", half},
		{"1.0", "44", rat(false, 47, 45)},
		{"0.", "3", rat(false, 1, 3)},
		{"-0.", "9", Int64(-1)},
		{"0.1", "6", rat(false, 1, 6)},
		{"2.", "142857", rat(false, 15, 7)},
		{"0.", "09", rat(false, 1, 11)},
		{"-1.2", "0", rat(true, 6, 5)},
	}
	for _, c := range cases {
		if got := decimalNumber(m, c.lit, c.repeat); !got.Equal(c.want) {
			t.Errorf("%s(%s): want %#v, got %#v", c.lit, c.repeat, c.want, got)
		}
	}
}

func TestDecimal(t *testing.T) {
	cases := []struct {
		n    Number
		want string
		ok   bool
	}{
		{Number{}, "0", true},
		{Int64(-12), "-12", true},
		{rat(false, 13, 8), "1.625", true},
		{rat(true, 57, 125), "-0.456", true},
		{rat(false, 47, 45), "1.0(4)", true},
		{rat(false, 1, 3), "0.(3)", true},
		{rat(true, 1, 6), "-0.1(6)", true},
		{rat(false, 15, 7), "2.(142857)", true},
		{rat(false, 1, 11), "0.(09)", true},
		{rat(false, 1, 12), "0.08(3)", true},
		{rat(false, 1, 80), "0.0125", true},
		{NewRounded(0.5), "", false},
		{ReallyBig(false), "", false},
		{NaN(), "", false},
	}
	for _, c := range cases {
		got, ok := c.n.Decimal()
		if got != c.want || ok != c.ok {
			t.Errorf("%#v: want %q %t, got %q %t", c.n, c.want, c.ok, got, ok)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	m := NewMemo()
	srcs := []Number{
		rat(false, 1, 7),
		rat(true, 22, 7),
		rat(false, 1234567, 1000),
		rat(false, 355, 113),
		rat(true, 1, 9801),
		rat(false, 5, 2048),
	}
	for _, x := range srcs {
		s, ok := x.Decimal()
		if !ok {
			t.Errorf("%v has no decimal", x)
			continue
		}
		lit, repeat := s, ""
		if i := strings.IndexByte(s, '('); i >= 0 {
			lit, repeat = s[:i], s[i+1:len(s)-1]
		}
		if got := decimalNumber(m, lit, repeat); !got.Equal(x) {
			t.Errorf("%v formatted as %s, which is %v", x, s, got)
		}
	}
}

func TestDecimalMaxRepeat(t *testing.T) {
	// The period of 1/(17*19*23*29) is lcm(16, 18, 22, 28) = 11088.
	if s, ok := rat(false, 1, 17*19*23*29).Decimal(); ok || s != "" {
		t.Errorf("decimal with long period was written: %d bytes", len(s))
	}
	// The period of 1/(7*17) is lcm(6, 16) = 48.
	s, ok := rat(false, 1, 7*17).Decimal()
	if !ok {
		t.Fatal("1/119 was not written")
	}
	if i := strings.IndexByte(s, '('); i < 0 || len(s)-i-2 != 48 {
		t.Errorf("1/119 has wrong period: %s", s)
	}
}
