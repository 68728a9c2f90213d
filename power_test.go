package exactexpr

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPow(t *testing.T) {
	huge := NewInteger(false, new(big.Int).Lsh(bigOne, 2000))
	cases := []struct {
		name string
		b, p Number
		want Node
	}{
		{"zero-power", Int64(-7), Number{}, Int64(1)},
		{"inf-zero", Infinity(false), Number{}, NaN()},
		{"nan-zero", NaN(), Number{}, NaN()},
		{"zero-pos", Number{}, Int64(3), Number{}},
		{"zero-neg", Number{}, Int64(-3), Infinity(false)},
		{"zero-unknown", Number{}, Unknown(), Unknown()},
		{"one-big", Int64(1), ReallyBig(false), Int64(1)},
		{"int-int", Int64(-3), Int64(3), Int64(-27)},
		{"int-neg", Int64(-3), Int64(-3), rat(true, 1, 27)},
		{"int-root", Int64(27), rat(false, 2, 3), Int64(9)},
		{"int-neg-root", Int64(-27), rat(true, 1, 3), rat(true, 1, 3)},
		{"int-irrational", Int64(3), rat(false, 3, 2), &Exponentiation{base: Int64(27), power: half}},
		{"int-irrational-neg", Int64(3), rat(true, 1, 2), &Exponentiation{base: rat(false, 1, 3), power: half}},
		{"int-overflow", Int64(2), Int64(MaxPowBits + 1), ReallyBig(false)},
		{"int-underflow", Int64(-2), Int64(-MaxPowBits - 1), ReallySmall(true)},
		{"int-rounded", Int64(4), NewRounded(0.5), NewRounded(2)},
		{"huge-rounded", huge, NewRounded(0.5), Unknown()},
		{"int-big", Int64(3), ReallyBig(false), ReallyBig(false)},
		{"int-neg-big", Int64(3), ReallyBig(true), ReallySmall(false)},
		{"neg-int-big", Int64(-3), ReallyBig(false), Unknown()},
		{"int-small", Int64(3), ReallySmall(false), Unknown()},
		{"int-inf", Int64(3), Infinity(false), NaN()},
		{"rat-int", rat(false, 2, 3), Int64(-2), rat(false, 9, 4)},
		{"unit-rat-recip", rat(false, 1, 2), Int64(-1), Int64(2)},
		{"unit-rat-recip-sq", rat(true, 1, 3), Int64(-2), Int64(9)},
		{"unit-rat-root-recip", rat(false, 1, 4), rat(true, 1, 2), Int64(2)},
		{"unit-rat-irrational-recip", rat(false, 1, 2), rat(true, 1, 2), &Exponentiation{base: Int64(2), power: half}},
		{"rat-root", rat(true, 8, 27), rat(false, 1, 3), rat(true, 2, 3)},
		{"rat-irrational", rat(false, 1, 2), rat(false, 1, 2), &Exponentiation{base: half, power: half}},
		{"rat-overflow", rat(false, 3, 2), Int64(MaxPowBits + 1), ReallyBig(false)},
		{"rat-shrink", rat(false, 2, 3), Int64(MaxPowBits + 1), ReallySmall(false)},
		{"rat-overflow-neg", rat(false, 3, 2), Int64(-MaxPowBits - 1), ReallySmall(false)},
		{"rat-overflow-sign", rat(true, 3, 2), Int64(MaxPowBits + 1), ReallyBig(true)},
		{"rat-rounded", rat(false, 1, 4), NewRounded(0.5), NewRounded(0.5)},
		{"rounded-int", NewRounded(1.5), Int64(2), NewRounded(2.25)},
		{"rounded-rat", NewRounded(9), half, NewRounded(3)},
		{"rounded-big", NewRounded(9), ReallyBig(false), Unknown()},
		{"big-int", ReallyBig(true), Int64(3), ReallyBig(true)},
		{"big-even", ReallyBig(true), Int64(2), ReallyBig(false)},
		{"big-neg", ReallyBig(false), Int64(-1), ReallySmall(false)},
		{"small-int", ReallySmall(false), Int64(2), ReallySmall(false)},
		{"small-neg", ReallySmall(true), Int64(-3), ReallyBig(true)},
		{"big-big", ReallyBig(false), ReallyBig(false), ReallyBig(false)},
		{"small-big", ReallySmall(false), ReallyBig(false), ReallySmall(false)},
		{"neg-big-big", ReallyBig(true), ReallyBig(false), Unknown()},
		{"big-rat", ReallyBig(false), half, Unknown()},
		{"big-inf", ReallyBig(false), Infinity(false), NaN()},
		{"inf-int", Infinity(true), Int64(3), Infinity(true)},
		{"inf-even", Infinity(true), Int64(2), Infinity(false)},
		{"inf-neg", Infinity(false), Int64(-2), Number{}},
		{"inf-rat", Infinity(false), half, Infinity(false)},
		{"neg-inf-rat", Infinity(true), half, Unknown()},
		{"inf-neg-rounded", Infinity(false), NewRounded(-0.5), Number{}},
		{"inf-inf", Infinity(false), Infinity(false), NaN()},
		{"unknown", Unknown(), Int64(2), Unknown()},
		{"nan", NaN(), Int64(2), NaN()},
	}
	opts := cmp.Options{cmp.Comparer(Number.Equal), cmp.AllowUnexported(Exponentiation{})}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, c.b.Pow(c.p), opts); diff != "" {
				t.Errorf("%#v ^ %#v (-want +got):\n%s", c.b, c.p, diff)
			}
		})
	}
}

func TestFloatPow(t *testing.T) {
	huge := NewInteger(false, new(big.Int).Lsh(bigOne, 2000))
	cases := []struct {
		name string
		b, p Number
		want Number
	}{
		{"small", Int64(2), half, NewRounded(math.Sqrt2)},
		{"neg", Int64(-2), half, NaN()},
		{"huge-root", huge, half, NewRounded(math.Ldexp(1, 1000))},
		{"huge-tiny", huge, rat(false, 1, 4000), NewRounded(math.Sqrt2)},
		{"huge-big", huge, Int64(3), ReallyBig(false)},
		{"huge-neg", huge.Negate(), half, NaN()},
		{"huge-shrink", huge, Int64(-3), ReallySmall(false)},
		{"big-power", Int64(2), ReallyBig(false), Unknown()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := floatPow(c.b, c.p)
			if got.Kind() != c.want.Kind() {
				t.Fatalf("%#v ^ %#v: want %#v, got %#v", c.b, c.p, c.want, got)
			}
			if got.Kind() != KindRounded {
				if !got.Equal(c.want) {
					t.Errorf("%#v ^ %#v: want %#v, got %#v", c.b, c.p, c.want, got)
				}
				return
			}
			if math.Abs(got.f-c.want.f) > 1e-12*math.Abs(c.want.f) {
				t.Errorf("%#v ^ %#v: want %#v, got %#v", c.b, c.p, c.want, got)
			}
		})
	}
}
