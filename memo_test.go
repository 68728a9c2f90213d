package exactexpr

import (
	"math/big"
	"sync"
	"testing"
)

func TestMemoPowerOfTen(t *testing.T) {
	m := NewMemo()
	for _, p := range []int{0, 1, 5, 40} {
		want := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
		if got := m.PowerOfTen(p); got.Cmp(want) != 0 {
			t.Errorf("10^%d: want %v, got %v", p, want, got)
		}
	}
	if a, b := m.PowerOfTen(5), m.PowerOfTen(5); a != b {
		t.Errorf("10^5 was not cached")
	}
	if p, _ := m.Len(); p != 4 {
		t.Errorf("wrong cache size %d", p)
	}
}

func TestMemoPowerOfTenBound(t *testing.T) {
	m := NewMemo()
	for p := 0; p < PowerOfTenCacheSize+50; p++ {
		m.PowerOfTen(p)
	}
	if p, _ := m.Len(); p != PowerOfTenCacheSize {
		t.Errorf("cache grew to %d", p)
	}
	// Evicted entries are recomputed correctly.
	for p := 0; p < 50; p++ {
		want := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
		if got := m.PowerOfTen(p); got.Cmp(want) != 0 {
			t.Errorf("10^%d: want %v, got %v", p, want, got)
		}
	}
}

func TestMemoPowerOfTenNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative power did not panic")
		}
	}()
	NewMemo().PowerOfTen(-1)
}

func TestMemoFactorial(t *testing.T) {
	m := NewMemo()
	cases := []struct {
		n    int64
		want string
		ok   bool
	}{
		{0, "1", true},
		{1, "1", true},
		{5, "120", true},
		{3, "6", true},
		{25, "15511210043330985984000000", true},
		{20, "2432902008176640000", true},
		{FactorialCeiling + 1, "", false},
		{-1, "", false},
	}
	for _, c := range cases {
		got, ok := m.Factorial(big.NewInt(c.n))
		if ok != c.ok {
			t.Errorf("%d!: want ok=%t, got %t", c.n, c.ok, ok)
			continue
		}
		if ok && got.String() != c.want {
			t.Errorf("%d!: want %s, got %v", c.n, c.want, got)
		}
	}
	if got, ok := m.Factorial(big.NewInt(FactorialCeiling)); !ok || got.BitLen() < 1000 {
		t.Errorf("wrong %d!: %v", FactorialCeiling, got)
	}
	if _, f := m.Len(); f != FactorialCeiling {
		t.Errorf("wrong number of cached factorials %d", f)
	}
	m.Reset()
	if p, f := m.Len(); p != 0 || f != 0 {
		t.Errorf("reset left %d, %d", p, f)
	}
	if got, _ := m.Factorial(big.NewInt(6)); got.Int64() != 720 {
		t.Errorf("wrong 6! after reset: %v", got)
	}
}

func TestMemoConcurrent(t *testing.T) {
	m := NewMemo()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				m.PowerOfTen((i + k) % 30)
				m.Factorial(big.NewInt(int64((i * k) % FactorialCeiling)))
				if k%17 == i {
					m.Reset()
				}
			}
		}(i)
	}
	wg.Wait()
	if got, _ := m.Factorial(big.NewInt(10)); got.Int64() != 3628800 {
		t.Errorf("wrong 10! after concurrent use: %v", got)
	}
}

func TestDefaultMemo(t *testing.T) {
	if DefaultMemo() != DefaultMemo() {
		t.Error("default memo is not shared")
	}
	if NewEvaluator().Memo() != DefaultMemo() {
		t.Error("evaluator does not use the default memo")
	}
}

func TestMemoZeroValue(t *testing.T) {
	var m Memo
	if p, f := m.Len(); p != 0 || f != 0 {
		t.Errorf("zero memo has %d powers of ten, %d factorials", p, f)
	}
	if got := m.PowerOfTen(3); got.Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("10^3: got %v", got)
	}
	if got, ok := m.Factorial(big.NewInt(5)); !ok || got.Cmp(big.NewInt(120)) != 0 {
		t.Errorf("5!: got %v, %t", got, ok)
	}
	var r Memo
	r.Reset()
	if got := r.PowerOfTen(2); got.Cmp(big.NewInt(100)) != 0 {
		t.Errorf("10^2 after reset: got %v", got)
	}
}
