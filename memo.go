package exactexpr

import (
	"math/big"
	"strconv"
	"sync"
)

// FactorialCeiling is the largest integer whose factorial is computed
// exactly. Factorials of larger integers are ReallyBig.
const FactorialCeiling = 200

// PowerOfTenCacheSize is the number of powers of ten a Memo retains.
const PowerOfTenCacheSize = 1000

// Memo holds memoized factorials and powers of ten. The caches only affect
// speed, never results, so a Memo may be reset at any time. A Memo is safe
// for concurrent use. The zero value is an empty Memo ready to use.
//
// Integers returned from a Memo are shared and must not be modified.
type Memo struct {
	mu    sync.Mutex
	pow10 map[int]*big.Int
	fact  map[uint64]*big.Int
}

// NewMemo creates an empty Memo.
func NewMemo() *Memo {
	m := new(Memo)
	m.init()
	return m
}

// init creates the caches if they do not exist. The lock must be held, or the
// Memo must not yet be shared.
func (m *Memo) init() {
	if m.pow10 == nil {
		m.pow10 = make(map[int]*big.Int)
	}
	if m.fact == nil {
		m.fact = make(map[uint64]*big.Int, FactorialCeiling+1)
	}
}

var (
	defaultMemo     *Memo
	defaultMemoOnce sync.Once
)

// DefaultMemo returns the process-wide Memo used by evaluators created
// without WithMemo.
func DefaultMemo() *Memo {
	defaultMemoOnce.Do(func() { defaultMemo = NewMemo() })
	return defaultMemo
}

// PowerOfTen returns 10^p. Panics if p is negative.
func (m *Memo) PowerOfTen(p int) *big.Int {
	if p < 0 {
		panic("exactexpr: negative power of ten " + strconv.Itoa(p))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	if r := m.pow10[p]; r != nil {
		return r
	}
	r := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
	if len(m.pow10) >= PowerOfTenCacheSize {
		// Evict whatever the map gives us first.
		for k := range m.pow10 {
			delete(m.pow10, k)
			break
		}
	}
	m.pow10[p] = r
	return r
}

// Factorial returns n!. If n exceeds FactorialCeiling, the result is nil and
// false.
func (m *Memo) Factorial(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > FactorialCeiling {
		return nil, false
	}
	k := n.Uint64()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	if r := m.fact[k]; r != nil {
		return r, true
	}
	// Start from the largest cached factorial below k.
	j, r := uint64(0), bigOne
	for i := k; i > 0; i-- {
		if c := m.fact[i-1]; c != nil {
			j, r = i-1, c
			break
		}
	}
	for j < k {
		j++
		r = new(big.Int).Mul(r, new(big.Int).SetUint64(j))
		m.fact[j] = r
	}
	return r, true
}

// Reset clears both caches.
func (m *Memo) Reset() {
	m.mu.Lock()
	m.pow10, m.fact = nil, nil
	m.init()
	m.mu.Unlock()
}

// Len returns the number of cached powers of ten and factorials.
func (m *Memo) Len() (pow10, fact int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pow10), len(m.fact)
}
