// Package memoize caches the results of a pure function of one argument. The
// cache is safe for concurrent use: hits take a shared (read) lock, so
// concurrent lookups of already-computed values do not serialize.
package memoize

import (
	"syncprim/rwmutex"
)

type Memoize struct {
	mu      *rwmutex.RWMutex
	f       func(uint64) uint64
	results map[uint64]uint64
}

// New creates a memoized version of f. f must be pure: if two goroutines race
// on the same uncached argument, f may run more than once for it, and one
// result is kept.
func New(f func(uint64) uint64) *Memoize {
	return &Memoize{
		mu:      rwmutex.New(),
		f:       f,
		results: make(map[uint64]uint64),
	}
}

// Call returns f(x), computing it only if no call has cached it yet.
func (m *Memoize) Call(x uint64) uint64 {
	m.mu.RLock()
	cached, ok := m.results[x]
	m.mu.RUnlock()
	if ok {
		return cached
	}
	y := m.f(x)
	m.mu.Lock()
	// another goroutine may have won the race for x; keep its result
	if prev, ok := m.results[x]; ok {
		y = prev
	} else {
		m.results[x] = y
	}
	m.mu.Unlock()
	return y
}

// MockMemoize has the same API as Memoize but with an implementation that
// doesn't actually save any results.
type MockMemoize struct {
	f func(uint64) uint64
}

func NewMock(f func(uint64) uint64) *MockMemoize {
	return &MockMemoize{f: f}
}

func (m *MockMemoize) Call(x uint64) uint64 {
	return m.f(x)
}
