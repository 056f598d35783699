package memoize

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoize(t *testing.T) {
	assert := assert.New(t)
	m := New(func(x uint64) uint64 { return x * x })
	assert.Equal(uint64(9), m.Call(3))
	assert.Equal(uint64(9), m.Call(3))

	assert.Equal(uint64(1), m.Call(1))
	assert.Equal(uint64(4), m.Call(2))
	assert.Equal(uint64(1), m.Call(1))
}

func TestMemoizeCaches(t *testing.T) {
	assert := assert.New(t)

	calls := atomic.Int64{}
	m := New(func(x uint64) uint64 {
		calls.Add(1)
		return x + 1
	})
	m.Call(7)
	m.Call(7)
	m.Call(7)
	assert.Equal(int64(1), calls.Load())
}

func TestMemoizeConcurrent(t *testing.T) {
	m := New(func(x uint64) uint64 { return x * x })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			for x := uint64(0); x < 100; x++ {
				if got := m.Call(x); got != x*x {
					t.Errorf("Call(%d) = %d", x, got)
				}
			}
			wg.Done()
		}()
	}
	wg.Wait()
}

func TestMockMemoize(t *testing.T) {
	assert := assert.New(t)
	m := NewMock(func(x uint64) uint64 { return x * x })
	assert.Equal(uint64(9), m.Call(3))
	assert.Equal(uint64(9), m.Call(3))

	assert.Equal(uint64(1), m.Call(1))
	assert.Equal(uint64(4), m.Call(2))
	assert.Equal(uint64(1), m.Call(1))
}
