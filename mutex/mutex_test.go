package mutex

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockUnlock(t *testing.T) {
	m := New()
	m.Lock()
	m.Unlock()
	m.Lock()
	m.Unlock()
}

func TestUnlockOfUnlockedPanics(t *testing.T) {
	assert := assert.New(t)

	m := New()
	assert.Panics(func() { m.Unlock() })

	m.Lock()
	m.Unlock()
	assert.Panics(func() { m.Unlock() })
}

func TestTryLock(t *testing.T) {
	assert := assert.New(t)

	m := New()
	assert.True(m.TryLock())
	assert.False(m.TryLock())
	m.Unlock()
	assert.True(m.TryLock())
	m.Unlock()
}

func TestUnlockFromOtherGoroutine(t *testing.T) {
	// a locked Mutex is not associated with a particular goroutine
	m := New()
	m.Lock()
	done := make(chan struct{})
	go func() {
		m.Unlock()
		close(done)
	}()
	<-done
	m.Lock()
	m.Unlock()
}

func TestMutualExclusion(t *testing.T) {
	m := New()
	inside := atomic.Int64{}
	var counter uint64

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			for j := 0; j < 100; j++ {
				m.Lock()
				if n := inside.Add(1); n != 1 {
					t.Errorf("%d holders inside the critical section", n)
				}
				counter++
				inside.Add(-1)
				m.Unlock()
			}
			wg.Done()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(2000), counter)
}
