package counter

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// RunAll runs every task in its own goroutine and returns once all of them
// have finished.
func RunAll(tasks []func()) {
	c := New()
	for _, task := range tasks {
		c.Add(1)
		go func() {
			task()
			c.Done()
		}()
	}
	c.Wait()
}

// ParallelSquareSum computes the sum of i*i for i < n with one goroutine per
// term. Each goroutine writes only its own slot, so the Counter join is the
// only synchronization needed; its zero transition makes every slot visible
// to the waiter.
func ParallelSquareSum(n uint64) uint64 {
	results := make([]uint64, n)
	c := New()
	for i := uint64(0); i < n; i++ {
		c.Add(1)
		go func() {
			results[i] = i * i
			c.Done()
		}()
	}
	c.Wait()
	var total uint64 = 0
	for i := uint64(0); i < n; i++ {
		total = std.SumAssumeNoOverflow(total, results[i])
	}
	return total
}

// SpawnSquareSum is ParallelSquareSum written with join handles instead of a
// Counter, for comparison.
func SpawnSquareSum(n uint64) uint64 {
	results := make([]uint64, n)
	var handles []*std.JoinHandle
	for i := uint64(0); i < n; i++ {
		h := std.Spawn(func() {
			results[i] = i * i
		})
		handles = append(handles, h)
	}
	for _, h := range handles {
		h.Join()
	}
	var total uint64 = 0
	for i := uint64(0); i < n; i++ {
		total = std.SumAssumeNoOverflow(total, results[i])
	}
	primitive.Assert(total == ParallelSquareSum(n))
	return total
}
