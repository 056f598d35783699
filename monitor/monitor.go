// Package monitor combines a mutex and a condition variable into the classic
// monitor pattern: shared state is mutated only under the lock, and waiters
// re-check their predicate in a loop after every wake-up.
package monitor

import (
	"syncprim/cond"
	"syncprim/mutex"
)

// A Monitor guards caller-owned state. Every mutation should go through
// Locked so waiters are notified; every predicate wait should go through
// Await or AwaitLocked.
type Monitor struct {
	mu   *mutex.Mutex
	cond *cond.Cond
}

// New creates a Monitor. A Monitor must not be copied after creation; share
// the returned pointer.
func New() *Monitor {
	mu := mutex.New()
	return &Monitor{mu: mu, cond: cond.New(mu)}
}

// Locked runs f while holding the monitor lock, then wakes all waiters so
// they can re-check their predicates.
func (m *Monitor) Locked(f func()) {
	m.mu.Lock()
	f()
	m.mu.Unlock()
	m.cond.Broadcast()
}

// Await blocks until pred returns true. pred is only ever evaluated while
// holding the monitor lock.
func (m *Monitor) Await(pred func() bool) {
	m.mu.Lock()
	for !pred() {
		m.cond.Wait()
	}
	m.mu.Unlock()
}

// AwaitLocked blocks until pred returns true, then runs f before the lock is
// released. Other waiters are woken afterwards in case f changed the state.
func (m *Monitor) AwaitLocked(pred func() bool, f func()) {
	m.mu.Lock()
	for !pred() {
		m.cond.Wait()
	}
	f()
	m.mu.Unlock()
	m.cond.Broadcast()
}
