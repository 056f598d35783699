package cond

// A Locker is anything with Lock and Unlock. The Mutex and RWMutex in this
// module satisfy it, as does the RWMutex read side via RLocker.
type Locker interface {
	Lock()
	Unlock()
}

// A Cond is a condition variable, a rendezvous point for goroutines waiting
// for or announcing a condition.
//
// Each Cond is bound to a Locker L that must be held when calling Wait and
// when changing the condition. Because a waiter registers itself before L is
// released, a Signal or Broadcast issued in the window between the release of
// L and the waiter going to sleep still wakes it; there is no missed-wakeup
// window.
type Cond struct {
	// L is held while waiting and while changing the condition.
	L Locker

	guard   chan struct{}   // cap-1 token, protects waiters
	waiters []chan struct{} // one channel per blocked Wait call, FIFO
}

// New returns a Cond bound to the lock l. A Cond must not be copied after
// creation; share the returned pointer.
func New(l Locker) *Cond {
	guard := make(chan struct{}, 1)
	guard <- struct{}{}
	return &Cond{L: l, guard: guard}
}

// Wait atomically unlocks c.L and suspends the calling goroutine. It relocks
// c.L before returning. The caller must hold c.L; if it does not, the Unlock
// inside Wait surfaces the violation.
//
// Wait can return even though the condition does not hold, so callers should
// re-check it in a loop:
//
//	c.L.Lock()
//	for !condition() {
//		c.Wait()
//	}
//	... make use of condition ...
//	c.L.Unlock()
func (c *Cond) Wait() {
	wake := make(chan struct{})
	<-c.guard
	c.waiters = append(c.waiters, wake)
	c.guard <- struct{}{}
	c.L.Unlock()
	<-wake
	c.L.Lock()
}

// Signal wakes one goroutine waiting on c, if there is any. The oldest waiter
// is woken first.
//
// It is allowed but not required for the caller to hold c.L.
func (c *Cond) Signal() {
	<-c.guard
	if len(c.waiters) > 0 {
		close(c.waiters[0])
		c.waiters = c.waiters[1:]
	}
	c.guard <- struct{}{}
}

// Broadcast wakes all goroutines waiting on c.
//
// It is allowed but not required for the caller to hold c.L.
func (c *Cond) Broadcast() {
	<-c.guard
	for _, wake := range c.waiters {
		close(wake)
	}
	c.waiters = nil
	c.guard <- struct{}{}
}
