package counter

// A Counter tracks a count of outstanding units of work, like a Go
// `sync.WaitGroup`. Add registers work, Done retires it, and Wait blocks until
// the count reaches zero, at which point every blocked waiter is released.
//
// Unlike the simplest close-a-channel designs, a Counter stays usable after it
// reaches zero: a later Add starts a new round and later Wait calls block on
// that round's zero event.
type Counter struct {
	guard chan struct{} // cap-1 token, protects count and zero
	count int64
	// zero is closed exactly when count reaches zero and replaced when the
	// count leaves zero again. Waiters block on the channel they saw while
	// holding the guard, so a waiter can never observe a stale zero.
	zero chan struct{}
}

// New creates a Counter with a count of zero. A Counter must not be copied
// after creation; share the returned pointer.
func New() *Counter {
	guard := make(chan struct{}, 1)
	guard <- struct{}{}
	zero := make(chan struct{})
	close(zero)
	return &Counter{guard: guard, zero: zero}
}

// Add adds delta, which may be negative, to the count. If the count goes
// negative, Add panics. If the count reaches zero, all goroutines blocked in
// Wait are released.
func (c *Counter) Add(delta int64) {
	<-c.guard
	old := c.count
	if old+delta < 0 {
		c.guard <- struct{}{}
		panic("counter: negative count")
	}
	c.count = old + delta
	if old == 0 && c.count > 0 {
		c.zero = make(chan struct{})
	} else if old > 0 && c.count == 0 {
		close(c.zero)
	}
	c.guard <- struct{}{}
}

// Done decrements the count by one.
func (c *Counter) Done() {
	c.Add(-1)
}

// Wait blocks until the count is zero. If the count is already zero, Wait
// returns immediately.
func (c *Counter) Wait() {
	<-c.guard
	zero := c.zero
	c.guard <- struct{}{}
	<-zero
}
