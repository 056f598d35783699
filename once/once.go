package once

import "sync/atomic"

// A Once runs an action exactly once across any number of concurrent Do
// calls. Every Do call, including the ones that lose the race, returns only
// after the single execution has completed, so the action's effects are
// visible to every caller afterwards.
type Once struct {
	done  atomic.Bool
	token chan struct{} // cap-1, serializes the slow path
}

// New creates a Once that has not yet run. A Once must not be copied after
// creation; share the returned pointer.
func New() *Once {
	o := &Once{token: make(chan struct{}, 1)}
	o.token <- struct{}{}
	return o
}

// Do calls f if and only if no call to Do on this Once has called its
// function before. If f panics, Do considers it to have run; future calls
// return without calling their function.
func (o *Once) Do(f func()) {
	if o.done.Load() {
		return
	}
	<-o.token
	if !o.done.Load() {
		// Deferred calls run in reverse order: done is set before the token
		// is released, so a racing Do can never run f a second time.
		defer func() { o.token <- struct{}{} }()
		defer o.done.Store(true)
		f()
		return
	}
	o.token <- struct{}{}
}
