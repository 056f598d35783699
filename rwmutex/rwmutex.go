package rwmutex

// An RWMutex is a reader/writer mutual exclusion lock. The lock can be held
// by an arbitrary number of readers or a single writer, never both.
//
// Wake-up policy: writers are preferred. Once a writer is waiting, new RLock
// calls queue behind it rather than joining the current readers, so a steady
// stream of readers cannot starve a writer. A releasing writer hands the lock
// to the longest-waiting writer if there is one, and otherwise admits every
// queued reader in one batch.
//
// If a goroutine holds the lock for reading it must not call Lock; recursive
// read locking deadlocks once a writer queues in between.
type RWMutex struct {
	guard chan struct{} // cap-1 token, protects the fields below

	readers int  // active readers
	writer  bool // a writer holds the lock

	writerQ []chan struct{} // waiting writers, FIFO
	readerQ []chan struct{} // waiting readers, admitted as a batch
}

// New creates an unlocked RWMutex. An RWMutex must not be copied after
// creation; share the returned pointer.
func New() *RWMutex {
	guard := make(chan struct{}, 1)
	guard <- struct{}{}
	return &RWMutex{guard: guard}
}

// RLock locks rw for reading. It blocks while a writer holds or awaits the
// lock.
func (rw *RWMutex) RLock() {
	<-rw.guard
	if !rw.writer && len(rw.writerQ) == 0 {
		rw.readers++
		rw.guard <- struct{}{}
		return
	}
	wake := make(chan struct{})
	rw.readerQ = append(rw.readerQ, wake)
	rw.guard <- struct{}{}
	<-wake
}

// RUnlock undoes a single RLock call. It panics if rw is not locked for
// reading.
func (rw *RWMutex) RUnlock() {
	<-rw.guard
	if rw.readers == 0 {
		rw.guard <- struct{}{}
		panic("rwmutex: RUnlock of unlocked RWMutex")
	}
	rw.readers--
	if rw.readers == 0 {
		rw.wakeNext()
	}
	rw.guard <- struct{}{}
}

// Lock locks rw for writing. It blocks until the lock is free of both readers
// and writers.
func (rw *RWMutex) Lock() {
	<-rw.guard
	if !rw.writer && rw.readers == 0 {
		rw.writer = true
		rw.guard <- struct{}{}
		return
	}
	wake := make(chan struct{})
	rw.writerQ = append(rw.writerQ, wake)
	rw.guard <- struct{}{}
	<-wake
}

// Unlock unlocks rw for writing. It panics if rw is not locked for writing.
func (rw *RWMutex) Unlock() {
	<-rw.guard
	if !rw.writer {
		rw.guard <- struct{}{}
		panic("rwmutex: Unlock of unlocked RWMutex")
	}
	rw.writer = false
	rw.wakeNext()
	rw.guard <- struct{}{}
}

// wakeNext hands the lock over while rw.guard is held and the lock is free.
// The new holders' state is recorded before their wake channels are closed,
// so a woken goroutine resumes already owning the lock.
func (rw *RWMutex) wakeNext() {
	if len(rw.writerQ) > 0 {
		wake := rw.writerQ[0]
		rw.writerQ = rw.writerQ[1:]
		rw.writer = true
		close(wake)
		return
	}
	if len(rw.readerQ) > 0 {
		rw.readers = len(rw.readerQ)
		for _, wake := range rw.readerQ {
			close(wake)
		}
		rw.readerQ = nil
	}
}

// RLocker returns a Lock/Unlock view of rw that calls RLock and RUnlock,
// suitable for use with a condition variable.
func (rw *RWMutex) RLocker() *RLocker {
	return &RLocker{rw: rw}
}

// An RLocker adapts the read side of an RWMutex to the Lock/Unlock shape.
type RLocker struct {
	rw *RWMutex
}

func (r *RLocker) Lock()   { r.rw.RLock() }
func (r *RLocker) Unlock() { r.rw.RUnlock() }
