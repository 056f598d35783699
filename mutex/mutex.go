package mutex

// A Mutex is a mutual exclusion lock built on a one-slot token channel: the
// token is in the channel while the lock is free and held by the owner
// otherwise. The order in which blocked Lock calls acquire the token is
// unspecified.
type Mutex struct {
	token chan struct{}
}

// New creates an unlocked Mutex. A Mutex must not be copied after creation;
// share the returned pointer.
func New() *Mutex {
	m := &Mutex{token: make(chan struct{}, 1)}
	m.token <- struct{}{}
	return m
}

// Lock blocks until the mutex is free, then takes it.
func (m *Mutex) Lock() {
	<-m.token
}

// TryLock takes the mutex if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	select {
	case <-m.token:
		return true
	default:
		return false
	}
}

// Unlock releases the mutex. It panics if the mutex is not locked.
func (m *Mutex) Unlock() {
	select {
	case m.token <- struct{}{}:
	default:
		panic("mutex: unlock of unlocked mutex")
	}
}
