package server

import "sync"

// pullLocks serializes webhook jobs that touch the same pull request so two
// refreshes never read and write one description at the same time.
type pullLocks struct {
	mu    sync.Mutex
	locks map[string]*pullLock
}

type pullLock struct {
	sync.Mutex
	refs int
}

func newPullLocks() *pullLocks {
	return &pullLocks{locks: make(map[string]*pullLock)}
}

// lock blocks until key is free and returns the matching unlock.
func (x *pullLocks) lock(key string) func() {
	x.mu.Lock()
	l, ok := x.locks[key]
	if !ok {
		l = &pullLock{}
		x.locks[key] = l
	}
	l.refs++
	x.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		x.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(x.locks, key)
		}
		x.mu.Unlock()
	}
}

func (x *pullLocks) size() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.locks)
}
