package services

import "sync"

// LockRegistry hands out one mutex per user id. Cart mutation and order
// finalization share a single registry, so a finalize for a user can never
// interleave with a cart edit for the same user. Mutexes are kept for the
// life of the process; the footprint is one mutex per active user.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

// NewLockRegistry creates an empty lock registry
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[int]*sync.Mutex)}
}

// User returns the mutex for a user, creating it on first use
func (l *LockRegistry) User(userID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	return lock
}
