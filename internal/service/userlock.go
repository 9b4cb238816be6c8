package service

import "sync"

// UserLocks serializes mutating requests per user id so two requests racing
// on the same user cannot both read the same stale score and lose an update.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uint64]*sync.Mutex)}
}

// Lock acquires the per-user mutex and returns the matching unlock func.
func (l *UserLocks) Lock(userID uint64) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}
