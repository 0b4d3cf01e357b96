package core

import "sync"

// Limiter bounds the number of requests executing concurrently. A zero max
// disables the bound. Acquire never blocks or queues; saturated callers are
// rejected immediately.
type Limiter struct {
	mu     sync.Mutex
	max    int
	active int
}

// NewLimiter creates a limiter allowing max concurrent holders. If max == 0
// the limiter is unbounded.
func NewLimiter(max int) *Limiter {
	return &Limiter{max: max}
}

// Acquire reserves a slot, reporting whether one was available.
func (l *Limiter) Acquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.active >= l.max {
		return false
	}
	l.active++
	return true
}

// Release frees a previously acquired slot.
func (l *Limiter) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active > 0 {
		l.active--
	}
}

// Active returns the number of currently held slots.
func (l *Limiter) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.active
}
