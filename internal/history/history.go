package history

import (
	"sync"

	"vigcrack/internal/domain"
)

// Log is an in-memory record of the attempts made during one crack run. The
// orchestrator writes from its own goroutine while the UI reads, hence the
// lock.
type Log struct {
	mu       sync.RWMutex
	attempts []domain.Attempt
}

func NewLog() *Log { return &Log{} }

func (l *Log) Add(a domain.Attempt) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = append(l.attempts, a)
}

// Tried reports whether a key length has already been attempted.
func (l *Log) Tried(length int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, a := range l.attempts {
		if a.Length == length {
			return true
		}
	}
	return false
}

// All returns a copy of the attempts in order.
func (l *Log) All() []domain.Attempt {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Attempt, len(l.attempts))
	copy(out, l.attempts)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.attempts)
}
