package repository

import "sync"

// memLog is an append-only, concurrency-safe list. Records are never edited or
// removed; readers always receive copies.
type memLog[T any] struct {
	mu      sync.RWMutex
	records []T
}

// append stores the record built by build, which receives the 1-based sequence
// number the record will occupy.
func (l *memLog[T]) append(build func(seq int) T) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec := build(len(l.records) + 1)
	l.records = append(l.records, rec)
	return rec
}

func (l *memLog[T]) all() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T(nil), l.records...)
}

func (l *memLog[T]) at(seq int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var zero T
	if seq < 1 || seq > len(l.records) {
		return zero, false
	}
	return l.records[seq-1], true
}

func (l *memLog[T]) count(match func(T) bool) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if match == nil {
		return len(l.records)
	}
	n := 0
	for _, r := range l.records {
		if match(r) {
			n++
		}
	}
	return n
}
