package repo

import (
	"context"
	"sync"

	"sentilex/internal/services/api/history/domain"
)

// Memory is a fixed-size ring of records guarded by a mutex
type Memory struct {
	mu   sync.RWMutex
	buf  []domain.Record
	head int // index of the newest record
	n    int
}

// NewMemory returns a ring holding at most capacity records
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{buf: make([]domain.Record, capacity)}
}

// Push implements Repo
func (m *Memory) Push(_ context.Context, rec domain.Record) error {
	m.mu.Lock()
	m.head = (m.head - 1 + len(m.buf)) % len(m.buf)
	m.buf[m.head] = rec
	if m.n < len(m.buf) {
		m.n++
	}
	m.mu.Unlock()
	return nil
}

// List implements Repo
func (m *Memory) List(_ context.Context) ([]domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Record, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.buf[(m.head+i)%len(m.buf)]
	}
	return out, nil
}

// Cap implements Repo
func (m *Memory) Cap() int { return len(m.buf) }
