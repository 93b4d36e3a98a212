package classlog

import (
	"context"
	"sync"
)

// MemoryRecorder is the fallback used when no Redis address is configured.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry // newest first
	size    int
}

func NewMemoryRecorder(size int) *MemoryRecorder {
	return &MemoryRecorder{size: size}
}

func (m *MemoryRecorder) Record(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append([]Entry{e}, m.entries...)
	if len(m.entries) > m.size {
		m.entries = m.entries[:m.size]
	}
	return nil
}

func (m *MemoryRecorder) Recent(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]Entry, limit)
	copy(out, m.entries[:limit])
	return out, nil
}

func (m *MemoryRecorder) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
