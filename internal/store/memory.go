package store

import (
	"context"
	"sync"
)

// MemoryEngine keeps entries in a map. With a positive quota it rejects
// writes that would grow the total size of keys and values past the quota,
// the same way browser local storage does.
type MemoryEngine struct {
	mu    sync.RWMutex
	data  map[string][]byte
	used  int
	quota int
}

// NewMemoryEngine returns an empty engine. quota <= 0 disables the limit.
func NewMemoryEngine(quota int) *MemoryEngine {
	return &MemoryEngine{data: make(map[string][]byte), quota: quota}
}

func (m *MemoryEngine) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryEngine) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.used + len(value)
	if old, ok := m.data[key]; ok {
		next -= len(old)
	} else {
		next += len(key)
	}
	if m.quota > 0 && next > m.quota {
		return ErrQuotaExceeded
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	m.used = next
	return nil
}

func (m *MemoryEngine) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.data[key]; ok {
		m.used -= len(key) + len(old)
		delete(m.data, key)
	}
	return nil
}

// Used reports the bytes currently counted against the quota.
func (m *MemoryEngine) Used() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.used
}
