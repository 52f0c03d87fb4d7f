package cache

import (
	"context"
	"sync"
	"time"

	"soiladvisor/internal/models"
)

type memoryEntry struct {
	result  *models.ResultData
	expires time.Time
}

// MemoryStore is the single-process ResultStore used when no redis is
// configured. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Put(_ context.Context, token string, result *models.ResultData, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = memoryEntry{result: result, expires: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*models.ResultData, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[token]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(e.expires) {
		delete(m.entries, token)
		return nil, false, nil
	}
	return e.result, true, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
	return nil
}
