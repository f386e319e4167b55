package sessions

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. It is only suitable for a
// single instance; use RedisStore when several instances share traffic.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok || !m.now().Before(entry.expiresAt) {
		return nil, ErrNotFound
	}

	var s Session
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, err
	}
	s.ID = id
	return &s, nil
}

func (m *MemoryStore) Set(ctx context.Context, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[s.ID] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Destroy(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Prune drops expired entries and returns how many were removed.
func (m *MemoryStore) Prune() int {
	now := m.now()
	removed := 0

	m.mu.Lock()
	for id, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	m.mu.Unlock()
	return removed
}

// StartPruning runs Prune every interval until ctx is cancelled.
func (m *MemoryStore) StartPruning(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := m.Prune(); n > 0 {
					logger.Log.Debugw("pruned expired sessions", "count", n)
				}
			}
		}
	}()
}
