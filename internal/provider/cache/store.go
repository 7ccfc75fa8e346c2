package cache

import (
	"context"
	"sync"
	"time"

	"quotegateway/internal/market"
)

// Store holds quote records by symbol with a time to live.
type Store interface {
	// GetMany returns the live records among keys. Missing or expired keys
	// are simply absent from the result.
	GetMany(ctx context.Context, keys []string) (map[string]market.Record, error)
	// SetMany stores every record for ttl.
	SetMany(ctx context.Context, records map[string]market.Record, ttl time.Duration) error
}

// entry stores one cached record with expiry.
type entry struct {
	expiresAt time.Time
	record    market.Record
}

// MemoryStore is a process-local Store with a best-effort size cap.
type MemoryStore struct {
	MaxItems int

	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

// NewMemoryStore returns a store holding at most maxItems records; 0 means
// no cap.
func NewMemoryStore(maxItems int) *MemoryStore {
	return &MemoryStore{MaxItems: maxItems, items: make(map[string]entry), now: time.Now}
}

func (s *MemoryStore) GetMany(_ context.Context, keys []string) (map[string]market.Record, error) {
	now := s.now()
	out := make(map[string]market.Record, len(keys))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, k := range keys {
		if e, ok := s.items[k]; ok && now.Before(e.expiresAt) {
			out[k] = e.record
		}
	}
	return out, nil
}

func (s *MemoryStore) SetMany(_ context.Context, records map[string]market.Record, ttl time.Duration) error {
	now := s.now()
	expiry := now.Add(ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, r := range records {
		s.items[k] = entry{expiresAt: expiry, record: r}
	}
	if s.MaxItems <= 0 || len(s.items) <= s.MaxItems {
		return nil
	}
	// expired first, then arbitrary keys until under the cap
	for k, e := range s.items {
		if !now.Before(e.expiresAt) {
			delete(s.items, k)
		}
	}
	for k := range s.items {
		if len(s.items) <= s.MaxItems {
			break
		}
		delete(s.items, k)
	}
	return nil
}

// Len reports how many entries are held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
