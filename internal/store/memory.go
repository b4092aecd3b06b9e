package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps the most recent calculations in process memory.
// Nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	order    []uuid.UUID // oldest first
	byID     map[uuid.UUID]*Calculation
	now      func() time.Time
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryStore{
		capacity: capacity,
		byID:     make(map[uuid.UUID]*Calculation, capacity),
		now:      time.Now,
	}
}

func (s *MemoryStore) SaveCalculation(_ context.Context, c *Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}
	if _, ok := s.byID[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.byID[c.ID] = c

	for len(s.order) > s.capacity {
		delete(s.byID, s.order[0])
		s.order = s.order[1:]
	}
	return nil
}

func (s *MemoryStore) GetCalculation(_ context.Context, id uuid.UUID) (*Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id], nil
}

func (s *MemoryStore) ListCalculations(_ context.Context, limit int) ([]*Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*Calculation, 0, n)
	for i := len(s.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.byID[s.order[i]])
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
