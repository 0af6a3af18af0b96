// Package memory provides the default in-process payment store.
// Used for the demo and for tests; swap in the gorm store for
// anything that must survive a restart.
package memory

import (
	"context"
	"sync"

	"payment-gateway/internal/domain/payment"
)

type Store struct {
	mu       sync.RWMutex
	payments map[string]payment.Payment
}

func New() *Store {
	return &Store{
		payments: make(map[string]payment.Payment),
	}
}

// Put stores a copy of the record, overwriting any existing entry.
func (s *Store) Put(ctx context.Context, id string, p *payment.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments[id] = *p
	return nil
}

// Get returns a copy of the stored record, so callers never share
// memory with the map.
func (s *Store) Get(ctx context.Context, id string) (*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.payments[id]
	if !exists {
		return nil, payment.ErrNotFound
	}
	return &p, nil
}
