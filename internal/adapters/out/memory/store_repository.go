// Package memory provides the in-memory StoreRepository. The store lives for
// the lifetime of the process; nothing is written to disk.
package memory

import (
	"context"
	"errors"
	"sync"

	"supermart/internal/core/domain/model/store"
)

// ErrStoreIsNotOpened is returned by Get before Open was called.
var ErrStoreIsNotOpened = errors.New("store is not opened")

// StoreRepository implements ports.StoreRepository for a single session store.
type StoreRepository struct {
	mu    sync.RWMutex
	store *store.Store
}

// NewStoreRepository creates a repository already holding s.
func NewStoreRepository(s *store.Store) (*StoreRepository, error) {
	r := &StoreRepository{}
	if err := r.Open(s); err != nil {
		return nil, err
	}
	return r, nil
}

// Open replaces the session store with s, starting a new session.
func (r *StoreRepository) Open(s *store.Store) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = s
	return nil
}

// Get returns the session store.
func (r *StoreRepository) Get(ctx context.Context) (*store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.store == nil {
		return nil, ErrStoreIsNotOpened
	}
	return r.store, nil
}
