package store

import (
	"sync"

	"go.uber.org/zap"
)

// Store is the in-memory item collection: caller-supplied integer ids
// mapping to string values. Every operation is a single check-and-write
// performed atomically under one lock; reads share it. Contents live for
// the process lifetime only.
type Store struct {
	mu     sync.RWMutex
	items  map[int]string
	logger *zap.Logger
}

// Stats holds collection statistics.
type Stats struct {
	TotalItems int
}

// New creates an empty store.
func New(logger *zap.Logger) *Store {
	return &Store{
		items:  make(map[int]string),
		logger: logger,
	}
}

// Get retrieves the value stored for id.
func (s *Store) Get(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[id]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

// Create inserts a new item under a caller-supplied id.
func (s *Store) Create(id int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return ErrItemExists
	}
	s.items[id] = value
	s.logger.Debug("item created", zap.Int("id", id))
	return nil
}

// Update overwrites the value for an existing id. The write is
// unconditional: updating to the current value still succeeds.
func (s *Store) Update(id int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	s.items[id] = value
	s.logger.Debug("item updated", zap.Int("id", id))
	return nil
}

// Delete removes an existing id. A delete of an absent id is a failure, so
// deleting the same id twice reports not found the second time.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(s.items, id)
	s.logger.Debug("item deleted", zap.Int("id", id))
	return nil
}

// Stats returns collection statistics.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{TotalItems: len(s.items)}
}
