// Package memory stores batches in memory for tests and local development.
package memory

import (
	"context"
	"sync"

	"example.com/tasktracker/internal/domain"
)

type key struct {
	date      string
	timestamp string
}

// Store keeps batches in a map keyed by (date, timestamp), mirroring
// the table's last-write-wins key semantics.
type Store struct {
	mu      sync.RWMutex
	batches map[key]domain.Batch
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{batches: make(map[key]domain.Batch)}
}

// Put implements domain.BatchRepository.
func (s *Store) Put(ctx context.Context, batch domain.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[key{date: batch.Date, timestamp: batch.Timestamp}] = batch
	return nil
}

// Get returns the batch stored under (date, timestamp), if any.
func (s *Store) Get(date, timestamp string) (domain.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batch, ok := s.batches[key{date: date, timestamp: timestamp}]
	return batch, ok
}

// Len reports the number of stored batches.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batches)
}
