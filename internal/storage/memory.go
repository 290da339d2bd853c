package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"fintrack/internal/core"
)

// MemoryStore is a mutex-guarded in-memory TransactionStore. Used for tests
// and zero-configuration local runs.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Insert(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = strconv.FormatInt(s.nextID, 10)
	s.nextID++
	s.items = append(s.items, tx)
	return tx, nil
}

func (s *MemoryStore) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Reverse insertion order first so that a stable sort leaves the
	// newest-created record first within equal dates.
	out := make([]core.Transaction, len(s.items))
	for i, t := range s.items {
		out[len(s.items)-1-i] = t
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *MemoryStore) Replace(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == tx.ID {
			s.items[i] = tx
			return tx, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
