package catalog

import (
	"context"
	"sort"
)

// MemStore is filled once by NewMemStore and never written again, so
// readers need no locking.
type MemStore struct {
	byID    map[string]Product
	ordered []Product
}

// NewMemStore freezes products into a store. A repeated ID keeps the last
// entry.
func NewMemStore(products ...Product) *MemStore {
	s := &MemStore{byID: make(map[string]Product, len(products))}
	for _, p := range products {
		s.byID[p.ID] = p
	}

	s.ordered = make([]Product, 0, len(s.byID))
	for _, p := range s.byID {
		s.ordered = append(s.ordered, p)
	}
	sort.Slice(s.ordered, func(i, j int) bool { return s.ordered[i].ID < s.ordered[j].ID })

	return s
}

func NewSeededStore() *MemStore {
	return NewMemStore(Seed()...)
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

// List returns every product ordered by ID. The slice is the caller's.
func (s *MemStore) List() []Product {
	out := make([]Product, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *MemStore) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *MemStore) Len() int { return len(s.ordered) }
