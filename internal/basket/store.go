package basket

import "sync"

// Store owns every basket, keyed by session ID. Entries are never removed.
type Store struct {
	mu sync.RWMutex
	m  map[string]*Basket
}

func NewStore() *Store {
	return &Store{m: map[string]*Basket{}}
}

// GetOrCreate returns the basket for sessionID, creating an empty one on
// first access. The miss path re-checks under the write lock, so racing
// callers for one key all get the same *Basket.
func (s *Store) GetOrCreate(sessionID string) *Basket {
	s.mu.RLock()
	b, ok := s.m[sessionID]
	s.mu.RUnlock()
	if ok {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.m[sessionID]; ok {
		return b
	}
	b = &Basket{}
	s.m[sessionID] = b
	return b
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
