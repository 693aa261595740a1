package session

import "sync"

// InMemoryStore keeps the session in memory for tests and ephemeral use.
type InMemoryStore struct {
	mu      sync.RWMutex
	current *Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Get() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.Valid() {
		return nil, nil
	}
	copied := *s.current
	return &copied, nil
}

func (s *InMemoryStore) Set(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.current = &copied
	return nil
}

func (s *InMemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
