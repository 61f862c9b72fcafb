package store

import (
	"context"
	"sync"
)

// memoryStore keeps sealed envelopes in a map. It honors the same contract as
// the redis store (including envelope round-tripping) and is what tests and
// the seed tool use.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory Store.
func NewMemory() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[Prefix+key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := unseal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *memoryStore) Save(_ context.Context, key string, value interface{}) error {
	raw, err := seal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[Prefix+key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) SaveAll(_ context.Context, values map[string]interface{}) error {
	sealed := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := seal(value)
		if err != nil {
			return err
		}
		sealed[Prefix+key] = raw
	}
	s.mu.Lock()
	for key, raw := range sealed {
		s.data[key] = raw
	}
	s.mu.Unlock()
	return nil
}
