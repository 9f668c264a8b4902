package memory

import (
	"context"
	"sync"

	"passaro-ok/internal/ports/kv"
)

// kvStore es el backend en memoria: útil para dev y tests.
type kvStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() kv.Store {
	return &kvStore{data: make(map[string][]byte)}
}

func (s *kvStore) Load(ctx context.Context) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

func (s *kvStore) Put(ctx context.Context, entries ...kv.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		s.data[e.Key] = append([]byte(nil), e.Value...)
	}
	return nil
}

func (s *kvStore) Close() error { return nil }
