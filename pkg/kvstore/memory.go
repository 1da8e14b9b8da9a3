package kvstore

import (
	"context"

	"github.com/puzpuzpuz/xsync"
)

type memoryStore struct {
	keyLocker
	values *xsync.MapOf[string, []byte]
}

// NewMemoryStore holds the namespace in process memory only. A restart clears
// it, which is what tests and ephemeral runs want.
func NewMemoryStore() *memoryStore {
	return &memoryStore{
		keyLocker: newKeyLocker(),
		values:    xsync.NewMapOf[[]byte](),
	}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := s.values.Load(key)
	if !ok {
		return nil, ErrNotFound
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values.Store(key, cp)
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.values.Delete(key)
	return nil
}

func (s *memoryStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return update(ctx, s, s.keyLocker, key, fn)
}
