package kvstore

import (
	"context"
	"errors"
	"sync"

	"github.com/puzpuzpuz/xsync"
)

// ErrNotFound is returned by Get when no value has been written under a key.
var ErrNotFound = errors.New("key not found")

// Store is a flat key-value namespace holding JSON blobs. Writes fully
// replace prior content; there are no partial updates and no transactions
// across keys. Concurrent writers to the same key must go through Update,
// which serializes read-modify-write cycles per key. Writes to independent
// keys keep last-write-wins semantics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Update atomically replaces the value under key with the result of fn.
	// fn receives the current value (nil when absent) and returns the new
	// one. Returning an error aborts the update without writing.
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error
}

// keyLocker hands out one mutex per key so that Update calls on the same key
// never interleave.
type keyLocker struct {
	mutexes *xsync.MapOf[string, *sync.Mutex]
}

func newKeyLocker() keyLocker {
	return keyLocker{mutexes: xsync.NewMapOf[*sync.Mutex]()}
}

func (l keyLocker) lock(key string) *sync.Mutex {
	mutex, _ := l.mutexes.LoadOrStore(key, &sync.Mutex{})
	mutex.Lock()
	return mutex
}

func update(ctx context.Context, s Store, l keyLocker, key string, fn func(old []byte) ([]byte, error)) error {
	mutex := l.lock(key)
	defer mutex.Unlock()

	old, err := s.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	value, err := fn(old)
	if err != nil {
		return err
	}

	return s.Set(ctx, key, value)
}
