package kvstore_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func testReadWrite(t *testing.T, store kvstore.Store) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, store.Set(ctx, "greeting", []byte(`"hello"`)))
	value, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	require.Equal(t, []byte(`"hello"`), value)

	// A second write fully replaces the first.
	require.NoError(t, store.Set(ctx, "greeting", []byte(`"goodbye"`)))
	value, err = store.Get(ctx, "greeting")
	require.NoError(t, err)
	require.Equal(t, []byte(`"goodbye"`), value)

	require.NoError(t, store.Delete(ctx, "greeting"))
	_, err = store.Get(ctx, "greeting")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "greeting"))
}

func testUpdate(t *testing.T, store kvstore.Store) {
	ctx := context.Background()

	// The callback sees nil for an absent key.
	err := store.Update(ctx, "counter", func(old []byte) ([]byte, error) {
		require.Nil(t, old)
		return []byte("0"), nil
	})
	require.NoError(t, err)

	// A failing callback leaves the value untouched.
	err = store.Update(ctx, "counter", func(old []byte) ([]byte, error) {
		return nil, fmt.Errorf("nope")
	})
	require.Error(t, err)

	value, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	require.Equal(t, []byte("0"), value)
}

func testConcurrentUpdate(t *testing.T, store kvstore.Store) {
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "counter", []byte("0")))

	// Updates on one key are serialized, so no increment may be lost.
	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Update(ctx, "counter", func(old []byte) ([]byte, error) {
				n, err := strconv.Atoi(string(old))
				if err != nil {
					return nil, err
				}

				return []byte(strconv.Itoa(n + 1)), nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	value, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(workers), string(value))
}

func TestMemoryStore(t *testing.T) {
	testReadWrite(t, kvstore.NewMemoryStore())
	testUpdate(t, kvstore.NewMemoryStore())
	testConcurrentUpdate(t, kvstore.NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	newStore := func() kvstore.Store {
		return kvstore.NewRedisStore(testutil.NewMockRedisClient(), "test")
	}

	testReadWrite(t, newStore())
	testUpdate(t, newStore())
	testConcurrentUpdate(t, newStore())
}

func TestGormStore(t *testing.T) {
	newStore := func() kvstore.Store {
		store, err := kvstore.NewGormStore(testutil.CreateFixtureDb())
		require.NoError(t, err)
		return store
	}

	testReadWrite(t, newStore())
	testUpdate(t, newStore())
	testConcurrentUpdate(t, newStore())
}

func TestMemoryStore_isolatedCopies(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	original := []byte(`"value"`)
	require.NoError(t, store.Set(ctx, "key", original))

	// Mutating the caller's slice must not leak into the store.
	original[1] = 'x'
	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte(`"value"`), value)
}
