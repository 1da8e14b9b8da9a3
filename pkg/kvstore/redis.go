package kvstore

import (
	"context"

	"github.com/socialai-lab/backend/pkg/xredis"
)

type redisStore struct {
	keyLocker
	client xredis.Client
	prefix string
}

// NewRedisStore keeps the namespace in redis under prefix. Useful when several
// simulator processes should observe the same state.
func NewRedisStore(client xredis.Client, prefix string) *redisStore {
	return &redisStore{keyLocker: newKeyLocker(), client: client, prefix: prefix}
}

func (s *redisStore) redisKey(key string) string {
	return s.prefix + ":" + key
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.redisKey(key))
	if err != nil {
		if xredis.IsNotFound(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return []byte(value), nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.redisKey(key), string(value))
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.redisKey(key))
}

func (s *redisStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return update(ctx, s, s.keyLocker, key, fn)
}
