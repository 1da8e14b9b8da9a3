package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient implements xredis.Client in memory, with per-method hooks
// for tests that need to inject failures.
type MockRedisClient struct {
	ExistFunc func(ctx context.Context, key string) (bool, error)
	GetFunc   func(ctx context.Context, key string) (string, error)
	SetFunc   func(ctx context.Context, key, value string) error
	DelFunc   func(ctx context.Context, key ...string) error
	KeysFunc  func(ctx context.Context, pattern string) ([]string, error)

	mutex  sync.Mutex
	values map[string]string
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{values: make(map[string]string)}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, ok := m.values[key]
	return ok, nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", redis.Nil
	}

	return value, nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, k := range key {
		delete(m.values, k)
	}

	return nil
}

func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	if m.KeysFunc != nil {
		return m.KeysFunc(ctx, pattern)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	prefix := strings.TrimSuffix(pattern, "*")
	keys := []string{}
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	return keys, nil
}
