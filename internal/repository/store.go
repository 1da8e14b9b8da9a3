package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// getJSON reads and decodes the value under key. A missing key or a corrupt
// value degrades to def and is never surfaced as an error; the worst case of
// this layer is silently empty state.
func getJSON[T any](ctx context.Context, key string, def T) T {
	raw, err := xcontext.Store(ctx).Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			xcontext.Logger(ctx).Warnf("Cannot read key %s: %v", key, err)
		}

		return def
	}

	value := def
	if err := json.Unmarshal(raw, &value); err != nil {
		xcontext.Logger(ctx).Warnf("Corrupt value under key %s, using default: %v", key, err)
		return def
	}

	return value
}

func setJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return xcontext.Store(ctx).Set(ctx, key, raw)
}

// updateJSON runs a serialized read-modify-write on key. Corrupt or missing
// state enters fn as def, mirroring getJSON.
func updateJSON[T any](ctx context.Context, key string, def T, fn func(T) (T, error)) error {
	return xcontext.Store(ctx).Update(ctx, key, func(old []byte) ([]byte, error) {
		value := def
		if old != nil {
			if err := json.Unmarshal(old, &value); err != nil {
				xcontext.Logger(ctx).Warnf("Corrupt value under key %s, using default: %v", key, err)
				value = def
			}
		}

		updated, err := fn(value)
		if err != nil {
			return nil, err
		}

		return json.Marshal(updated)
	})
}
