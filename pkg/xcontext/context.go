package xcontext

import (
	"context"

	"github.com/socialai-lab/backend/config"
	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/logger"
)

type (
	loggerKey  struct{}
	storeKey   struct{}
	configsKey struct{}
	userIDKey  struct{}
)

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger(logger.INFO)
	}

	return l
}

func WithStore(ctx context.Context, s kvstore.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// Store returns the persisted key-value namespace. It panics when the caller
// forgot to attach one; every entry point attaches it at startup.
func Store(ctx context.Context) kvstore.Store {
	s, ok := ctx.Value(storeKey{}).(kvstore.Store)
	if !ok {
		panic("no store in context")
	}

	return s
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Configs{}
	}

	return cfg
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	id, ok := ctx.Value(userIDKey{}).(string)
	if !ok {
		return ""
	}

	return id
}
