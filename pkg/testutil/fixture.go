package testutil

import (
	"context"

	"github.com/socialai-lab/backend/config"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/logger"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext returns a context carrying an empty in-memory store, a silent
// logger, and default configs. Most tests start here.
func MockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithStore(ctx, kvstore.NewMemoryStore())
	ctx = xcontext.WithLogger(ctx, logger.NewSilence())
	ctx = xcontext.WithConfigs(ctx, config.Configs{
		Env:       "testing",
		Simulator: simulate.DefaultConfigs(),
	})

	return ctx
}

// CreateFixtureDb opens an in-memory sqlite database with the kv schema
// migrated, for tests exercising the gorm store backend.
func CreateFixtureDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

// InsertUsers seeds two known accounts.
func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	err := userRepo.Create(ctx, &entity.User{
		ID:                 "user1",
		Name:               "Alice Nguyen",
		Email:              "alice@example.com",
		Password:           "password1",
		Username:           "alicenguyen",
		SubscriptionTier:   entity.TierFree,
		SubscriptionStatus: entity.SubscriptionActive,
	})
	if err != nil {
		panic(err)
	}

	err = userRepo.Create(ctx, &entity.User{
		ID:                 "user2",
		Name:               "Bob Tran",
		Email:              "bob@example.com",
		Password:           "password2",
		Username:           "bobtran",
		SubscriptionTier:   entity.TierPro,
		SubscriptionStatus: entity.SubscriptionActive,
	})
	if err != nil {
		panic(err)
	}
}
