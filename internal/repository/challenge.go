package repository

import (
	"context"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type ChallengeRepository interface {
	Get(ctx context.Context) (entity.StoredChallenge, bool)
	Set(ctx context.Context, stored entity.StoredChallenge) error
	// Mutate runs fn on the stored challenge under the key lock. fn sees the
	// zero value when nothing is stored yet.
	Mutate(ctx context.Context, fn func(entity.StoredChallenge) (entity.StoredChallenge, error)) error
}

type challengeRepository struct{}

func NewChallengeRepository() *challengeRepository {
	return &challengeRepository{}
}

func (r *challengeRepository) Get(ctx context.Context) (entity.StoredChallenge, bool) {
	stored := getJSON(ctx, common.KeyDailyChallenge, entity.StoredChallenge{})
	return stored, stored.Date != ""
}

func (r *challengeRepository) Set(ctx context.Context, stored entity.StoredChallenge) error {
	return setJSON(ctx, common.KeyDailyChallenge, stored)
}

func (r *challengeRepository) Mutate(
	ctx context.Context, fn func(entity.StoredChallenge) (entity.StoredChallenge, error),
) error {
	return updateJSON(ctx, common.KeyDailyChallenge, entity.StoredChallenge{}, fn)
}
