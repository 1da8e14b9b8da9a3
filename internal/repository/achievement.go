package repository

import (
	"context"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type AchievementRepository interface {
	GetUnlocks(ctx context.Context) []entity.AchievementUnlock
	// Append records the unlock once. It reports false without writing when
	// the id is already unlocked, so concurrent unlock attempts cannot
	// duplicate records.
	Append(ctx context.Context, unlock *entity.AchievementUnlock) (bool, error)
}

type achievementRepository struct{}

func NewAchievementRepository() *achievementRepository {
	return &achievementRepository{}
}

func (r *achievementRepository) GetUnlocks(ctx context.Context) []entity.AchievementUnlock {
	return getJSON(ctx, common.KeyAchievements, []entity.AchievementUnlock{})
}

func (r *achievementRepository) Append(ctx context.Context, unlock *entity.AchievementUnlock) (bool, error) {
	appended := false
	err := updateJSON(ctx, common.KeyAchievements, []entity.AchievementUnlock{},
		func(unlocks []entity.AchievementUnlock) ([]entity.AchievementUnlock, error) {
			for _, u := range unlocks {
				if u.ID == unlock.ID {
					return unlocks, nil
				}
			}

			appended = true
			return append(unlocks, *unlock), nil
		})
	if err != nil {
		return false, err
	}

	return appended, nil
}
