package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type AchievementDomain interface {
	GetList(context.Context, *model.GetAchievementsRequest) (*model.GetAchievementsResponse, error)
	Unlock(context.Context, *model.UnlockAchievementRequest) (*model.UnlockAchievementResponse, error)
}

type achievementDomain struct {
	achievementRepo    repository.AchievementRepository
	notificationDomain NotificationDomain
	simulator          *simulate.Simulator
}

func NewAchievementDomain(
	achievementRepo repository.AchievementRepository,
	notificationDomain NotificationDomain,
	simulator *simulate.Simulator,
) *achievementDomain {
	return &achievementDomain{
		achievementRepo:    achievementRepo,
		notificationDomain: notificationDomain,
		simulator:          simulator,
	}
}

// GetList merges the static catalog with the stored unlock records. Catalog
// order is the response order.
func (d *achievementDomain) GetList(
	ctx context.Context, req *model.GetAchievementsRequest,
) (*model.GetAchievementsResponse, error) {
	unlocks := d.achievementRepo.GetUnlocks(ctx)
	unlockByID := map[string]*entity.AchievementUnlock{}
	for i := range unlocks {
		unlockByID[unlocks[i].ID] = &unlocks[i]
	}

	achievements := make([]model.Achievement, 0, len(common.AchievementCatalog))
	for _, def := range common.AchievementCatalog {
		achievements = append(achievements, model.ConvertAchievement(def, unlockByID[def.ID]))
	}

	return &model.GetAchievementsResponse{Achievements: achievements}, nil
}

func (d *achievementDomain) Unlock(
	ctx context.Context, req *model.UnlockAchievementRequest,
) (*model.UnlockAchievementResponse, error) {
	def, ok := findAchievement(req.ID)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Not found achievement %s", req.ID)
	}

	var appended bool
	var unlock entity.AchievementUnlock
	err := d.simulator.Do(ctx, func() error {
		unlock = entity.AchievementUnlock{
			ID:        def.ID,
			Timestamp: time.Now(),
		}

		var err error
		appended, err = d.achievementRepo.Append(ctx, &unlock)
		return err
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record achievement unlock: %v", err)
		return nil, errorx.Unknown
	}

	// A repeated unlock is a pure read. No record is written and no
	// notification is sent.
	if !appended {
		return &model.UnlockAchievementResponse{
			Success:         false,
			AlreadyUnlocked: true,
			Achievement:     model.ConvertAchievement(def, nil),
		}, nil
	}

	_, err = d.notificationDomain.Send(ctx, &model.SendNotificationRequest{
		Type:    string(entity.NotificationAchievement),
		Title:   fmt.Sprintf("Achievement Unlocked: %s!", def.Name),
		Message: def.Description,
		Icon:    def.Icon,
		Points:  def.Points,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot send unlock notification: %v", err)
	}

	return &model.UnlockAchievementResponse{
		Success:     true,
		Achievement: model.ConvertAchievement(def, &unlock),
	}, nil
}

func findAchievement(id string) (entity.AchievementDefinition, bool) {
	i := slices.IndexFunc(common.AchievementCatalog,
		func(def entity.AchievementDefinition) bool { return def.ID == id })
	if i < 0 {
		return entity.AchievementDefinition{}, false
	}

	return common.AchievementCatalog[i], true
}
