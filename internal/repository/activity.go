package repository

import (
	"context"

	"github.com/pkg/math"
	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type ActivityRepository interface {
	Prepend(ctx context.Context, activity *entity.Activity) error
	GetList(ctx context.Context) []entity.Activity
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

// Prepend puts activity first and evicts the oldest records beyond the cap.
func (r *activityRepository) Prepend(ctx context.Context, activity *entity.Activity) error {
	return updateJSON(ctx, common.KeyActivities, []entity.Activity{},
		func(list []entity.Activity) ([]entity.Activity, error) {
			list = append([]entity.Activity{*activity}, list...)
			return list[:math.MinInt(len(list), entity.MaxActivities)], nil
		})
}

func (r *activityRepository) GetList(ctx context.Context) []entity.Activity {
	return getJSON(ctx, common.KeyActivities, []entity.Activity{})
}
