package repository

import (
	"context"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type AnalyticsRepository interface {
	Get(ctx context.Context) (entity.CachedAnalytics, bool)
	Set(ctx context.Context, cached entity.CachedAnalytics) error
}

type analyticsRepository struct{}

func NewAnalyticsRepository() *analyticsRepository {
	return &analyticsRepository{}
}

func (r *analyticsRepository) Get(ctx context.Context) (entity.CachedAnalytics, bool) {
	cached := getJSON(ctx, common.KeyAnalytics, entity.CachedAnalytics{})
	return cached, !cached.Timestamp.IsZero()
}

func (r *analyticsRepository) Set(ctx context.Context, cached entity.CachedAnalytics) error {
	return setJSON(ctx, common.KeyAnalytics, cached)
}
