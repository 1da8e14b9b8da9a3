package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/crypto"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// analyticsDays is the span of the generated time series.
const analyticsDays = 30

const analyticsDateLayout = "Jan 2"

type AnalyticsDomain interface {
	Get(context.Context, *model.GetAnalyticsRequest) (*model.GetAnalyticsResponse, error)
}

type analyticsDomain struct {
	analyticsRepo repository.AnalyticsRepository
	simulator     *simulate.Simulator
}

func NewAnalyticsDomain(
	analyticsRepo repository.AnalyticsRepository,
	simulator *simulate.Simulator,
) *analyticsDomain {
	return &analyticsDomain{
		analyticsRepo: analyticsRepo,
		simulator:     simulator,
	}
}

// Get serves the cached snapshot while it is younger than AnalyticsMaxAge,
// otherwise generates and caches a fresh one.
func (d *analyticsDomain) Get(
	ctx context.Context, req *model.GetAnalyticsRequest,
) (*model.GetAnalyticsResponse, error) {
	var snapshot entity.AnalyticsSnapshot
	err := d.simulator.Do(ctx, func() error {
		cached, found := d.analyticsRepo.Get(ctx)
		if found && time.Since(cached.Timestamp) < entity.AnalyticsMaxAge {
			snapshot = cached.Analytics
			return nil
		}

		snapshot = generateAnalytics(time.Now())
		return d.analyticsRepo.Set(ctx, entity.CachedAnalytics{
			Analytics: snapshot,
			Timestamp: time.Now(),
		})
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load analytics: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetAnalyticsResponse{Analytics: snapshot}, nil
}

// generateAnalytics builds a synthetic 30-day snapshot. The series are
// pseudo-random but shaped like real data: views bounded, follower counts
// monotonically drifting upward from a 1000 baseline.
func generateAnalytics(now time.Time) entity.AnalyticsSnapshot {
	views := make([]entity.ViewPoint, 0, analyticsDays)
	growth := make([]entity.FollowerPoint, 0, analyticsDays)
	for i := 0; i < analyticsDays; i++ {
		date := now.AddDate(0, 0, i-analyticsDays).Format(analyticsDateLayout)
		views = append(views, entity.ViewPoint{
			Date:  date,
			Views: crypto.RandRange(200, 700),
		})
		growth = append(growth, entity.FollowerPoint{
			Date:      date,
			Followers: 1000 + i*crypto.RandRange(10, 60),
		})
	}

	return entity.AnalyticsSnapshot{
		ProfileViews: views,
		Engagement: entity.Engagement{
			Likes:    crypto.RandRange(1000, 6000),
			Comments: crypto.RandRange(200, 1000),
			Shares:   crypto.RandRange(50, 350),
		},
		FollowerGrowth:    growth,
		TotalFollowers:    growth[len(growth)-1].Followers,
		AvgEngagementRate: fmt.Sprintf("%.2f", 2+5*crypto.RandFloat()),
		TopPosts: []entity.TopPost{
			{ID: 1, Likes: 1240, Engagement: "8.2%"},
			{ID: 3, Likes: 3400, Engagement: "12.5%"},
			{ID: 5, Likes: 2100, Engagement: "9.8%"},
		},
	}
}
