package domain

import (
	"testing"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_analyticsDomain_Get_shape(t *testing.T) {
	ctx := testutil.MockContext()
	analyticsDomain := NewAnalyticsDomain(
		repository.NewAnalyticsRepository(), testutil.NewSimulator())

	resp, err := analyticsDomain.Get(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Analytics.ProfileViews, analyticsDays)
	require.Len(t, resp.Analytics.FollowerGrowth, analyticsDays)
	require.Len(t, resp.Analytics.TopPosts, 3)
	require.NotEmpty(t, resp.Analytics.AvgEngagementRate)
	require.Equal(t,
		resp.Analytics.FollowerGrowth[analyticsDays-1].Followers,
		resp.Analytics.TotalFollowers)

	for _, p := range resp.Analytics.ProfileViews {
		require.GreaterOrEqual(t, p.Views, 200)
		require.Less(t, p.Views, 700)
	}
}

func Test_analyticsDomain_Get_cache(t *testing.T) {
	ctx := testutil.MockContext()
	analyticsRepo := repository.NewAnalyticsRepository()
	analyticsDomain := NewAnalyticsDomain(analyticsRepo, testutil.NewSimulator())

	first, err := analyticsDomain.Get(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)

	// A fresh cache is served as is.
	second, err := analyticsDomain.Get(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)
	require.Equal(t, first.Analytics, second.Analytics)

	// Age the cache past the freshness window; the next read regenerates.
	cached, found := analyticsRepo.Get(ctx)
	require.True(t, found)
	cached.Timestamp = time.Now().Add(-entity.AnalyticsMaxAge - time.Minute)
	require.NoError(t, analyticsRepo.Set(ctx, cached))

	third, err := analyticsDomain.Get(ctx, &model.GetAnalyticsRequest{})
	require.NoError(t, err)

	refreshed, found := analyticsRepo.Get(ctx)
	require.True(t, found)
	require.WithinDuration(t, time.Now(), refreshed.Timestamp, time.Minute)
	require.Equal(t, refreshed.Analytics, third.Analytics)
}
