package domain

import (
	"testing"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_moodDomain_Analyze(t *testing.T) {
	ctx := testutil.MockContext()
	activityRepo := repository.NewActivityRepository()
	moodDomain := NewMoodDomain(activityRepo, testutil.NewSimulator())

	resp, err := moodDomain.Analyze(ctx, &model.AnalyzeMoodRequest{})
	require.NoError(t, err)
	require.Contains(t, common.MoodCatalog, resp.Result.Mood)
	require.Equal(t, common.MoodRecommendations, resp.Result.Recommendations)
	require.False(t, resp.Result.Timestamp.IsZero())
}

func Test_moodDomain_Analyze_withActivities(t *testing.T) {
	ctx := testutil.MockContext()
	activityRepo := repository.NewActivityRepository()
	activityDomain := NewActivityDomain(activityRepo)
	moodDomain := NewMoodDomain(activityRepo, testutil.NewSimulator())

	for i := 0; i < 8; i++ {
		_, err := activityDomain.Log(ctx, &model.LogActivityRequest{
			Action: entity.ActionCreatePost,
			Data:   entity.Map{"post_id": "p", "content": "c"},
		})
		require.NoError(t, err)
	}

	// Irregular payloads must not break the sampler.
	_, err := activityDomain.Log(ctx, &model.LogActivityRequest{
		Action: entity.ActionCreatePost,
		Data:   entity.Map{"post_id": 42},
	})
	require.NoError(t, err)

	resp, err := moodDomain.Analyze(ctx, &model.AnalyzeMoodRequest{})
	require.NoError(t, err)
	require.Contains(t, common.MoodCatalog, resp.Result.Mood)
}
