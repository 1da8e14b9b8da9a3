package domain

import (
	"testing"
	"time"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/domain/toast"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/dateutil"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_challengeDomain_GetDaily(t *testing.T) {
	ctx := testutil.MockContext()
	challengeRepo := repository.NewChallengeRepository()
	notificationDomain := NewNotificationDomain(
		repository.NewNotificationRepository(), toast.NewEngine())
	challengeDomain := NewChallengeDomain(
		challengeRepo, notificationDomain, testutil.NewSimulator())

	resp, err := challengeDomain.GetDaily(ctx, &model.GetDailyChallengeRequest{})
	require.NoError(t, err)

	templateIDs := []string{}
	for _, tpl := range common.ChallengeTemplates {
		templateIDs = append(templateIDs, tpl.ID)
	}
	require.Contains(t, templateIDs, resp.Challenge.ID)
	require.Zero(t, resp.Challenge.Progress)
	require.False(t, resp.Challenge.Completed)
	require.Greater(t, resp.Challenge.ExpiresIn, time.Duration(0))

	// Same-day calls return the identical instance, not a fresh pick.
	again, err := challengeDomain.GetDaily(ctx, &model.GetDailyChallengeRequest{})
	require.NoError(t, err)
	require.Equal(t, resp.Challenge, again.Challenge)
}

func Test_challengeDomain_GetDaily_rollover(t *testing.T) {
	ctx := testutil.MockContext()
	challengeRepo := repository.NewChallengeRepository()
	notificationDomain := NewNotificationDomain(
		repository.NewNotificationRepository(), toast.NewEngine())
	challengeDomain := NewChallengeDomain(
		challengeRepo, notificationDomain, testutil.NewSimulator())

	// A stale instance from yesterday with progress on it.
	stale := common.ChallengeTemplates[0]
	stale.Progress = 2
	err := challengeRepo.Set(ctx, entity.StoredChallenge{
		Date:      "2020-01-01",
		Challenge: stale,
	})
	require.NoError(t, err)

	resp, err := challengeDomain.GetDaily(ctx, &model.GetDailyChallengeRequest{})
	require.NoError(t, err)
	// Replaced wholesale: progress never carries across days.
	require.Zero(t, resp.Challenge.Progress)

	stored, found := challengeRepo.Get(ctx)
	require.True(t, found)
	require.NotEqual(t, "2020-01-01", stored.Date)
}

func Test_challengeDomain_UpdateProgress(t *testing.T) {
	ctx := testutil.MockContext()
	challengeRepo := repository.NewChallengeRepository()
	notificationRepo := repository.NewNotificationRepository()
	notificationDomain := NewNotificationDomain(notificationRepo, toast.NewEngine())
	challengeDomain := NewChallengeDomain(
		challengeRepo, notificationDomain, testutil.NewSimulator())

	daily, err := challengeDomain.GetDaily(ctx, &model.GetDailyChallengeRequest{})
	require.NoError(t, err)

	resp, err := challengeDomain.UpdateProgress(ctx, &model.UpdateChallengeProgressRequest{
		ID: daily.Challenge.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Challenge)
	require.Equal(t, 1, resp.Challenge.Progress)

	// An id mismatch is a silent no-op.
	resp, err = challengeDomain.UpdateProgress(ctx, &model.UpdateChallengeProgressRequest{
		ID: "not_the_active_challenge",
	})
	require.NoError(t, err)
	require.Nil(t, resp.Challenge)
}

func Test_challengeDomain_UpdateProgress_completionOnce(t *testing.T) {
	ctx := testutil.MockContext()
	challengeRepo := repository.NewChallengeRepository()
	notificationRepo := repository.NewNotificationRepository()
	notificationDomain := NewNotificationDomain(notificationRepo, toast.NewEngine())
	challengeDomain := NewChallengeDomain(
		challengeRepo, notificationDomain, testutil.NewSimulator())

	active := common.ChallengeTemplates[1]
	err := challengeRepo.Set(ctx, entity.StoredChallenge{
		Date:      dateutil.DayKey(time.Now()),
		Challenge: active,
	})
	require.NoError(t, err)

	// Overshoot the target several times over.
	for i := 0; i < 3; i++ {
		resp, err := challengeDomain.UpdateProgress(ctx, &model.UpdateChallengeProgressRequest{
			ID:        active.ID,
			Increment: active.Target,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Challenge)
		// Progress is capped at the target.
		require.Equal(t, active.Target, resp.Challenge.Progress)
		require.True(t, resp.Challenge.Completed)
	}

	completions := 0
	for _, n := range notificationRepo.GetList(ctx) {
		if n.Type == entity.NotificationChallengeComplete {
			completions++
		}
	}
	require.Equal(t, 1, completions)
}
