package domain

import (
	"testing"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/domain/toast"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_achievementDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	achievementRepo := repository.NewAchievementRepository()
	notificationDomain := NewNotificationDomain(
		repository.NewNotificationRepository(), toast.NewEngine())
	achievementDomain := NewAchievementDomain(
		achievementRepo, notificationDomain, testutil.NewSimulator())

	resp, err := achievementDomain.GetList(ctx, &model.GetAchievementsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Achievements, len(common.AchievementCatalog))
	for _, a := range resp.Achievements {
		require.False(t, a.Unlocked)
		require.Nil(t, a.UnlockedAt)
	}

	_, err = achievementDomain.Unlock(ctx, &model.UnlockAchievementRequest{ID: "first_post"})
	require.NoError(t, err)

	resp, err = achievementDomain.GetList(ctx, &model.GetAchievementsRequest{})
	require.NoError(t, err)
	require.Equal(t, "first_post", resp.Achievements[0].ID)
	require.True(t, resp.Achievements[0].Unlocked)
	require.NotNil(t, resp.Achievements[0].UnlockedAt)
}

func Test_achievementDomain_Unlock_idempotent(t *testing.T) {
	ctx := testutil.MockContext()
	achievementRepo := repository.NewAchievementRepository()
	notificationRepo := repository.NewNotificationRepository()
	notificationDomain := NewNotificationDomain(notificationRepo, toast.NewEngine())
	achievementDomain := NewAchievementDomain(
		achievementRepo, notificationDomain, testutil.NewSimulator())

	first, err := achievementDomain.Unlock(ctx, &model.UnlockAchievementRequest{ID: "night_owl"})
	require.NoError(t, err)
	require.True(t, first.Success)
	require.False(t, first.AlreadyUnlocked)

	second, err := achievementDomain.Unlock(ctx, &model.UnlockAchievementRequest{ID: "night_owl"})
	require.NoError(t, err)
	require.False(t, second.Success)
	require.True(t, second.AlreadyUnlocked)

	// One unlock record and one notification, regardless of retries.
	require.Len(t, achievementRepo.GetUnlocks(ctx), 1)

	notifications := notificationRepo.GetList(ctx)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationAchievement, notifications[0].Type)
	require.Equal(t, "Achievement Unlocked: Night Owl!", notifications[0].Title)
	require.Equal(t, 20, notifications[0].Points)
}

func Test_achievementDomain_Unlock_unknown(t *testing.T) {
	ctx := testutil.MockContext()
	notificationDomain := NewNotificationDomain(
		repository.NewNotificationRepository(), toast.NewEngine())
	achievementDomain := NewAchievementDomain(
		repository.NewAchievementRepository(), notificationDomain, testutil.NewSimulator())

	_, err := achievementDomain.Unlock(ctx, &model.UnlockAchievementRequest{ID: "time_traveler"})
	require.Error(t, err)
}
