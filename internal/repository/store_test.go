package repository_test

import (
	"testing"
	"time"

	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/socialai-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestCorruptValueDegradesToDefault(t *testing.T) {
	ctx := testutil.MockContext()

	// A corrupt blob under a collection key must never surface as an error.
	err := xcontext.Store(ctx).Set(ctx, common.KeyNotifications, []byte("{{{not json"))
	require.NoError(t, err)

	notificationRepo := repository.NewNotificationRepository()
	require.Empty(t, notificationRepo.GetList(ctx))

	// Writing through the same key replaces the corrupt state.
	err = notificationRepo.Prepend(ctx, &entity.Notification{
		ID:        "notif_1",
		Type:      entity.NotificationSystem,
		Message:   "recovered",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, notificationRepo.GetList(ctx), 1)
}

func TestUserRepository(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	_, err := userRepo.GetByID(ctx, "user1")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	testutil.InsertUsers(ctx)

	user, err := userRepo.GetByID(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	byEmail, err := userRepo.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Equal(t, "user2", byEmail.ID)

	byName, err := userRepo.GetByIdentifier(ctx, "Alice Nguyen")
	require.NoError(t, err)
	require.Equal(t, "user1", byName.ID)

	user.Bio = "updated"
	require.NoError(t, userRepo.Update(ctx, user))
	updated, err := userRepo.GetByID(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "updated", updated.Bio)

	// Updating an unknown id fails rather than appending.
	err = userRepo.Update(ctx, &entity.User{ID: "ghost"})
	require.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestAchievementRepository_AppendOnce(t *testing.T) {
	ctx := testutil.MockContext()
	achievementRepo := repository.NewAchievementRepository()

	appended, err := achievementRepo.Append(ctx, &entity.AchievementUnlock{
		ID:        "first_post",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	require.True(t, appended)

	appended, err = achievementRepo.Append(ctx, &entity.AchievementUnlock{
		ID:        "first_post",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	require.False(t, appended)

	require.Len(t, achievementRepo.GetUnlocks(ctx), 1)
}
