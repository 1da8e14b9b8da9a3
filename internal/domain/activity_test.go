package domain

import (
	"fmt"
	"testing"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_activityDomain_Log(t *testing.T) {
	ctx := testutil.MockContext()
	activityRepo := repository.NewActivityRepository()
	activityDomain := NewActivityDomain(activityRepo)

	_, err := activityDomain.Log(ctx, &model.LogActivityRequest{
		Action: entity.ActionCreatePost,
		Data:   entity.Map{"post_id": "post1"},
	})
	require.NoError(t, err)

	activities := activityRepo.GetList(ctx)
	require.Len(t, activities, 1)
	require.Equal(t, entity.ActionCreatePost, activities[0].Action)
	require.Equal(t, "post1", activities[0].Data["post_id"])
	require.NotEmpty(t, activities[0].ID)
}

func Test_activityDomain_Log_emptyAction(t *testing.T) {
	ctx := testutil.MockContext()
	activityDomain := NewActivityDomain(repository.NewActivityRepository())

	_, err := activityDomain.Log(ctx, &model.LogActivityRequest{})
	require.Error(t, err)
}

func Test_activityDomain_cap(t *testing.T) {
	ctx := testutil.MockContext()
	activityRepo := repository.NewActivityRepository()
	activityDomain := NewActivityDomain(activityRepo)

	for i := 0; i < entity.MaxActivities+20; i++ {
		_, err := activityDomain.Log(ctx, &model.LogActivityRequest{
			Action: "like_post",
			Data:   entity.Map{"n": fmt.Sprintf("%d", i)},
		})
		require.NoError(t, err)
	}

	resp, err := activityDomain.GetList(ctx, &model.GetActivitiesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, entity.MaxActivities)
	// Most recent first.
	require.Equal(t, fmt.Sprintf("%d", entity.MaxActivities+19), resp.Activities[0].Data["n"])
}

func Test_ActivityData(t *testing.T) {
	type payload struct {
		PostID  string `structs:"post_id"`
		Content string `structs:"content"`
	}

	data := ActivityData(payload{PostID: "post1", Content: "hello"})
	require.Equal(t, "post1", data["post_id"])
	require.Equal(t, "hello", data["content"])

	require.NotNil(t, ActivityData(nil))
}
