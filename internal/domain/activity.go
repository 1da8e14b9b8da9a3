package domain

import (
	"context"
	"time"

	"github.com/fatih/structs"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/idutil"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

type ActivityDomain interface {
	Log(context.Context, *model.LogActivityRequest) (*model.LogActivityResponse, error)
	GetList(context.Context, *model.GetActivitiesRequest) (*model.GetActivitiesResponse, error)
}

type activityDomain struct {
	activityRepo repository.ActivityRepository
}

func NewActivityDomain(activityRepo repository.ActivityRepository) *activityDomain {
	return &activityDomain{activityRepo: activityRepo}
}

// Log is synchronous; tracking calls are fire-and-forget from the caller's
// point of view and must not pay the latency envelope.
func (d *activityDomain) Log(
	ctx context.Context, req *model.LogActivityRequest,
) (*model.LogActivityResponse, error) {
	if req.Action == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty action")
	}

	data := req.Data
	if data == nil {
		data = entity.Map{}
	}

	activity := &entity.Activity{
		ID:        idutil.New("activity"),
		Action:    req.Action,
		Data:      data,
		Timestamp: time.Now(),
	}

	if err := d.activityRepo.Prepend(ctx, activity); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot persist activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LogActivityResponse{}, nil
}

func (d *activityDomain) GetList(
	ctx context.Context, req *model.GetActivitiesRequest,
) (*model.GetActivitiesResponse, error) {
	return &model.GetActivitiesResponse{
		Activities: d.activityRepo.GetList(ctx),
	}, nil
}

// ActivityData converts a typed payload into the loose map an Activity
// carries. Callers keep their payloads as structs and lower them here.
func ActivityData(payload any) entity.Map {
	if payload == nil {
		return entity.Map{}
	}

	return structs.Map(payload)
}
