package domain

import (
	"context"
	"time"

	"github.com/socialai-lab/backend/internal/domain/toast"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/pkg/enum"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

// ToastDomain is the request-shaped surface over the toast engine for callers
// that do not hold the engine directly.
type ToastDomain interface {
	Show(context.Context, *model.ShowToastRequest) (*model.ShowToastResponse, error)
	Dismiss(context.Context, *model.DismissToastRequest) (*model.DismissToastResponse, error)
	GetList(context.Context, *model.GetToastsRequest) (*model.GetToastsResponse, error)
}

type toastDomain struct {
	engine *toast.Engine
}

func NewToastDomain(engine *toast.Engine) *toastDomain {
	return &toastDomain{engine: engine}
}

func (d *toastDomain) Show(
	ctx context.Context, req *model.ShowToastRequest,
) (*model.ShowToastResponse, error) {
	typ := entity.ToastInfo
	if req.Type != "" {
		var err error
		typ, err = enum.ToEnum[entity.ToastType](req.Type)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Invalid toast type: %v", err)
			return nil, errorx.New(errorx.BadRequest, "Invalid toast type %s", req.Type)
		}
	}

	var action *entity.ToastAction
	if req.ActionLabel != "" {
		action = &entity.ToastAction{Label: req.ActionLabel}
	}

	duration := time.Duration(req.DurationMs) * time.Millisecond
	pushed := d.engine.Push(req.Message, typ, duration, action)

	return &model.ShowToastResponse{Toast: pushed}, nil
}

func (d *toastDomain) Dismiss(
	ctx context.Context, req *model.DismissToastRequest,
) (*model.DismissToastResponse, error) {
	d.engine.Dismiss(req.ID)
	return &model.DismissToastResponse{}, nil
}

func (d *toastDomain) GetList(
	ctx context.Context, req *model.GetToastsRequest,
) (*model.GetToastsResponse, error) {
	return &model.GetToastsResponse{Toasts: d.engine.Active()}, nil
}
