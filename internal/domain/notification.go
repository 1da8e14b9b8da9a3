package domain

import (
	"context"
	"time"

	"github.com/socialai-lab/backend/internal/domain/toast"
	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/enum"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/idutil"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

type NotificationDomain interface {
	Send(context.Context, *model.SendNotificationRequest) (*model.SendNotificationResponse, error)
	GetList(context.Context, *model.GetNotificationsRequest) (*model.GetNotificationsResponse, error)
	MarkRead(context.Context, *model.MarkNotificationReadRequest) (*model.MarkNotificationReadResponse, error)
	ClearAll(context.Context, *model.ClearAllNotificationsRequest) (*model.ClearAllNotificationsResponse, error)
}

type notificationDomain struct {
	notificationRepo repository.NotificationRepository
	toastEngine      *toast.Engine
}

func NewNotificationDomain(
	notificationRepo repository.NotificationRepository,
	toastEngine *toast.Engine,
) *notificationDomain {
	return &notificationDomain{
		notificationRepo: notificationRepo,
		toastEngine:      toastEngine,
	}
}

// Send writes the durable record and bridges it to a transient toast. It is
// synchronous; the latency envelope does not apply here.
func (d *notificationDomain) Send(
	ctx context.Context, req *model.SendNotificationRequest,
) (*model.SendNotificationResponse, error) {
	typ, err := enum.ToEnum[entity.NotificationType](req.Type)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid notification type: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid notification type %s", req.Type)
	}

	notification := &entity.Notification{
		ID:        idutil.New("notif"),
		Type:      typ,
		Title:     req.Title,
		Message:   req.Message,
		Icon:      req.Icon,
		Points:    req.Points,
		Timestamp: time.Now(),
		Read:      false,
	}

	if err := d.notificationRepo.Prepend(ctx, notification); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot persist notification: %v", err)
		return nil, errorx.Unknown
	}

	// Durable notifications always surface as an info toast with the fixed
	// duration, independent of what callers do with toasts elsewhere.
	d.toastEngine.Push(req.Message, entity.ToastInfo, entity.NotificationToastDuration, nil)

	return &model.SendNotificationResponse{Notification: *notification}, nil
}

func (d *notificationDomain) GetList(
	ctx context.Context, req *model.GetNotificationsRequest,
) (*model.GetNotificationsResponse, error) {
	notifications := d.notificationRepo.GetList(ctx)

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &model.GetNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (d *notificationDomain) MarkRead(
	ctx context.Context, req *model.MarkNotificationReadRequest,
) (*model.MarkNotificationReadResponse, error) {
	if err := d.notificationRepo.MarkRead(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notification read: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MarkNotificationReadResponse{}, nil
}

func (d *notificationDomain) ClearAll(
	ctx context.Context, req *model.ClearAllNotificationsRequest,
) (*model.ClearAllNotificationsResponse, error) {
	if err := d.notificationRepo.Clear(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear notifications: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ClearAllNotificationsResponse{}, nil
}
