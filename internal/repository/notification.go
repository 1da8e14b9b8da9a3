package repository

import (
	"context"

	"github.com/pkg/math"
	"github.com/socialai-lab/backend/internal/common"
	"github.com/socialai-lab/backend/internal/entity"
)

type NotificationRepository interface {
	Prepend(ctx context.Context, n *entity.Notification) error
	GetList(ctx context.Context) []entity.Notification
	MarkRead(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type notificationRepository struct{}

func NewNotificationRepository() *notificationRepository {
	return &notificationRepository{}
}

// Prepend puts n first and evicts the oldest records beyond the cap.
func (r *notificationRepository) Prepend(ctx context.Context, n *entity.Notification) error {
	return updateJSON(ctx, common.KeyNotifications, []entity.Notification{},
		func(list []entity.Notification) ([]entity.Notification, error) {
			list = append([]entity.Notification{*n}, list...)
			return list[:math.MinInt(len(list), entity.MaxNotifications)], nil
		})
}

func (r *notificationRepository) GetList(ctx context.Context) []entity.Notification {
	return getJSON(ctx, common.KeyNotifications, []entity.Notification{})
}

// MarkRead flips the read flag. An unknown id is a silent no-op.
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return updateJSON(ctx, common.KeyNotifications, []entity.Notification{},
		func(list []entity.Notification) ([]entity.Notification, error) {
			for i := range list {
				if list[i].ID == id {
					list[i].Read = true
					break
				}
			}

			return list, nil
		})
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	return setJSON(ctx, common.KeyNotifications, []entity.Notification{})
}
