package model

import "github.com/socialai-lab/backend/internal/entity"

type SendNotificationRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon,omitempty"`
	Points  int    `json:"points,omitempty"`
}

type SendNotificationResponse struct {
	Notification entity.Notification `json:"notification"`
}

type GetNotificationsRequest struct{}

type GetNotificationsResponse struct {
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

type MarkNotificationReadRequest struct {
	ID string `json:"id"`
}

type MarkNotificationReadResponse struct{}

type ClearAllNotificationsRequest struct{}

type ClearAllNotificationsResponse struct{}
