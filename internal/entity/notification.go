package entity

import (
	"time"

	"github.com/socialai-lab/backend/pkg/enum"
)

type NotificationType string

var (
	NotificationLike              = enum.New(NotificationType("like"))
	NotificationFollow            = enum.New(NotificationType("follow"))
	NotificationMention           = enum.New(NotificationType("mention"))
	NotificationAchievement       = enum.New(NotificationType("achievement"))
	NotificationChallengeComplete = enum.New(NotificationType("challenge_complete"))
	NotificationSystem            = enum.New(NotificationType("system"))
)

// MaxNotifications caps the durable notification list; the oldest records are
// evicted on overflow.
const MaxNotifications = 50

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Icon      string           `json:"icon,omitempty"`
	Points    int              `json:"points,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
