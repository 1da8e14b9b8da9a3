package entity

import (
	"time"

	"github.com/socialai-lab/backend/pkg/enum"
)

type ToastType string

var (
	ToastSuccess = enum.New(ToastType("success"))
	ToastError   = enum.New(ToastType("error"))
	ToastWarning = enum.New(ToastType("warning"))
	ToastInfo    = enum.New(ToastType("info"))
)

// DefaultToastDuration applies when the caller passes a zero duration.
const DefaultToastDuration = 3 * time.Second

// NotificationToastDuration is the fixed duration of toasts bridged from
// durable notifications.
const NotificationToastDuration = 4 * time.Second

// ToastAction is an optional button on a toast. OnClick stays in process; only
// the label travels to clients.
type ToastAction struct {
	Label   string `json:"label"`
	OnClick func() `json:"-"`
}

// Toast is transient and never persisted. A full restart clears the queue
// unconditionally.
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Type      ToastType     `json:"type"`
	Duration  time.Duration `json:"duration"`
	Action    *ToastAction  `json:"action,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
