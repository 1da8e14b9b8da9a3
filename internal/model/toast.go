package model

import "github.com/socialai-lab/backend/internal/entity"

type ShowToastRequest struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	// DurationMs overrides the default auto-dismiss delay when positive.
	DurationMs  int    `json:"duration_ms,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
}

type ShowToastResponse struct {
	Toast entity.Toast `json:"toast"`
}

type DismissToastRequest struct {
	ID string `json:"id"`
}

type DismissToastResponse struct{}

type GetToastsRequest struct{}

type GetToastsResponse struct {
	Toasts []entity.Toast `json:"toasts"`
}
