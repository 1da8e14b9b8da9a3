package model

import "github.com/socialai-lab/backend/internal/entity"

type GetSubscriptionRequest struct{}

type GetSubscriptionResponse struct {
	Subscription entity.Subscription `json:"subscription"`
}

type UpdateSubscriptionRequest struct {
	Tier string `json:"tier"`
}

type UpdateSubscriptionResponse struct {
	Success      bool                `json:"success"`
	Subscription entity.Subscription `json:"subscription"`
}

type CancelSubscriptionRequest struct{}

type CancelSubscriptionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
