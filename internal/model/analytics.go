package model

import "github.com/socialai-lab/backend/internal/entity"

type GetAnalyticsRequest struct{}

type GetAnalyticsResponse struct {
	Analytics entity.AnalyticsSnapshot `json:"analytics"`
}
