package model

import "github.com/socialai-lab/backend/internal/entity"

type LogActivityRequest struct {
	Action string     `json:"action"`
	Data   entity.Map `json:"data,omitempty"`
}

type LogActivityResponse struct{}

type GetActivitiesRequest struct{}

type GetActivitiesResponse struct {
	Activities []entity.Activity `json:"activities"`
}
