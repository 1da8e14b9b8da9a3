package model

import "github.com/socialai-lab/backend/internal/entity"

type AnalyzeMoodRequest struct{}

type AnalyzeMoodResponse struct {
	Result entity.MoodResult `json:"result"`
}
