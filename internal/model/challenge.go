package model

import "github.com/socialai-lab/backend/internal/entity"

type GetDailyChallengeRequest struct{}

type GetDailyChallengeResponse struct {
	Challenge entity.DailyChallenge `json:"challenge"`
}

type UpdateChallengeProgressRequest struct {
	ID        string `json:"id"`
	Increment int    `json:"increment,omitempty"`
}

type UpdateChallengeProgressResponse struct {
	// Challenge is nil when the id does not match the active challenge; that
	// case is a silent no-op, not an error.
	Challenge *entity.DailyChallenge `json:"challenge,omitempty"`
}
