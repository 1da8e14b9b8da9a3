package model

import "time"

// Achievement is a catalog entry merged with its unlock state.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Points      int        `json:"points"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type GetAchievementsRequest struct{}

type GetAchievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
}

type UnlockAchievementRequest struct {
	ID string `json:"id"`
}

type UnlockAchievementResponse struct {
	Success         bool        `json:"success"`
	AlreadyUnlocked bool        `json:"already_unlocked,omitempty"`
	Achievement     Achievement `json:"achievement,omitempty"`
}
