package entity

import "time"

// AchievementDefinition is a static catalog entry. The catalog itself lives in
// internal/common.
type AchievementDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

// AchievementUnlock records that a catalog entry was unlocked. At most one
// unlock exists per definition id.
type AchievementUnlock struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
