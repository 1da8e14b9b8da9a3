package entity

import "time"

// DailyChallenge is the single active challenge instance. A stored instance
// whose day key no longer matches today is replaced wholesale, never merged.
//
// Completed guards the completion notification: the stored source this design
// derives from re-checked progress>=target on every update and so re-fired
// the notification on duplicate calls after completion. The flag makes the
// notification fire exactly once per instance.
type DailyChallenge struct {
	ID        string        `json:"id"`
	Task      string        `json:"task"`
	Reward    int           `json:"reward"`
	Progress  int           `json:"progress"`
	Target    int           `json:"target"`
	ExpiresIn time.Duration `json:"expiresIn"`
	Completed bool          `json:"completed"`
}

// StoredChallenge wraps the active challenge with its calendar-day key.
type StoredChallenge struct {
	Date      string         `json:"date"`
	Challenge DailyChallenge `json:"challenge"`
}
