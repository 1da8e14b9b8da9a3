package entity

import "time"

// Mood is one of a fixed catalog of descriptors. Detection is decorative and
// non-deterministic; the only invariant is that the result is drawn from the
// catalog.
type Mood struct {
	Mood       string  `json:"mood"`
	Emoji      string  `json:"emoji"`
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence"`
}

type MoodResult struct {
	Mood
	Recommendations []string  `json:"recommendations"`
	Timestamp       time.Time `json:"timestamp"`
}
