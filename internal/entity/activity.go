package entity

import "time"

// Map carries the arbitrary payload attached to an activity record.
type Map map[string]any

// MaxActivities caps the activity log; the oldest records are evicted on
// overflow.
const MaxActivities = 100

type Activity struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Data      Map       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Tracked action names. Callers may log any action string; these are the ones
// the simulator itself inspects.
const (
	ActionCreatePost = "create_post"
)
