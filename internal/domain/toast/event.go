package toast

import "github.com/socialai-lab/backend/internal/entity"

const (
	OpToastShow    = "toast_show"
	OpToastDismiss = "toast_dismiss"
)

// Event is the envelope delivered to subscribed sessions and, through the ws
// feed, to the presentation layer.
type Event struct {
	Op    string       `json:"o"`
	Toast entity.Toast `json:"d"`
}
