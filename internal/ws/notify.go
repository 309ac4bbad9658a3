package ws

import (
	"encoding/json"
	"time"

	"breneo/internal/domain/notification"

	"github.com/google/uuid"
)

const EventJobMatch = "job_match"

type JobMatchEvent struct {
	Type           string    `json:"type"`
	NotificationID uuid.UUID `json:"notification_id"`
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title"`
	MatchPercent   int       `json:"match_percent"`
	Timestamp      string    `json:"timestamp"`
}

// NotifyJobMatch pushes n to the user's open connections, if any.
func (h *Hub) NotifyJobMatch(n notification.Notification) {
	if h == nil || n.UserID == uuid.Nil {
		return
	}

	ts := n.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	evt := JobMatchEvent{
		Type:           EventJobMatch,
		NotificationID: n.ID,
		JobID:          n.JobID,
		Title:          n.Title,
		MatchPercent:   n.MatchPercent,
		Timestamp:      ts.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.SendToUser(n.UserID, b)
}
