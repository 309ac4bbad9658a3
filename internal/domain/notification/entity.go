package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	JobID        uuid.UUID  `json:"job_id"`
	Title        string     `json:"title"`
	MatchPercent int        `json:"match_percent"`
	ReadAt       *time.Time `json:"read_at"`
	CreatedAt    time.Time  `json:"created_at"`
}
