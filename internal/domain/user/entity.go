package user

import (
	"time"

	"breneo/internal/domain/matching"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MatchProfile is the stored form of a candidate's matching inputs, built from
// profile data and assessment results.
type MatchProfile struct {
	UserID    uuid.UUID
	Profile   matching.UserMatchProfile
	UpdatedAt time.Time
}
