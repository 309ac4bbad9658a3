package usecase

import (
	"context"
	"time"
)

// MatchCache is the slice of the Redis cache the matching usecases rely on.
// A nil MatchCache disables caching.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateUser(ctx context.Context, userID string) error
	InvalidateRecommendations(ctx context.Context) error
}
