package usecase

import (
	"context"
	"errors"
	"log"

	"breneo/internal/domain/matching"
	"breneo/internal/infrastructure/cache"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

var ErrMatchProfileNotFound = errors.New("match profile not found")

// profileLoader reads a user's match profile through the cache.
type profileLoader struct {
	profiles repository.MatchProfileRepository
	cache    MatchCache
	logger   *log.Logger
}

func (l profileLoader) load(ctx context.Context, userID uuid.UUID) (matching.UserMatchProfile, error) {
	key := cache.ProfileKey(userID.String())
	if l.cache != nil {
		var cached matching.UserMatchProfile
		hit, err := l.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			l.logf("[Match] Cache HIT: %s", key)
			return cached, nil
		}
		l.logf("[Match] Cache MISS: %s", key)
	}

	p, err := l.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchProfileNotFound) {
			return matching.UserMatchProfile{}, ErrMatchProfileNotFound
		}
		return matching.UserMatchProfile{}, ErrInternal
	}

	if l.cache != nil {
		if err := l.cache.SetJSON(ctx, key, p.Profile, 0); err == nil {
			l.logf("[Match] Cache SET: %s", key)
		}
	}
	return p.Profile, nil
}

func (l profileLoader) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}
