package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"breneo/internal/domain/matching"
	"breneo/internal/domain/user"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type MatchProfileUsecase interface {
	GetMatchProfile(ctx context.Context, userID uuid.UUID) (user.MatchProfile, error)
	UpdateMatchProfile(ctx context.Context, userID uuid.UUID, in matching.UserMatchProfile) (user.MatchProfile, error)
}

type MatchProfile struct {
	profiles repository.MatchProfileRepository
	cache    MatchCache
	logger   *log.Logger
}

func NewMatchProfileUsecase(profiles repository.MatchProfileRepository, cache MatchCache, logger *log.Logger) *MatchProfile {
	return &MatchProfile{profiles: profiles, cache: cache, logger: logger}
}

func (u *MatchProfile) GetMatchProfile(ctx context.Context, userID uuid.UUID) (user.MatchProfile, error) {
	if userID == uuid.Nil {
		return user.MatchProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchProfileNotFound) {
			return user.MatchProfile{}, ErrMatchProfileNotFound
		}
		return user.MatchProfile{}, ErrInternal
	}
	return p, nil
}

// UpdateMatchProfile replaces the stored profile and drops everything cached
// from the previous one.
func (u *MatchProfile) UpdateMatchProfile(ctx context.Context, userID uuid.UUID, in matching.UserMatchProfile) (user.MatchProfile, error) {
	if userID == uuid.Nil {
		return user.MatchProfile{}, ErrUnauthorized
	}
	clean, err := sanitizeProfile(in)
	if err != nil {
		return user.MatchProfile{}, err
	}

	saved, err := u.profiles.Upsert(ctx, user.MatchProfile{UserID: userID, Profile: clean})
	if err != nil {
		return user.MatchProfile{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateUser(ctx, userID.String()); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Cache invalidate failed | user_id=%s error=%v", userID, err)
		}
	}
	return saved, nil
}

func sanitizeProfile(in matching.UserMatchProfile) (matching.UserMatchProfile, error) {
	if in.YearsExperienceTotal != nil {
		v := *in.YearsExperienceTotal
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return matching.UserMatchProfile{}, ErrInvalidInput
		}
	}
	for _, v := range in.YearsExperienceByIndustry {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return matching.UserMatchProfile{}, ErrInvalidInput
		}
	}

	out := in
	out.UserSkills = trimList(in.UserSkills)
	out.IndustryTags = trimList(in.IndustryTags)
	out.Languages = trimList(in.Languages)
	out.RoleInterests = trimList(in.RoleInterests)
	out.TechStackExperience = trimList(in.TechStackExperience)
	out.YearsExperienceByIndustry = matching.NormalizeIndustryYears(in.YearsExperienceByIndustry)
	out.Seniority = matching.ParseSeniority(string(in.Seniority))
	return out, nil
}

// trimList drops blank entries but keeps the user's spelling; matching
// normalizes on read.
func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
