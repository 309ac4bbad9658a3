package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"breneo/internal/domain/matching"
	"breneo/internal/infrastructure/cache"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNoJobsFound = errors.New("no jobs found")
)

// recommendationWindow bounds how many of the newest jobs are scored per
// request; paging happens over the ranked window.
const recommendationWindow = 200

type JobRecommendationParams struct {
	Limit    int
	Offset   int
	MinScore int
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]JobRecommendationItem, error)
}

type JobRecommendationItem struct {
	JobID           uuid.UUID            `json:"job_id"`
	Title           string               `json:"title"`
	CompanyName     string               `json:"company_name"`
	Location        string               `json:"location"`
	PostedAt        *time.Time           `json:"posted_at"`
	OverallPercent  int                  `json:"overall_percent"`
	Label           string               `json:"label"`
	Badges          []string             `json:"badges"`
	MissingCritical []string             `json:"missing_critical"`
	Result          matching.MatchResult `json:"result"`
}

type JobRecommendation struct {
	jobs    repository.JobRepository
	profile profileLoader
	cache   MatchCache
	logger  *log.Logger
}

func NewJobRecommendationUsecase(jobs repository.JobRepository, profiles repository.MatchProfileRepository, cache MatchCache, logger *log.Logger) *JobRecommendation {
	return &JobRecommendation{
		jobs:    jobs,
		profile: profileLoader{profiles: profiles, cache: cache, logger: logger},
		cache:   cache,
		logger:  logger,
	}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]JobRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}
	if minScore > 100 {
		minScore = 100
	}

	key := cache.RecommendationsKey(userID.String(), limit, offset, minScore)
	if u.cache != nil {
		var cached []JobRecommendationItem
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logf("[Reco] Cache HIT: %s", key)
			return cached, nil
		}
		u.logf("[Reco] Cache MISS: %s", key)
	}

	profile, err := u.profile.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobs.ListJobs(ctx, recommendationWindow, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}

	ranked := make([]JobRecommendationItem, 0, len(jobs))
	for _, j := range jobs {
		if j.ID == uuid.Nil {
			continue
		}
		res := matching.ComputeMatch(j.Structured(), profile)
		if res.OverallPercent < minScore {
			continue
		}
		overall := res.OverallPercent
		ranked = append(ranked, JobRecommendationItem{
			JobID:           j.ID,
			Title:           j.Title,
			CompanyName:     j.Company,
			Location:        j.Location,
			PostedAt:        j.PostedAt,
			OverallPercent:  overall,
			Label:           matching.QualityLabel(&overall),
			Badges:          res.Badges,
			MissingCritical: res.MissingCritical,
			Result:          res,
		})
	}

	// jobs arrive newest first, so equal scores keep recency order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallPercent > ranked[j].OverallPercent
	})

	out := []JobRecommendationItem{}
	if offset < len(ranked) {
		end := offset + limit
		if end > len(ranked) {
			end = len(ranked)
		}
		out = ranked[offset:end]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err == nil {
			u.logf("[Reco] Cache SET: %s", key)
		}
	}
	return out, nil
}

func (u *JobRecommendation) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
