package usecase

import (
	"context"
	"errors"
	"log"

	"breneo/internal/domain/job"
	"breneo/internal/domain/matching"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobMatch struct {
	Job    job.Job
	Result matching.MatchResult
	Label  string
}

type MatchingUsecase interface {
	MatchJob(ctx context.Context, userID, jobID uuid.UUID) (JobMatch, error)
}

type Matching struct {
	jobs    repository.JobRepository
	profile profileLoader
}

func NewMatchingUsecase(jobs repository.JobRepository, profiles repository.MatchProfileRepository, cache MatchCache, logger *log.Logger) *Matching {
	return &Matching{
		jobs:    jobs,
		profile: profileLoader{profiles: profiles, cache: cache, logger: logger},
	}
}

func (u *Matching) MatchJob(ctx context.Context, userID, jobID uuid.UUID) (JobMatch, error) {
	if userID == uuid.Nil {
		return JobMatch{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return JobMatch{}, ErrJobNotFound
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobMatch{}, ErrJobNotFound
		}
		return JobMatch{}, ErrInternal
	}

	profile, err := u.profile.load(ctx, userID)
	if err != nil {
		return JobMatch{}, err
	}

	res := matching.ComputeMatch(j.Structured(), profile)
	overall := res.OverallPercent
	return JobMatch{Job: j, Result: res, Label: matching.QualityLabel(&overall)}, nil
}
