package usecase

import (
	"context"
	"errors"
	"testing"

	"breneo/internal/domain/job"
	"breneo/internal/domain/matching"
	"breneo/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goJob(title string, skills ...string) job.Job {
	return job.Job{ID: uuid.New(), Title: title, Company: "Acme", SkillsRequired: skills}
}

func profileWith(userID uuid.UUID, skills ...string) user.MatchProfile {
	return user.MatchProfile{UserID: userID, Profile: matching.UserMatchProfile{UserSkills: skills, Seniority: matching.SeniorityUnknown}}
}

func TestMatchingUsecase_MatchJob(t *testing.T) {
	userID := uuid.New()
	j := goJob("Backend Engineer", "Go")
	uc := NewMatchingUsecase(&fakeJobRepo{jobs: []job.Job{j}}, newFakeProfileRepo(profileWith(userID, "Go")), nil, nil)

	got, err := uc.MatchJob(context.Background(), userID, j.ID)
	require.NoError(t, err)
	assert.Equal(t, j.ID, got.Job.ID)
	assert.Equal(t, 92, got.Result.OverallPercent)
	assert.Equal(t, "Best match", got.Label)
	assert.Equal(t, []string{"Best match", matching.BadgeStrongSkills}, got.Result.Badges)
	assert.Empty(t, got.Result.MissingCritical)
}

func TestMatchingUsecase_MatchJob_Errors(t *testing.T) {
	userID := uuid.New()
	j := goJob("Backend Engineer", "Go")

	t.Run("anonymous", func(t *testing.T) {
		uc := NewMatchingUsecase(&fakeJobRepo{}, newFakeProfileRepo(), nil, nil)
		_, err := uc.MatchJob(context.Background(), uuid.Nil, j.ID)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown job", func(t *testing.T) {
		uc := NewMatchingUsecase(&fakeJobRepo{}, newFakeProfileRepo(profileWith(userID, "Go")), nil, nil)
		_, err := uc.MatchJob(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("no profile", func(t *testing.T) {
		uc := NewMatchingUsecase(&fakeJobRepo{jobs: []job.Job{j}}, newFakeProfileRepo(), nil, nil)
		_, err := uc.MatchJob(context.Background(), userID, j.ID)
		assert.ErrorIs(t, err, ErrMatchProfileNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		uc := NewMatchingUsecase(&fakeJobRepo{err: errors.New("boom")}, newFakeProfileRepo(), nil, nil)
		_, err := uc.MatchJob(context.Background(), userID, j.ID)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestMatchingUsecase_ProfileIsCached(t *testing.T) {
	userID := uuid.New()
	j := goJob("Backend Engineer", "Go")
	profiles := newFakeProfileRepo(profileWith(userID, "Go"))
	c := newFakeCache()
	uc := NewMatchingUsecase(&fakeJobRepo{jobs: []job.Job{j}}, profiles, c, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.MatchJob(context.Background(), userID, j.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, profiles.finds)
}
