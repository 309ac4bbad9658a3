package usecase

import (
	"context"
	"testing"

	"breneo/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRecommendation_RanksFiltersAndPages(t *testing.T) {
	userID := uuid.New()
	python := goJob("Data Engineer", "Python")
	first := goJob("Backend Engineer", "Go")
	second := goJob("Platform Engineer", "Go")
	jobs := &fakeJobRepo{jobs: []job.Job{python, first, second}}
	uc := NewJobRecommendationUsecase(jobs, newFakeProfileRepo(profileWith(userID, "Go")), nil, nil)

	all, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].JobID)
	assert.Equal(t, second.ID, all[1].JobID)
	assert.Equal(t, python.ID, all[2].JobID)
	assert.Equal(t, 0, all[2].OverallPercent)
	assert.Equal(t, []string{"python"}, all[2].MissingCritical)

	filtered, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 10, MinScore: 50})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	page, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 1, Offset: 1, MinScore: 50})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].JobID)
	assert.Equal(t, "Best match", page[0].Label)

	past, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 5, Offset: 40})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestJobRecommendation_NoJobs(t *testing.T) {
	userID := uuid.New()
	uc := NewJobRecommendationUsecase(&fakeJobRepo{}, newFakeProfileRepo(profileWith(userID, "Go")), nil, nil)
	_, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{})
	assert.ErrorIs(t, err, ErrNoJobsFound)
}

func TestJobRecommendation_ServesCachedPage(t *testing.T) {
	userID := uuid.New()
	jobs := &fakeJobRepo{jobs: []job.Job{goJob("Backend Engineer", "Go")}}
	c := newFakeCache()
	uc := NewJobRecommendationUsecase(jobs, newFakeProfileRepo(profileWith(userID, "Go")), c, nil)

	_, err := uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 5})
	require.NoError(t, err)
	_, err = uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, jobs.calls)

	require.NoError(t, c.InvalidateUser(context.Background(), userID.String()))
	_, err = uc.GetRecommendations(context.Background(), userID, JobRecommendationParams{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, jobs.calls)
}
