package usecase

import (
	"context"
	"errors"
	"testing"

	"breneo/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessment_TopSkillsFromRecordedAnswers(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAssessmentRepo{}
	uc := NewAssessmentUsecase(repo)

	require.NoError(t, uc.RecordAnswer(context.Background(), userID, "q1", matching.Answer{"relatedSkills": []any{"Go", "SQL"}}))
	require.NoError(t, uc.RecordAnswer(context.Background(), userID, "q2", matching.Answer{"relatedSkills": []any{"SQL"}}))

	top, err := uc.TopSkills(context.Background(), userID, 1)
	require.NoError(t, err)
	assert.Equal(t, []matching.SkillScore{{Skill: "SQL", Score: 2}}, top)

	none, err := uc.TopSkills(context.Background(), uuid.New(), 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAssessment_Errors(t *testing.T) {
	uc := NewAssessmentUsecase(&fakeAssessmentRepo{})
	assert.ErrorIs(t, uc.RecordAnswer(context.Background(), uuid.New(), " ", matching.Answer{}), ErrInvalidInput)
	assert.ErrorIs(t, uc.RecordAnswer(context.Background(), uuid.Nil, "q1", matching.Answer{}), ErrUnauthorized)

	broken := NewAssessmentUsecase(&fakeAssessmentRepo{err: errors.New("down")})
	_, err := broken.TopSkills(context.Background(), uuid.New(), 3)
	assert.ErrorIs(t, err, ErrInternal)
}
