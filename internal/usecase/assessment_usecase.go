package usecase

import (
	"context"
	"strings"

	"breneo/internal/domain/matching"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

type AssessmentUsecase interface {
	RecordAnswer(ctx context.Context, userID uuid.UUID, questionID string, answer matching.Answer) error
	TopSkills(ctx context.Context, userID uuid.UUID, limit int) ([]matching.SkillScore, error)
}

type Assessment struct {
	answers repository.AssessmentRepository
}

func NewAssessmentUsecase(answers repository.AssessmentRepository) *Assessment {
	return &Assessment{answers: answers}
}

func (u *Assessment) RecordAnswer(ctx context.Context, userID uuid.UUID, questionID string, answer matching.Answer) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	questionID = strings.TrimSpace(questionID)
	if questionID == "" || answer == nil {
		return ErrInvalidInput
	}
	if err := u.answers.SaveAnswer(ctx, userID, questionID, answer); err != nil {
		return ErrInternal
	}
	return nil
}

// TopSkills ranks the skills credited across every answer the user has
// given. A user with no answers gets an empty ranking.
func (u *Assessment) TopSkills(ctx context.Context, userID uuid.UUID, limit int) ([]matching.SkillScore, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	answers, err := u.answers.ListAnswersByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return matching.TopSkills(matching.CalculateSkillScores(answers), limit), nil
}
