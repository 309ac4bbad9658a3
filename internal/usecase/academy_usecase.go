package usecase

import (
	"context"
	"errors"

	"breneo/internal/domain/academy"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

var ErrAcademyNotFound = errors.New("academy not found")

type AcademyUsecase interface {
	GetAcademy(ctx context.Context, id uuid.UUID) (academy.Profile, error)
}

type Academy struct {
	academies repository.AcademyRepository
}

func NewAcademyUsecase(academies repository.AcademyRepository) *Academy {
	return &Academy{academies: academies}
}

func (u *Academy) GetAcademy(ctx context.Context, id uuid.UUID) (academy.Profile, error) {
	if id == uuid.Nil {
		return academy.Profile{}, ErrAcademyNotFound
	}
	raw, err := u.academies.FindRawByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAcademyNotFound) {
			return academy.Profile{}, ErrAcademyNotFound
		}
		return academy.Profile{}, ErrInternal
	}
	return academy.FromWire(raw), nil
}
