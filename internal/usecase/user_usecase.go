package usecase

import (
	"context"
	"errors"

	"breneo/internal/domain/user"
	"breneo/internal/repository"

	"github.com/google/uuid"
)

type Me struct {
	User         user.User          `json:"user"`
	MatchProfile *user.MatchProfile `json:"match_profile"`
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (Me, error)
}

type User struct {
	users    user.Repository
	profiles repository.MatchProfileRepository
}

func NewUserUsecase(users user.Repository, profiles repository.MatchProfileRepository) *User {
	return &User{users: users, profiles: profiles}
}

// GetMe returns the account with its match profile; a user who never saved
// a profile gets a nil one.
func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (Me, error) {
	if userID == uuid.Nil {
		return Me{}, ErrUnauthorized
	}
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Me{}, ErrUnauthorized
		}
		return Me{}, ErrInternal
	}
	usr.PasswordHash = ""

	out := Me{User: usr}
	p, err := u.profiles.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		out.MatchProfile = &p
	case errors.Is(err, repository.ErrMatchProfileNotFound):
	default:
		return Me{}, ErrInternal
	}
	return out, nil
}
