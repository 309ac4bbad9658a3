package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already taken")
)

// Repository stores accounts. CreateUser returns ErrEmailTaken when the
// email is already registered.
type Repository interface {
	CreateUser(ctx context.Context, u User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}
