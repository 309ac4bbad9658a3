package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"breneo/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byID      map[uuid.UUID]user.User
	createErr error
	// hides rows from ExistsByEmail to simulate a concurrent insert
	hideExisting bool
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]user.User{}} }

func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, ex := range m.byID {
		if ex.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.hideExisting {
		return false, nil
	}
	for _, u := range m.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewServiceWithCost(newMemUsers(), bcrypt.MinCost)

	u, err := svc.Register(ctx, RegisterInput{Email: "  Ana@Example.COM ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	got, err := svc.Login(ctx, LoginInput{Email: "ANA@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_RegisterRejects(t *testing.T) {
	ctx := context.Background()
	svc := NewServiceWithCost(newMemUsers(), bcrypt.MinCost)

	for _, in := range []RegisterInput{
		{Email: "no-at-sign", Password: "longenough"},
		{Email: "@example.com", Password: "longenough"},
		{Email: "a@", Password: "longenough"},
		{Email: "a@example.com", Password: "short"},
		{Email: "a@example.com", Password: strings.Repeat("x", maxPasswordBytes+1)},
	} {
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := NewServiceWithCost(users, bcrypt.MinCost)

	_, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "A@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	users.hideExisting = true
	_, err = svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "password3"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestService_RegisterStorageFailure(t *testing.T) {
	users := newMemUsers()
	users.createErr = errors.New("db down")
	svc := NewServiceWithCost(users, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInternal)
}
