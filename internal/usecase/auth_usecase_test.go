package usecase

import (
	"context"
	"testing"
	"time"

	"breneo/internal/domain/matching"
	"breneo/internal/pkg/jwt"
	ucauth "breneo/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWT() *jwt.HMACService {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func newTestAuth(users *fakeUserRepo, profiles *fakeProfileRepo, svc jwt.Service) *Auth {
	creds := ucauth.NewServiceWithCost(users, bcrypt.MinCost)
	// a nil *fakeProfileRepo would be a non-nil interface
	if profiles == nil {
		return NewAuthUsecaseWithCredentials(creds, users, nil, svc, nil)
	}
	return NewAuthUsecaseWithCredentials(creds, users, profiles, svc, nil)
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	uc := newTestAuth(users, profiles, newTestJWT())
	ctx := context.Background()

	reg, err := uc.Register(ctx, ucauth.RegisterInput{Email: " Ada@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", reg.User.Email)
	assert.Empty(t, reg.User.PasswordHash)
	assert.NotEmpty(t, reg.Tokens.AccessToken)
	assert.NotEmpty(t, reg.Tokens.RefreshToken)

	p, err := profiles.FindByUserID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, matching.SeniorityUnknown, p.Profile.Seniority)

	_, err = uc.Register(ctx, ucauth.RegisterInput{Email: "ada@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ucauth.ErrEmailAlreadyRegistered)

	_, err = uc.Login(ctx, ucauth.LoginInput{Email: "ada@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	logged, err := uc.Login(ctx, ucauth.LoginInput{Email: "ADA@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, logged.User.ID)

	rotated, err := uc.Refresh(ctx, logged.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	_, err = uc.Refresh(ctx, reg.Tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	_, err = uc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_RefreshFailures(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc := newTestJWT().WithClock(func() time.Time { return now })
	users := newFakeUserRepo()
	uc := newTestAuth(users, nil, svc)

	t.Run("unknown user", func(t *testing.T) {
		tok, err := svc.GenerateRefreshToken(uuid.New())
		require.NoError(t, err)
		_, err = uc.Refresh(ctx, tok)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		sess, err := uc.Register(ctx, ucauth.RegisterInput{Email: "exp@example.com", Password: "password1"})
		require.NoError(t, err)
		now = now.Add(2 * time.Hour)
		_, err = uc.Refresh(ctx, sess.Tokens.RefreshToken)
		assert.ErrorIs(t, err, ErrRefreshTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := uc.Refresh(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuth_RegisterRejectsBadInput(t *testing.T) {
	uc := newTestAuth(newFakeUserRepo(), nil, newTestJWT())
	cases := []ucauth.RegisterInput{
		{Email: "not-an-email", Password: "long enough"},
		{Email: "a@b.co", Password: "short"},
		{Email: "@b.co", Password: "long enough"},
	}
	for _, in := range cases {
		_, err := uc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ucauth.ErrInvalidInput, in.Email)
	}
}
