package usecase

import (
	"context"
	"errors"
	"log"

	"breneo/internal/domain/matching"
	"breneo/internal/domain/user"
	"breneo/internal/pkg/jwt"
	"breneo/internal/repository"
	ucauth "breneo/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

// TokenPair is what every successful credential exchange hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is an authenticated user plus a fresh token pair.
type Session struct {
	User   user.User
	Tokens TokenPair
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (Session, error)
	Login(ctx context.Context, in ucauth.LoginInput) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	creds    *ucauth.Service
	users    user.Repository
	profiles repository.MatchProfileRepository
	jwt      jwt.Service
	logger   *log.Logger
}

func NewAuthUsecase(users user.Repository, profiles repository.MatchProfileRepository, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	return NewAuthUsecaseWithCredentials(ucauth.NewService(users), users, profiles, jwtSvc, logger)
}

func NewAuthUsecaseWithCredentials(creds *ucauth.Service, users user.Repository, profiles repository.MatchProfileRepository, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	return &Auth{creds: creds, users: users, profiles: profiles, jwt: jwtSvc, logger: logger}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (Session, error) {
	usr, err := u.creds.Register(ctx, in)
	if err != nil {
		return Session{}, err
	}

	u.seedProfile(ctx, usr)

	tokens, err := u.issue(usr)
	if err != nil {
		return Session{}, err
	}
	u.logf("Auth | registered | user_id=%s", usr.ID)
	return Session{User: usr, Tokens: tokens}, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	usr, err := u.creds.Login(ctx, in)
	if err != nil {
		return Session{}, err
	}

	tokens, err := u.issue(usr)
	if err != nil {
		return Session{}, err
	}
	return Session{User: usr, Tokens: tokens}, nil
}

// Refresh rotates the pair. The account must still exist; the email in the
// new access token is re-read from storage.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenPair{}, ErrRefreshTokenExpired
	case err != nil, !u.jwt.IsRefreshToken(claims):
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}
	return u.issue(usr)
}

// seedProfile stores an empty match profile so matching endpoints answer
// before the user fills anything in. Failure is logged, not returned.
func (u *Auth) seedProfile(ctx context.Context, usr user.User) {
	if u.profiles == nil {
		return
	}
	empty := user.MatchProfile{UserID: usr.ID, Profile: matching.UserMatchProfile{Seniority: matching.SeniorityUnknown}}
	if _, err := u.profiles.Upsert(ctx, empty); err != nil {
		u.logf("Auth | empty match profile not created | user_id=%s error=%v", usr.ID, err)
	}
}

func (u *Auth) issue(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *Auth) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
