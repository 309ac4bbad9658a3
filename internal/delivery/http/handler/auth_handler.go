package handler

import (
	"errors"

	"breneo/internal/delivery/http/dto"
	"breneo/internal/delivery/http/middleware"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"
	ucauth "breneo/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Register(c.Context(), ucauth.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Registered", dto.NewSessionResponse(sess))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

// Refresh takes the refresh token from a JSON body, falling back to the
// Authorization header.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, err := refreshTokenFrom(c)
	if err != nil {
		return err
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTokenResponse(pair))
}

func refreshTokenFrom(c fiber.Ctx) (string, error) {
	if len(c.Body()) > 0 {
		var req dto.RefreshRequest
		if err := bindBody(c, &req); err != nil {
			return "", err
		}
		if req.RefreshToken != "" {
			return req.RefreshToken, nil
		}
	}
	if tok, ok := middleware.BearerToken(c.Get(fiber.HeaderAuthorization)); ok {
		return tok, nil
	}
	return "", middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
}

func mapAuthUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials), errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
