package handler

import (
	"errors"

	"breneo/internal/delivery/http/dto"
	"breneo/internal/delivery/http/middleware"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	users      usecase.UserUsecase
	profiles   usecase.MatchProfileUsecase
	assessment usecase.AssessmentUsecase
}

func NewUserHandler(users usecase.UserUsecase, profiles usecase.MatchProfileUsecase, assessment usecase.AssessmentUsecase) *UserHandler {
	return &UserHandler{users: users, profiles: profiles, assessment: assessment}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Get("/me/match-profile", h.GetMatchProfile)
	r.Put("/me/match-profile", h.UpdateMatchProfile)
	r.Get("/me/top-skills", h.TopSkills)
	r.Post("/me/assessment-answers", h.RecordAnswer)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	me, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, me)
}

func (h *UserHandler) GetMatchProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	p, err := h.profiles.GetMatchProfile(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p.Profile)
}

func (h *UserHandler) UpdateMatchProfile(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.MatchProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.profiles.UpdateMatchProfile(c.Context(), userID, req.Profile())
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, saved.Profile)
}

func (h *UserHandler) TopSkills(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	// limit <= 0 returns every skill
	limit := min(fiber.Query(c, "limit", 5), 100)
	top, err := h.assessment.TopSkills(c.Context(), userID, limit)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, top)
}

func (h *UserHandler) RecordAnswer(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.AssessmentAnswerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.assessment.RecordAnswer(c.Context(), userID, req.QuestionID, req.Answer); err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Answer recorded", nil)
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrMatchProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
