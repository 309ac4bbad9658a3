package handler

import (
	"errors"

	"breneo/internal/delivery/http/middleware"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AcademyHandler struct {
	uc usecase.AcademyUsecase
}

func NewAcademyHandler(uc usecase.AcademyUsecase) *AcademyHandler {
	return &AcademyHandler{uc: uc}
}

func (h *AcademyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/academies/:id", h.GetAcademy)
}

func (h *AcademyHandler) GetAcademy(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "Academy not found")
	if err != nil {
		return err
	}

	p, err := h.uc.GetAcademy(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAcademyNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Academy not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}
