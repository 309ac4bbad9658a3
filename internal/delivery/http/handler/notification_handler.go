package handler

import (
	"errors"

	"breneo/internal/delivery/http/middleware"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/notifications")
	grp.Get("", h.List)
	grp.Post("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	pg := pageQuery(c, 20, 100)
	items, err := h.uc.List(c.Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.List(c, items, pg.Limit, pg.Offset)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id", "Notification not found")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), userID, id); err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapNotificationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
