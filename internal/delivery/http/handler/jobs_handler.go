package handler

import (
	"errors"

	"breneo/internal/delivery/http/dto"
	"breneo/internal/delivery/http/middleware"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobPublishUsecase
}

func NewJobsHandler(uc usecase.JobPublishUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs", h.Publish)
}

// Publish stores the job and notifies matching users before responding.
func (h *JobsHandler) Publish(c fiber.Ctx) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	var req dto.PublishJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.Publish(c.Context(), usecase.PublishInput{
		Title:              req.Title,
		Company:            req.Company,
		Location:           req.Location,
		Description:        req.Description,
		SkillsRequired:     req.SkillsRequired,
		SkillsPreferred:    req.SkillsPreferred,
		Seniority:          req.Seniority,
		RoleCategory:       req.RoleCategory,
		MinYearsExperience: req.MinYearsExperience,
		LanguagesRequired:  req.LanguagesRequired,
		TechStack:          req.TechStack,
		IndustryTags:       req.IndustryTags,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, "Job published", dto.PublishJobResponse{
		Job:      dto.NewJobSummary(res.Job),
		Notified: res.Notified,
	})
}
