package handler

import (
	"errors"

	"breneo/internal/delivery/http/dto"
	"breneo/internal/delivery/http/middleware"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// MatchHandler serves the stateless scorers. Callers send every input in the
// body; nothing is read from or written to storage.
type MatchHandler struct {
	uc usecase.ScoringUsecase
}

func NewMatchHandler(uc usecase.ScoringUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/skills", h.MatchSkills)
	grp.Post("/industry", h.MatchIndustry)
	grp.Post("/skill-scores", h.SkillScores)
}

func (h *MatchHandler) MatchSkills(c fiber.Ctx) error {
	var req dto.SkillMatchRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out := h.uc.MatchSkills(usecase.SkillMatchInput{
		UserSkills: req.UserSkills,
		JobSkills:  req.JobSkills,
		JobTitle:   req.JobTitle,
	})
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillMatchResponse{
		Percent:   out.Breakdown.Percent,
		Label:     out.Label,
		Breakdown: out.Breakdown,
	})
}

func (h *MatchHandler) MatchIndustry(c fiber.Ctx) error {
	var req dto.IndustryMatchRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	res := h.uc.MatchIndustry(req.JobTags, req.UserIndustryYears)
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) SkillScores(c fiber.Ctx) error {
	var req dto.SkillScoresRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	out := h.uc.ScoreAnswers(req.Answers, req.Limit)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillScoresResponse{
		Scores:    out.Scores,
		TopSkills: out.Top,
	})
}

type JobMatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewJobMatchHandler(uc usecase.MatchingUsecase) *JobMatchHandler {
	return &JobMatchHandler{uc: uc}
}

func (h *JobMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/:job_id/match", h.MatchJob)
}

func (h *JobMatchHandler) MatchJob(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id", "Job not found")
	if err != nil {
		return err
	}

	res, err := h.uc.MatchJob(c.Context(), userID, jobID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobMatchResponse{
		Job:    dto.NewJobSummary(res.Job),
		Label:  res.Label,
		Result: res.Result,
	})
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrMatchProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match profile not found", nil, err)
	case errors.Is(err, usecase.ErrNoJobsFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No jobs found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
