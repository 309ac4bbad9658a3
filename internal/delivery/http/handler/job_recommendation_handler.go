package handler

import (
	"breneo/internal/delivery/http/dto"
	"breneo/internal/pkg/response"
	"breneo/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r != nil {
		r.Get("/jobs/recommendations", h.GetRecommendations)
	}
}

// GetRecommendations ranks recent jobs against the caller's match profile.
// Query: limit (1..50, default 20), offset, min_score (0..100).
func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	pg := pageQuery(c, 20, 50)
	items, err := h.uc.GetRecommendations(c.Context(), userID, usecase.JobRecommendationParams{
		Limit:    pg.Limit,
		Offset:   pg.Offset,
		MinScore: clamp(fiber.Query(c, "min_score", 0), 0, 100),
	})
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := make([]dto.JobRecommendationResponse, len(items))
	for i, it := range items {
		out[i] = dto.NewJobRecommendationResponse(it)
	}
	return response.List(c, out, pg.Limit, pg.Offset)
}
