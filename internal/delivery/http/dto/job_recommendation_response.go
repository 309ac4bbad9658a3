package dto

import (
	"breneo/internal/domain/matching"
	"breneo/internal/usecase"

	"github.com/google/uuid"
)

type JobRecommendationResponse struct {
	JobID           uuid.UUID            `json:"job_id"`
	Title           string               `json:"title"`
	CompanyName     string               `json:"company_name"`
	Location        string               `json:"location"`
	PostedDate      string               `json:"posted_date"`
	MatchScore      int                  `json:"match_score"`
	Label           string               `json:"label"`
	Badges          []string             `json:"badges"`
	MissingCritical []string             `json:"missing_critical"`
	Buckets         MatchBucketsResponse `json:"buckets"`
}

type MatchBucketsResponse struct {
	Skills   *int `json:"skills"`
	ExpLevel *int `json:"exp_level"`
	Industry *int `json:"industry"`
}

func NewJobRecommendationResponse(it usecase.JobRecommendationItem) JobRecommendationResponse {
	out := JobRecommendationResponse{
		JobID:           it.JobID,
		Title:           it.Title,
		CompanyName:     it.CompanyName,
		Location:        it.Location,
		MatchScore:      it.OverallPercent,
		Label:           it.Label,
		Badges:          nonNilStrings(it.Badges),
		MissingCritical: nonNilStrings(it.MissingCritical),
		Buckets:         bucketsOf(it.Result),
	}
	if it.PostedAt != nil {
		out.PostedDate = it.PostedAt.UTC().Format("2006-01-02")
	}
	return out
}

func bucketsOf(r matching.MatchResult) MatchBucketsResponse {
	return MatchBucketsResponse{
		Skills:   r.Skills.Percent,
		ExpLevel: r.ExpLevel.Percent,
		Industry: r.Industry.Percent,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
