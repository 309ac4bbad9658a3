package dto

import (
	"breneo/internal/domain/job"
	"breneo/internal/domain/matching"

	"github.com/google/uuid"
)

type SkillMatchResponse struct {
	Percent   int                     `json:"percent"`
	Label     string                  `json:"label"`
	Breakdown matching.MatchBreakdown `json:"breakdown"`
}

type SkillScoresResponse struct {
	Scores    *matching.SkillScores `json:"scores"`
	TopSkills []matching.SkillScore `json:"top_skills"`
}

type JobSummary struct {
	JobID       uuid.UUID `json:"job_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	PostedDate  string    `json:"posted_date"`
}

type JobMatchResponse struct {
	Job    JobSummary           `json:"job"`
	Label  string               `json:"label"`
	Result matching.MatchResult `json:"result"`
}

func NewJobSummary(j job.Job) JobSummary {
	out := JobSummary{
		JobID:       j.ID,
		Title:       j.Title,
		CompanyName: j.Company,
		Location:    j.Location,
	}
	if j.PostedAt != nil {
		out.PostedDate = j.PostedAt.UTC().Format("2006-01-02")
	}
	return out
}
