package job

import (
	"time"

	"breneo/internal/domain/matching"

	"github.com/google/uuid"
)

type Job struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Location           string
	Description        string
	SkillsRequired     []string
	SkillsPreferred    []string
	Seniority          *string
	RoleCategory       string
	MinYearsExperience *float64
	LanguagesRequired  []string
	TechStack          []string
	IndustryTags       *string
	PostedAt           *time.Time
	CreatedAt          time.Time
}

// Structured converts the stored job into the scorer's input. The industry
// tag column is parsed here; an unknown seniority is treated as absent.
func (j Job) Structured() matching.StructuredJob {
	out := matching.StructuredJob{
		SkillsRequired:     j.SkillsRequired,
		SkillsPreferred:    j.SkillsPreferred,
		RoleCategory:       j.RoleCategory,
		MinYearsExperience: j.MinYearsExperience,
		LanguagesRequired:  j.LanguagesRequired,
		TechStack:          j.TechStack,
		IndustryTags:       matching.ParseJobIndustryTags(j.IndustryTags),
	}
	if j.Seniority != nil {
		if s := matching.ParseSeniority(*j.Seniority); s != matching.SeniorityUnknown {
			out.Seniority = &s
		}
	}
	return out
}
