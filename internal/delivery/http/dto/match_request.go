package dto

import (
	"encoding/json"
	"errors"

	"breneo/internal/domain/matching"
)

type SkillMatchRequest struct {
	UserSkills []string `json:"user_skills" validate:"max=500,dive,max=200"`
	JobSkills  []string `json:"job_skills" validate:"max=500,dive,max=200"`
	JobTitle   string   `json:"job_title" validate:"max=300"`
}

type IndustryMatchRequest struct {
	JobTags           IndustryTags       `json:"job_tags"`
	UserIndustryYears map[string]float64 `json:"user_industry_years" validate:"dive,gte=0"`
}

type SkillScoresRequest struct {
	Answers []matching.Answer `json:"answers" validate:"max=1000"`
	Limit   int               `json:"limit" validate:"gte=0,lte=100"`
}

type AssessmentAnswerRequest struct {
	QuestionID string          `json:"question_id" validate:"required,max=100"`
	Answer     matching.Answer `json:"answer" validate:"required"`
}

// IndustryTags accepts either a comma-separated string or an array of strings,
// the two shapes job records carry.
type IndustryTags []string

func (t *IndustryTags) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = matching.ParseJobIndustryTags(&s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return errors.New("job_tags must be a string or an array of strings")
	}
	*t = list
	return nil
}
