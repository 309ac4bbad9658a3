package dto

import "breneo/internal/domain/matching"

type MatchProfileRequest struct {
	UserSkills                []string           `json:"user_skills" validate:"max=500,dive,max=200"`
	YearsExperienceTotal      *float64           `json:"years_experience_total" validate:"omitempty,gte=0,lte=80"`
	YearsExperienceByIndustry map[string]float64 `json:"years_experience_by_industry" validate:"dive,gte=0,lte=80"`
	IndustryTags              []string           `json:"industry_tags" validate:"max=50,dive,max=100"`
	Seniority                 string             `json:"seniority" validate:"max=50"`
	Languages                 []string           `json:"languages" validate:"max=20,dive,max=100"`
	RoleInterests             []string           `json:"role_interests" validate:"max=50,dive,max=200"`
	TechStackExperience       []string           `json:"tech_stack_experience" validate:"max=200,dive,max=200"`
}

func (r MatchProfileRequest) Profile() matching.UserMatchProfile {
	return matching.UserMatchProfile{
		UserSkills:                r.UserSkills,
		YearsExperienceTotal:      r.YearsExperienceTotal,
		YearsExperienceByIndustry: r.YearsExperienceByIndustry,
		IndustryTags:              r.IndustryTags,
		Seniority:                 matching.Seniority(r.Seniority),
		Languages:                 r.Languages,
		RoleInterests:             r.RoleInterests,
		TechStackExperience:       r.TechStackExperience,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
