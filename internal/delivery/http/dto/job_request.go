package dto

type PublishJobRequest struct {
	Title              string   `json:"title" validate:"required,max=300"`
	Company            string   `json:"company" validate:"max=200"`
	Location           string   `json:"location" validate:"max=200"`
	Description        string   `json:"description" validate:"max=20000"`
	SkillsRequired     []string `json:"skills_required" validate:"max=100,dive,max=200"`
	SkillsPreferred    []string `json:"skills_preferred" validate:"max=100,dive,max=200"`
	Seniority          *string  `json:"seniority" validate:"omitempty,max=50"`
	RoleCategory       string   `json:"role_category" validate:"max=200"`
	MinYearsExperience *float64 `json:"min_years_experience" validate:"omitempty,gte=0,lte=60"`
	LanguagesRequired  []string `json:"languages_required" validate:"max=20,dive,max=100"`
	TechStack          []string `json:"tech_stack" validate:"max=100,dive,max=200"`
	IndustryTags       *string  `json:"industry_tags" validate:"omitempty,max=500"`
}

type PublishJobResponse struct {
	Job      JobSummary `json:"job"`
	Notified int        `json:"notified"`
}
