package matching

import "strings"

type Seniority string

const (
	SeniorityIntern  Seniority = "intern"
	SeniorityJunior  Seniority = "junior"
	SeniorityMid     Seniority = "mid"
	SenioritySenior  Seniority = "senior"
	SeniorityLead    Seniority = "lead"
	SeniorityUnknown Seniority = "unknown"
)

var seniorityRank = map[Seniority]int{
	SeniorityIntern: 0,
	SeniorityJunior: 1,
	SeniorityMid:    2,
	SenioritySenior: 3,
	SeniorityLead:   4,
}

var seniorityAliases = map[string]Seniority{
	"intern":      SeniorityIntern,
	"internship":  SeniorityIntern,
	"trainee":     SeniorityIntern,
	"junior":      SeniorityJunior,
	"entry":       SeniorityJunior,
	"entry level": SeniorityJunior,
	"mid":         SeniorityMid,
	"middle":      SeniorityMid,
	"mid level":   SeniorityMid,
	"senior":      SenioritySenior,
	"lead":        SeniorityLead,
	"principal":   SeniorityLead,
	"staff":       SeniorityLead,
}

// ParseSeniority maps free text ("Mid-level", " SENIOR ") to a Seniority.
// Unrecognized text is SeniorityUnknown.
func ParseSeniority(s string) Seniority {
	n := Normalize(strings.ReplaceAll(s, "-", " "))
	if v, ok := seniorityAliases[n]; ok {
		return v
	}
	return SeniorityUnknown
}

func (s Seniority) rank() (int, bool) {
	r, ok := seniorityRank[s]
	return r, ok
}

type UserMatchProfile struct {
	UserSkills                []string           `json:"user_skills" yaml:"user_skills"`
	YearsExperienceTotal      *float64           `json:"years_experience_total" yaml:"years_experience_total"`
	YearsExperienceByIndustry map[string]float64 `json:"years_experience_by_industry" yaml:"years_experience_by_industry"`
	IndustryTags              []string           `json:"industry_tags" yaml:"industry_tags"`
	Seniority                 Seniority          `json:"seniority" yaml:"seniority"`
	Languages                 []string           `json:"languages" yaml:"languages"`
	RoleInterests             []string           `json:"role_interests" yaml:"role_interests"`
	TechStackExperience       []string           `json:"tech_stack_experience" yaml:"tech_stack_experience"`
}

type StructuredJob struct {
	SkillsRequired     []string   `json:"skills_required" yaml:"skills_required"`
	SkillsPreferred    []string   `json:"skills_preferred" yaml:"skills_preferred"`
	Seniority          *Seniority `json:"seniority" yaml:"seniority"`
	RoleCategory       string     `json:"role_category" yaml:"role_category"`
	MinYearsExperience *float64   `json:"min_years_experience" yaml:"min_years_experience"`
	LanguagesRequired  []string   `json:"languages_required" yaml:"languages_required"`
	TechStack          []string   `json:"tech_stack" yaml:"tech_stack"`
	IndustryTags       []string   `json:"industry_tags" yaml:"industry_tags"`
}
