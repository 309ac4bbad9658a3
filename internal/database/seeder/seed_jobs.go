package seeder

import (
	"context"
	"fmt"
	"time"

	"breneo/internal/database"

	"github.com/google/uuid"
)

// seedNamespace makes seeded IDs stable so reruns are no-ops.
var seedNamespace = uuid.MustParse("6f1c2a52-3d8e-4b8e-9a51-0c5b7f6a9e21")

type demoJob struct {
	Title              string
	Company            string
	Location           string
	Description        string
	SkillsRequired     []string
	SkillsPreferred    []string
	Seniority          string
	RoleCategory       string
	MinYearsExperience float64
	LanguagesRequired  []string
	TechStack          []string
	IndustryTags       string
}

var demoJobs = []demoJob{
	{
		Title:              "Backend Engineer (Go)",
		Company:            "Breneo Labs",
		Location:           "Tbilisi, GE",
		Description:        "Build and maintain Go services, REST APIs, and PostgreSQL-backed systems.",
		SkillsRequired:     []string{"Go", "PostgreSQL"},
		SkillsPreferred:    []string{"Redis", "Kubernetes"},
		Seniority:          "mid",
		RoleCategory:       "Backend Developer",
		MinYearsExperience: 2,
		LanguagesRequired:  []string{"English"},
		TechStack:          []string{"Docker"},
		IndustryTags:       "fintech, saas",
	},
	{
		Title:              "Frontend Engineer (React)",
		Company:            "Breneo Labs",
		Location:           "Remote",
		Description:        "Develop web apps with React and TypeScript.",
		SkillsRequired:     []string{"React", "TypeScript"},
		SkillsPreferred:    []string{"Node.js"},
		Seniority:          "junior",
		RoleCategory:       "Frontend Developer",
		MinYearsExperience: 1,
		LanguagesRequired:  []string{"English"},
		IndustryTags:       "edtech",
	},
	{
		Title:              "DevOps Engineer",
		Company:            "CloudKita",
		Location:           "Remote",
		Description:        "Operate CI/CD, Docker, Kubernetes, and cloud infrastructure for production workloads.",
		SkillsRequired:     []string{"Kubernetes", "Docker", "Terraform"},
		SkillsPreferred:    []string{"AWS"},
		Seniority:          "senior",
		RoleCategory:       "DevOps",
		MinYearsExperience: 4,
		TechStack:          []string{"Linux"},
		IndustryTags:       "cloud",
	},
	{
		Title:             "UX Designer",
		Company:           "InsightWorks",
		Location:          "Batumi, GE",
		Description:       "Research, prototype and test product flows.",
		SkillsRequired:    []string{"Figma", "User Research"},
		Seniority:         "mid",
		RoleCategory:      "Designer",
		LanguagesRequired: []string{"Georgian", "English"},
		IndustryTags:      "healthcare",
	},
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := RequireColumns(ctx, db, "jobs",
		"id", "title", "company", "location", "description",
		"skills_required", "skills_preferred", "seniority", "role_category", "min_years_experience",
		"languages_required", "tech_stack", "industry_tags", "posted_at",
	); err != nil {
		return err
	}

	now := time.Now().UTC()
	return database.WithTx(ctx, db, func(q database.Querier) error {
		for i, it := range demoJobs {
			id := uuid.NewSHA1(seedNamespace, []byte("job:"+it.Title))
			postedAt := now.Add(-time.Duration(i) * 24 * time.Hour)
			if _, err := q.Exec(ctx,
				`INSERT INTO jobs (id, title, company, location, description,
					skills_required, skills_preferred, seniority, role_category, min_years_experience,
					languages_required, tech_stack, industry_tags, posted_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
				 ON CONFLICT (id) DO NOTHING`,
				id, it.Title, it.Company, it.Location, it.Description,
				orEmpty(it.SkillsRequired), orEmpty(it.SkillsPreferred), it.Seniority, it.RoleCategory, it.MinYearsExperience,
				orEmpty(it.LanguagesRequired), orEmpty(it.TechStack), it.IndustryTags, postedAt,
			); err != nil {
				return fmt.Errorf("insert %q: %w", it.Title, err)
			}
		}
		return nil
	})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
