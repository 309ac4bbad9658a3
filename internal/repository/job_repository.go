package repository

import (
	"context"
	"errors"

	"breneo/internal/database"
	"breneo/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error)
	Create(ctx context.Context, j job.Job) (job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, location, description,
	skills_required, skills_preferred, seniority, role_category, min_years_experience,
	languages_required, tech_stack, industry_tags, posted_at, created_at`

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company, location, description,
			skills_required, skills_preferred, seniority, role_category, min_years_experience,
			languages_required, tech_stack, industry_tags, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Company, j.Location, j.Description,
		nonNil(j.SkillsRequired), nonNil(j.SkillsPreferred), j.Seniority, j.RoleCategory, j.MinYearsExperience,
		nonNil(j.LanguagesRequired), nonNil(j.TechStack), j.IndustryTags, j.PostedAt,
	)
	return scanJob(row)
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.SkillsRequired, &j.SkillsPreferred, &j.Seniority, &j.RoleCategory, &j.MinYearsExperience,
		&j.LanguagesRequired, &j.TechStack, &j.IndustryTags, &j.PostedAt, &j.CreatedAt,
	)
	return j, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
