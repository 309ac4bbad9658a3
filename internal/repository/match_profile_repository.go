package repository

import (
	"context"
	"errors"

	"breneo/internal/database"
	"breneo/internal/domain/matching"
	"breneo/internal/domain/user"

	"github.com/google/uuid"
)

var ErrMatchProfileNotFound = errors.New("match profile not found")

type MatchProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (user.MatchProfile, error)
	Upsert(ctx context.Context, p user.MatchProfile) (user.MatchProfile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]user.MatchProfile, error)
}

type PostgresMatchProfileRepository struct {
	db database.DB
}

func NewPostgresMatchProfileRepository(db database.DB) *PostgresMatchProfileRepository {
	return &PostgresMatchProfileRepository{db: db}
}

const matchProfileColumns = `user_id, skills, years_experience_total, years_by_industry, industry_tags,
	seniority, languages, role_interests, tech_stack, updated_at`

func (r *PostgresMatchProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (user.MatchProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchProfileColumns+` FROM match_profiles WHERE user_id = $1`, userID)
	p, err := scanMatchProfile(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return user.MatchProfile{}, ErrMatchProfileNotFound
		}
		return user.MatchProfile{}, err
	}
	return p, nil
}

func (r *PostgresMatchProfileRepository) Upsert(ctx context.Context, p user.MatchProfile) (user.MatchProfile, error) {
	mp := p.Profile
	years := mp.YearsExperienceByIndustry
	if years == nil {
		years = map[string]float64{}
	}
	seniority := string(mp.Seniority)
	if seniority == "" {
		seniority = string(matching.SeniorityUnknown)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO match_profiles (user_id, skills, years_experience_total, years_by_industry, industry_tags,
			seniority, languages, role_interests, tech_stack, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			years_experience_total = EXCLUDED.years_experience_total,
			years_by_industry = EXCLUDED.years_by_industry,
			industry_tags = EXCLUDED.industry_tags,
			seniority = EXCLUDED.seniority,
			languages = EXCLUDED.languages,
			role_interests = EXCLUDED.role_interests,
			tech_stack = EXCLUDED.tech_stack,
			updated_at = now()
		 RETURNING `+matchProfileColumns,
		p.UserID, nonNil(mp.UserSkills), mp.YearsExperienceTotal, years, nonNil(mp.IndustryTags),
		seniority, nonNil(mp.Languages), nonNil(mp.RoleInterests), nonNil(mp.TechStackExperience),
	)
	return scanMatchProfile(row)
}

func (r *PostgresMatchProfileRepository) ListProfiles(ctx context.Context, limit, offset int) ([]user.MatchProfile, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+matchProfileColumns+`
		 FROM match_profiles
		 ORDER BY user_id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.MatchProfile, 0)
	for rows.Next() {
		p, err := scanMatchProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatchProfile(row database.Row) (user.MatchProfile, error) {
	var p user.MatchProfile
	var seniority string
	mp := &p.Profile
	err := row.Scan(
		&p.UserID, &mp.UserSkills, &mp.YearsExperienceTotal, &mp.YearsExperienceByIndustry, &mp.IndustryTags,
		&seniority, &mp.Languages, &mp.RoleInterests, &mp.TechStackExperience, &p.UpdatedAt,
	)
	if err != nil {
		return user.MatchProfile{}, err
	}
	mp.Seniority = matching.ParseSeniority(seniority)
	return p, nil
}
