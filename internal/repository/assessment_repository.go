package repository

import (
	"context"
	"encoding/json"

	"breneo/internal/database"
	"breneo/internal/domain/matching"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	ListAnswersByUserID(ctx context.Context, userID uuid.UUID) ([]matching.Answer, error)
	SaveAnswer(ctx context.Context, userID uuid.UUID, questionID string, answer matching.Answer) error
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

// ListAnswersByUserID returns answers oldest first so that skill tie-breaks
// follow the order in which the user answered.
func (r *PostgresAssessmentRepository) ListAnswersByUserID(ctx context.Context, userID uuid.UUID) ([]matching.Answer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payload
		 FROM assessment_answers
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Answer, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var a matching.Answer
		if err := json.Unmarshal(raw, &a); err != nil || a == nil {
			continue
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAssessmentRepository) SaveAnswer(ctx context.Context, userID uuid.UUID, questionID string, answer matching.Answer) error {
	b, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO assessment_answers (id, user_id, question_id, payload) VALUES ($1, $2, $3, $4)`,
		uuid.New(), userID, questionID, b,
	)
	return err
}
