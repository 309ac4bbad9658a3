package repository

import (
	"context"
	"errors"

	"breneo/internal/database"
	"breneo/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, n notification.Notification) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// Create inserts n unless the user was already notified about the job, in
// which case it reports false.
func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) (bool, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	affected, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, user_id, job_id, title, match_percent)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		n.ID, n.UserID, n.JobID, n.Title, n.MatchPercent,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresNotificationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, title, match_percent, read_at, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.JobID, &n.Title, &n.MatchPercent, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = COALESCE(read_at, now()) WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
