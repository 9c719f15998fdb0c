package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository persists progress aggregates, one row per user.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the user's aggregate, or nil if no session was ever recorded.
func (r *Repository) Get(ctx context.Context, userID string) (*Aggregate, error) {
	var agg Aggregate
	err := r.db.GetContext(ctx, &agg,
		"SELECT user_id, total_sessions, average_score, last_active_at FROM progress WHERE user_id = ?",
		userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(progress) > %w", err)
	}
	return &agg, nil
}

// Upsert creates the user's row on the first completion and updates it on
// every later one. A single-row upsert; concurrent completions by the same
// user may lose an update, which the design accepts.
func (r *Repository) Upsert(ctx context.Context, agg Aggregate) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (user_id, total_sessions, average_score, last_active_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			total_sessions = VALUES(total_sessions),
			average_score = VALUES(average_score),
			last_active_at = VALUES(last_active_at)`,
		agg.UserID, agg.TotalSessions, agg.AverageScore, agg.LastActiveAt); err != nil {
		return fmt.Errorf("db.ExecContext(upsert progress) > %w", err)
	}
	return nil
}
