package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/entity"
)

// FeedbackLog is the append-only store for visitor feedback. Entries are
// never updated or deleted.
type FeedbackLog interface {
	Append(ctx context.Context, fb entity.Feedback) error
	Recent(ctx context.Context, limit int) ([]entity.Feedback, error)
	Count(ctx context.Context) (int, error)
}

// pgxPool is the subset of pgxpool.Pool the repositories depend on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXFeedbackLog implements FeedbackLog on Postgres.
type PGXFeedbackLog struct {
	pool pgxPool
}

// NewPGXFeedbackLog wires a pgx backed feedback log.
func NewPGXFeedbackLog(pool *pgxpool.Pool) *PGXFeedbackLog {
	return &PGXFeedbackLog{pool: pool}
}

var _ FeedbackLog = (*PGXFeedbackLog)(nil)

// Append inserts one feedback row.
func (l *PGXFeedbackLog) Append(ctx context.Context, fb entity.Feedback) error {
	_, err := l.pool.Exec(ctx, `
        INSERT INTO feedbacks (id, emotion, message, created_at)
        VALUES ($1, $2, $3, $4)
    `, fb.ID, fb.Emotion, fb.Message, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first. A limit <= 0 returns
// every entry.
func (l *PGXFeedbackLog) Recent(ctx context.Context, limit int) ([]entity.Feedback, error) {
	query := `SELECT id, emotion, message, created_at FROM feedbacks ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := l.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedback(rows)
}

// Count reports the total number of stored entries.
func (l *PGXFeedbackLog) Count(ctx context.Context) (int, error) {
	var count int
	if err := l.pool.QueryRow(ctx, `SELECT COUNT(*) FROM feedbacks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}

func scanFeedback(rows pgx.Rows) ([]entity.Feedback, error) {
	var entries []entity.Feedback
	for rows.Next() {
		var fb entity.Feedback
		if err := rows.Scan(&fb.ID, &fb.Emotion, &fb.Message, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		entries = append(entries, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return entries, nil
}
