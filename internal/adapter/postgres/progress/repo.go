// Package progress implements the CardProgress repository using PostgreSQL.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avoronov/certprep-backend/internal/adapter/postgres"
	"github.com/avoronov/certprep-backend/internal/domain"
)

// Repo provides card progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT user_id, flashcard_id, ease_factor, interval_days, repetitions,
       status, next_review_at, last_reviewed_at, created_at, updated_at
FROM card_progress
WHERE user_id = $1 AND flashcard_id = $2`

const upsertSQL = `
INSERT INTO card_progress (
	user_id, flashcard_id, ease_factor, interval_days, repetitions,
	status, next_review_at, last_reviewed_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, flashcard_id) DO UPDATE SET
	ease_factor      = EXCLUDED.ease_factor,
	interval_days    = EXCLUDED.interval_days,
	repetitions      = EXCLUDED.repetitions,
	status           = EXCLUDED.status,
	next_review_at   = EXCLUDED.next_review_at,
	last_reviewed_at = EXCLUDED.last_reviewed_at,
	updated_at       = now()
RETURNING user_id, flashcard_id, ease_factor, interval_days, repetitions,
          status, next_review_at, last_reviewed_at, created_at, updated_at`

const countByStatusSQL = `
SELECT status, count(*)
FROM card_progress
WHERE user_id = $1
GROUP BY status`

// Get returns the progress row for (user, flashcard).
// Returns domain.ErrNotFound when the user never rated the card.
func (r *Repo) Get(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.CardProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, userID, flashcardID)
	progress, err := scanProgress(row)
	if err != nil {
		return nil, mapError(err, "get card progress", flashcardID)
	}

	return progress, nil
}

// Upsert inserts the progress row or replaces the scheduling state of an
// existing one. created_at survives the update; updated_at is bumped by
// the database so it reflects commit order, not service clock.
func (r *Repo) Upsert(ctx context.Context, p *domain.CardProgress) (*domain.CardProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		p.UserID, p.FlashcardID, p.EaseFactor, p.IntervalDays, p.Repetitions,
		string(p.Status), p.NextReviewAt, p.LastReviewedAt,
	)

	saved, err := scanProgress(row)
	if err != nil {
		return nil, mapError(err, "upsert card progress", p.FlashcardID)
	}

	return saved, nil
}

// CountByStatus returns the number of progress rows per status for a user.
// Statuses with no rows are absent from the map.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.CardStatus]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByStatusSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("count progress by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CardStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("count progress by status: %w", err)
		}
		counts[domain.CardStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count progress by status: %w", err)
	}

	return counts, nil
}

func scanProgress(row interface{ Scan(dest ...any) error }) (*domain.CardProgress, error) {
	var (
		p      domain.CardProgress
		status string
	)
	if err := row.Scan(
		&p.UserID, &p.FlashcardID, &p.EaseFactor, &p.IntervalDays, &p.Repetitions,
		&status, &p.NextReviewAt, &p.LastReviewedAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = domain.CardStatus(status)

	return &p, nil
}
