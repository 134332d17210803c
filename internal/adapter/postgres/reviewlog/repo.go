// Package reviewlog implements the ReviewLog repository using PostgreSQL.
// Logs are append-only; nothing updates or deletes a row once written.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avoronov/certprep-backend/internal/adapter/postgres"
	"github.com/avoronov/certprep-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO review_logs (
	id, user_id, flashcard_id, rating, quality,
	prev_ease_factor, prev_interval_days, prev_repetitions, reviewed_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const countSinceSQL = `
SELECT count(*) FROM review_logs
WHERE user_id = $1 AND reviewed_at >= $2`

const listByFlashcardSQL = `
SELECT id, user_id, flashcard_id, rating, quality,
       prev_ease_factor, prev_interval_days, prev_repetitions, reviewed_at
FROM review_logs
WHERE user_id = $1 AND flashcard_id = $2
ORDER BY reviewed_at DESC
LIMIT $3`

// Create appends a review log entry. The caller assigns the ID.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		log.ID, log.UserID, log.FlashcardID, string(log.Rating), log.Quality,
		log.PrevEaseFactor, log.PrevIntervalDay, log.PrevRepetitions, log.ReviewedAt,
	)
	if err != nil {
		return mapError(err, "review_log", log.ID)
	}

	return nil
}

// CountSince returns the number of reviews the user recorded at or after
// the given instant.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSinceSQL, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews since %s: %w", since.Format(time.RFC3339), err)
	}

	return count, nil
}

// ListByFlashcard returns the most recent review entries for one card,
// newest first.
func (r *Repo) ListByFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByFlashcardSQL, userID, flashcardID, limit)
	if err != nil {
		return nil, mapError(err, "review_log", flashcardID)
	}
	defer rows.Close()

	var logs []domain.ReviewLog
	for rows.Next() {
		var (
			entry  domain.ReviewLog
			rating string
		)
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.FlashcardID, &rating, &entry.Quality,
			&entry.PrevEaseFactor, &entry.PrevIntervalDay, &entry.PrevRepetitions, &entry.ReviewedAt,
		); err != nil {
			return nil, mapError(err, "review_log", flashcardID)
		}
		entry.Rating = domain.Rating(rating)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "review_log", flashcardID)
	}

	return logs, nil
}
