// Package flashcard implements the Flashcard repository using PostgreSQL.
// The listing query is built dynamically with squirrel because every filter
// is optional; the fixed-shape queries are plain SQL.
package flashcard

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avoronov/certprep-backend/internal/adapter/postgres"
	"github.com/avoronov/certprep-backend/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Fixed-shape SQL
// ---------------------------------------------------------------------------

const existsSQL = `SELECT EXISTS(SELECT 1 FROM flashcards WHERE id = $1)`

const countSQL = `SELECT count(*) FROM flashcards`

const countDueSQL = `
SELECT count(*)
FROM flashcards f
LEFT JOIN card_progress cp ON cp.flashcard_id = f.id AND cp.user_id = $1
WHERE cp.user_id IS NULL OR cp.next_review_at <= $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether a flashcard with the given ID exists.
func (r *Repo) Exists(ctx context.Context, flashcardID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, flashcardID).Scan(&exists); err != nil {
		return false, fmt.Errorf("flashcard exists: %w", err)
	}

	return exists, nil
}

// Count returns the total number of flashcards.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count flashcards: %w", err)
	}

	return count, nil
}

// CountDue returns the number of cards due for the user at the given time.
// A card with no progress row counts as due.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueSQL, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due flashcards: %w", err)
	}

	return count, nil
}

// List returns flashcards matching the filter, each left-joined with the
// user's progress (nil when the user never rated the card), plus the total
// match count ignoring limit/offset. Ordered by display order, flashcard ID
// as the tie-break so the order is stable run-to-run.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter, now time.Time) ([]domain.StudyCard, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	listQ := applyFilter(psql.Select(
		"f.id", "f.domain_id", "f.category_id", "f.skill_id",
		"f.question", "f.answer", "f.explanation", "f.display_order",
		"f.created_at", "f.updated_at",
		"cp.user_id", "cp.ease_factor", "cp.interval_days", "cp.repetitions",
		"cp.status", "cp.next_review_at", "cp.last_reviewed_at",
		"cp.created_at", "cp.updated_at",
	), userID, filter, now).
		OrderBy("f.display_order ASC", "f.id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards, err := scanStudyCards(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}

	countQ := applyFilter(psql.Select("count(*)"), userID, filter, now)
	countSQLStr, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQLStr, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count matching flashcards: %w", err)
	}

	return cards, total, nil
}

// applyFilter attaches the FROM/JOIN clauses and all optional predicates.
// Shared by the listing and count queries so they can never disagree.
func applyFilter(b sq.SelectBuilder, userID uuid.UUID, filter domain.FlashcardFilter, now time.Time) sq.SelectBuilder {
	b = b.From("flashcards f").
		LeftJoin("card_progress cp ON cp.flashcard_id = f.id AND cp.user_id = ?", userID)

	if filter.DomainID != nil {
		b = b.Where(sq.Eq{"f.domain_id": *filter.DomainID})
	}
	if filter.CategoryID != nil {
		b = b.Where(sq.Eq{"f.category_id": *filter.CategoryID})
	}
	if filter.SkillID != nil {
		b = b.Where(sq.Eq{"f.skill_id": *filter.SkillID})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"f.question": pattern},
			sq.ILike{"f.answer": pattern},
			sq.ILike{"f.explanation": pattern},
		})
	}

	if filter.Status != nil {
		if *filter.Status == domain.CardStatusNew {
			// "Never studied" and "reset to NEW" are the same thing here.
			b = b.Where(sq.Or{
				sq.Eq{"cp.status": string(domain.CardStatusNew)},
				sq.Expr("cp.user_id IS NULL"),
			})
		} else {
			b = b.Where(sq.Eq{"cp.status": string(*filter.Status)})
		}
	}

	if filter.DueOnly {
		// An unreviewed card is always due.
		b = b.Where(sq.Or{
			sq.LtOrEq{"cp.next_review_at": now},
			sq.Expr("cp.user_id IS NULL"),
		})
	}

	return b
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanStudyCards(rows pgx.Rows) ([]domain.StudyCard, error) {
	var cards []domain.StudyCard
	for rows.Next() {
		var (
			card domain.Flashcard

			cpUserID         *uuid.UUID
			cpEaseFactor     *float64
			cpIntervalDays   *int32
			cpRepetitions    *int32
			cpStatus         *string
			cpNextReviewAt   *time.Time
			cpLastReviewedAt *time.Time
			cpCreatedAt      *time.Time
			cpUpdatedAt      *time.Time
		)

		if err := rows.Scan(
			&card.ID, &card.DomainID, &card.CategoryID, &card.SkillID,
			&card.Question, &card.Answer, &card.Explanation, &card.DisplayOrder,
			&card.CreatedAt, &card.UpdatedAt,
			&cpUserID, &cpEaseFactor, &cpIntervalDays, &cpRepetitions,
			&cpStatus, &cpNextReviewAt, &cpLastReviewedAt,
			&cpCreatedAt, &cpUpdatedAt,
		); err != nil {
			return nil, err
		}

		entry := domain.StudyCard{Flashcard: card}
		if cpUserID != nil {
			entry.Progress = &domain.CardProgress{
				UserID:         *cpUserID,
				FlashcardID:    card.ID,
				EaseFactor:     *cpEaseFactor,
				IntervalDays:   int(*cpIntervalDays),
				Repetitions:    int(*cpRepetitions),
				Status:         domain.CardStatus(*cpStatus),
				NextReviewAt:   cpNextReviewAt,
				LastReviewedAt: cpLastReviewedAt,
				CreatedAt:      *cpCreatedAt,
				UpdatedAt:      *cpUpdatedAt,
			}
		}
		cards = append(cards, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []domain.StudyCard{}
	}

	return cards, nil
}
