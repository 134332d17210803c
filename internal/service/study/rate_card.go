package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avoronov/certprep-backend/internal/domain"
	"github.com/avoronov/certprep-backend/internal/service/study/sm2"
	"github.com/avoronov/certprep-backend/pkg/ctxutil"
)

// RateCard applies a user rating to a flashcard and persists the new SM-2
// scheduling state. This is the only writer of card progress rows; the state
// row is created lazily on the first rating.
func (s *Service) RateCard(ctx context.Context, input RateCardInput) (*domain.CardProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()

	exists, err := s.flashcards.Exists(ctx, input.FlashcardID)
	if err != nil {
		return nil, fmt.Errorf("check flashcard: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("flashcard %s: %w", input.FlashcardID, domain.ErrNotFound)
	}

	// "No progress yet" is the normal first-time case, not an error.
	prior := sm2.DefaultState()
	current, err := s.progress.Get(ctx, userID, input.FlashcardID)
	switch {
	case err == nil:
		prior = sm2.State{
			EaseFactor:  current.EaseFactor,
			Interval:    current.IntervalDays,
			Repetitions: current.Repetitions,
		}
	case errors.Is(err, domain.ErrNotFound):
		// first rating, keep defaults
	default:
		return nil, fmt.Errorf("get progress: %w", err)
	}

	result, err := sm2.Review(qualityForRating(input.Rating), prior, now)
	if err != nil {
		return nil, fmt.Errorf("calculate next review: %w", err)
	}

	updated := &domain.CardProgress{
		UserID:         userID,
		FlashcardID:    input.FlashcardID,
		EaseFactor:     result.EaseFactor,
		IntervalDays:   result.Interval,
		Repetitions:    result.Repetitions,
		Status:         domain.StatusForRepetitions(result.Repetitions),
		NextReviewAt:   &result.NextReview,
		LastReviewedAt: &now,
	}

	var persisted *domain.CardProgress
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		persisted, upsertErr = s.progress.Upsert(txCtx, updated)
		if upsertErr != nil {
			return fmt.Errorf("upsert progress: %w", upsertErr)
		}

		logErr := s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:              uuid.New(),
			UserID:          userID,
			FlashcardID:     input.FlashcardID,
			Rating:          input.Rating,
			Quality:         qualityForRating(input.Rating),
			PrevEaseFactor:  prior.EaseFactor,
			PrevIntervalDay: prior.Interval,
			PrevRepetitions: prior.Repetitions,
			ReviewedAt:      now,
		})
		if logErr != nil {
			return fmt.Errorf("create review log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card rated",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", input.FlashcardID.String()),
		slog.String("rating", string(input.Rating)),
		slog.String("status", string(persisted.Status)),
		slog.Int("interval_days", persisted.IntervalDays),
		slog.Float64("ease_factor", persisted.EaseFactor),
	)

	return persisted, nil
}

// qualityForRating maps the four-button UI rating onto the SM-2 quality scale.
// The mapping is fixed: it skips qualities 1 and 2, and HARD maps to a passing
// 3, so a hard answer still advances the repetition counter.
func qualityForRating(rating domain.Rating) int {
	switch rating {
	case domain.RatingForgot:
		return 0
	case domain.RatingHard:
		return 3
	case domain.RatingGood:
		return 4
	default:
		return 5
	}
}
