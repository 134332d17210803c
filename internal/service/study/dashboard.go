package study

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronov/certprep-backend/internal/domain"
	"github.com/avoronov/certprep-backend/pkg/ctxutil"
)

// Dashboard returns aggregated study statistics for the user. Flashcards the
// user has no progress row for are counted as NEW.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	totalCards, err := s.flashcards.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count flashcards: %w", err)
	}

	byStatus, err := s.progress.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count progress by status: %w", err)
	}

	dueCount, err := s.flashcards.CountDue(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("count due: %w", err)
	}

	reviewedToday, err := s.reviews.CountSince(ctx, userID, dayStart(now))
	if err != nil {
		return nil, fmt.Errorf("count reviews today: %w", err)
	}

	tracked := byStatus[domain.CardStatusNew] + byStatus[domain.CardStatusLearning] + byStatus[domain.CardStatusKnown]
	counts := domain.CardStatusCounts{
		// Untracked cards are NEW by definition.
		New:      byStatus[domain.CardStatusNew] + (totalCards - tracked),
		Learning: byStatus[domain.CardStatusLearning],
		Known:    byStatus[domain.CardStatusKnown],
		Total:    totalCards,
	}

	return &domain.Dashboard{
		DueCount:      dueCount,
		ReviewedToday: reviewedToday,
		StatusCounts:  counts,
	}, nil
}

// dayStart returns midnight UTC of the given day.
func dayStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
