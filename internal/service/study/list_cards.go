package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avoronov/certprep-backend/internal/domain"
	"github.com/avoronov/certprep-backend/pkg/ctxutil"
)

// ListCards returns flashcards matching the filters, each paired with the
// requesting user's progress (nil when never rated). Cards with no progress
// row match both status=NEW and due-only filtering. Read-only: re-running the
// query yields a fresh snapshot, ordered by display order.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.StudyCard, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	defLimit, maxLimit := s.listLimits()
	if input.Limit > maxLimit {
		return nil, 0, domain.NewValidationErrors([]domain.FieldError{
			{Field: "limit", Message: fmt.Sprintf("must not exceed %d", maxLimit)},
		})
	}

	cards, total, err := s.flashcards.List(ctx, userID, input.filter(defLimit), s.now())
	if err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}

	s.log.DebugContext(ctx, "cards listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(cards)),
		slog.Int("total", total),
		slog.Bool("due_only", input.DueOnly),
	)

	return cards, total, nil
}
