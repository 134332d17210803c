package study

import (
	"context"
	"fmt"

	"github.com/avoronov/certprep-backend/internal/domain"
	"github.com/avoronov/certprep-backend/pkg/ctxutil"
)

const cardHistoryLimit = 20

// CardHistory returns the user's most recent reviews of one flashcard,
// newest first. A card the user never rated yields an empty history, not
// an error.
func (s *Service) CardHistory(ctx context.Context, input CardHistoryInput) ([]domain.ReviewLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.flashcards.Exists(ctx, input.FlashcardID)
	if err != nil {
		return nil, fmt.Errorf("check flashcard: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("flashcard %s: %w", input.FlashcardID, domain.ErrNotFound)
	}

	logs, err := s.reviews.ListByFlashcard(ctx, userID, input.FlashcardID, cardHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if logs == nil {
		logs = []domain.ReviewLog{}
	}

	return logs, nil
}
