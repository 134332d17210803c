package study

import (
	"github.com/google/uuid"

	"github.com/avoronov/certprep-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// RateCardInput holds the parameters for rating a flashcard.
type RateCardInput struct {
	FlashcardID uuid.UUID
	Rating      domain.Rating
}

// Validate checks all fields and collects all errors.
func (i *RateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be FORGOT, HARD, GOOD, or EASY"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CardHistoryInput identifies the flashcard whose review history is requested.
type CardHistoryInput struct {
	FlashcardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CardHistoryInput) Validate() error {
	if i.FlashcardID == uuid.Nil {
		return domain.NewValidationErrors([]domain.FieldError{
			{Field: "flashcard_id", Message: "required"},
		})
	}
	return nil
}

// ListCardsInput holds the filter parameters for the card listing.
type ListCardsInput struct {
	DomainID   *uuid.UUID
	CategoryID *uuid.UUID
	SkillID    *uuid.UUID
	Search     *string
	Status     *domain.CardStatus
	DueOnly    bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be NEW, LEARNING, or KNOWN"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// filter converts the input into the repository filter, substituting the
// default limit when none was requested.
func (i *ListCardsInput) filter(defaultLimit int) domain.FlashcardFilter {
	limit := i.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	return domain.FlashcardFilter{
		DomainID:   i.DomainID,
		CategoryID: i.CategoryID,
		SkillID:    i.SkillID,
		Search:     i.Search,
		Status:     i.Status,
		DueOnly:    i.DueOnly,
		Limit:      limit,
		Offset:     i.Offset,
	}
}
