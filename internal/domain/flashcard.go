package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a study card inside the exam content hierarchy.
// Category and skill attachment is optional; domain attachment is not.
type Flashcard struct {
	ID           uuid.UUID
	DomainID     uuid.UUID
	CategoryID   *uuid.UUID
	SkillID      *uuid.UUID
	Question     string
	Answer       string
	Explanation  *string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FlashcardFilter contains filtering/pagination parameters for card listings.
// All structural filters are optional; Status and DueOnly apply to the
// requesting user's progress (a card with no progress row counts as NEW and
// as due).
type FlashcardFilter struct {
	DomainID   *uuid.UUID
	CategoryID *uuid.UUID
	SkillID    *uuid.UUID

	// Search performs ILIKE '%...%' over question, answer and explanation.
	Search *string

	Status  *CardStatus
	DueOnly bool

	// Limit is the maximum number of cards to return. Default: 50, max: 200.
	Limit  int
	Offset int
}

// StudyCard pairs a flashcard with the requesting user's progress.
// Progress is nil when the user has never rated the card.
type StudyCard struct {
	Flashcard Flashcard
	Progress  *CardProgress
}
