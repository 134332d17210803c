package domain

import (
	"time"

	"github.com/google/uuid"
)

// SM-2 scheduling defaults for a card that has never been rated.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// KnownThreshold is the repetition count at which a card counts as KNOWN.
const KnownThreshold = 3

// CardProgress is the per-(user, flashcard) scheduling state. A row is
// created lazily on the first rating; until then the defaults above act as
// the implicit prior state.
type CardProgress struct {
	UserID         uuid.UUID
	FlashcardID    uuid.UUID
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	Status         CardStatus
	NextReviewAt   *time.Time
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StatusForRepetitions derives the card status from the repetition counter.
// A reset (failed review) drops the card all the way back to NEW, not LEARNING.
func StatusForRepetitions(repetitions int) CardStatus {
	switch {
	case repetitions >= KnownThreshold:
		return CardStatusKnown
	case repetitions > 0:
		return CardStatusLearning
	default:
		return CardStatusNew
	}
}

// IsDue reports whether the card needs review at the given time.
// A card without a scheduled next review (never rated) is always due.
func (p *CardProgress) IsDue(now time.Time) bool {
	if p == nil || p.NextReviewAt == nil {
		return true
	}
	return !p.NextReviewAt.After(now)
}
