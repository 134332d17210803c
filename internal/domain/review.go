package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog records a single rating event with the scheduling state it
// replaced. The scheduler itself keeps no history; this is a separate audit
// trail written in the same transaction as the progress update.
type ReviewLog struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FlashcardID     uuid.UUID
	Rating          Rating
	Quality         int
	PrevEaseFactor  float64
	PrevIntervalDay int
	PrevRepetitions int
	ReviewedAt      time.Time
}
