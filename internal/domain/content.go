package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exam is the top of the content hierarchy (e.g. a certification track).
// Content management is an external admin concern; these types exist so the
// listing filters and the seeder have something to reference.
type Exam struct {
	ID           uuid.UUID
	Name         string
	Code         string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ExamDomain is a knowledge domain within an exam.
type ExamDomain struct {
	ID           uuid.UUID
	ExamID       uuid.UUID
	Name         string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups skills within a domain.
type Category struct {
	ID           uuid.UUID
	DomainID     uuid.UUID
	Name         string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Skill is the finest-grained content unit a flashcard can attach to.
type Skill struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
