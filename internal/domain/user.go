package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the platform identity owning progress rows. Identity provisioning
// is external; the type covers what the study core and the seeder need.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         UserRole
	CreatedAt    time.Time
}
