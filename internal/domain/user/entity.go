package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the one-to-one role extension of a User. Every user gets
// exactly one, created in the same transaction as the user row.
type Profile struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	IsEmployer bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
