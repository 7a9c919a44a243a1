package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Location    string
	Website     *string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// JobsCount is the number of active jobs the company currently has.
	// Derived on every read, never stored.
	JobsCount int
}
