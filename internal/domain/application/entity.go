package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Resume      string
	CoverLetter string
	Status      Status
	AppliedAt   time.Time
	UpdatedAt   time.Time

	// JobTitle and JobCreatedBy come from the jobs join on reads.
	// JobCreatedBy drives the status-update permission check.
	JobTitle     string
	JobCreatedBy uuid.UUID
}
