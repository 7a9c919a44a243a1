package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "full_time"
	TypePartTime   Type = "part_time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	JobType     Type
	Salary      *string
	CompanyID   uuid.UUID
	CreatedBy   uuid.UUID
	IsActive    bool
	PostedAt    time.Time
	UpdatedAt   time.Time

	// CompanyName and ApplicationsCount are filled from joins on reads.
	CompanyName       string
	ApplicationsCount int
}
