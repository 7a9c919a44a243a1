package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required,max=200"`
	JobType     string    `json:"job_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	Salary      *string   `json:"salary" validate:"omitempty,max=100"`
	CompanyID   uuid.UUID `json:"company_id" validate:"required"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	JobType     *string `json:"job_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	Salary      *string `json:"salary" validate:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active"`
}

type JobResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Location          string    `json:"location"`
	JobType           string    `json:"job_type"`
	Salary            *string   `json:"salary"`
	CompanyID         uuid.UUID `json:"company_id"`
	CompanyName       string    `json:"company_name"`
	CreatedBy         uuid.UUID `json:"created_by"`
	IsActive          bool      `json:"is_active"`
	ApplicationsCount int       `json:"applications_count"`
	PostedAt          time.Time `json:"posted_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                j.ID,
		Title:             j.Title,
		Description:       j.Description,
		Location:          j.Location,
		JobType:           string(j.JobType),
		Salary:            j.Salary,
		CompanyID:         j.CompanyID,
		CompanyName:       j.CompanyName,
		CreatedBy:         j.CreatedBy,
		IsActive:          j.IsActive,
		ApplicationsCount: j.ApplicationsCount,
		PostedAt:          j.PostedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

// JobListItem is the lightweight shape for listings; the full
// JobResponse is for detail fetches.
type JobListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	Salary      *string   `json:"salary"`
	CompanyName string    `json:"company_name"`
	IsActive    bool      `json:"is_active"`
	PostedAt    time.Time `json:"posted_at"`
}

func NewJobListItem(j job.Job) JobListItem {
	return JobListItem{
		ID:          j.ID,
		Title:       j.Title,
		Location:    j.Location,
		JobType:     string(j.JobType),
		Salary:      j.Salary,
		CompanyName: j.CompanyName,
		IsActive:    j.IsActive,
		PostedAt:    j.PostedAt,
	}
}
