package dto

import (
	"time"

	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

type CreateApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	Resume      string    `json:"resume" validate:"required"`
	CoverLetter string    `json:"cover_letter"`
}

type UpdateApplicationRequest struct {
	Resume      *string `json:"resume"`
	CoverLetter *string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	ApplicantID uuid.UUID `json:"applicant"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		JobTitle:    a.JobTitle,
		ApplicantID: a.ApplicantID,
		Resume:      a.Resume,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
