package dto

import (
	"time"

	"jobboard/internal/domain/company"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required,max=200"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Website     *string   `json:"website"`
	CreatedBy   uuid.UUID `json:"created_by"`
	JobsCount   int       `json:"jobs_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Website:     c.Website,
		CreatedBy:   c.CreatedBy,
		JobsCount:   c.JobsCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
