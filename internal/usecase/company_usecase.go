package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/company"

	"github.com/google/uuid"
)

type CreateCompanyInput struct {
	Name        string
	Description string
	Location    string
	Website     *string
}

type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Location    *string
	Website     *string
}

type CompanyListParams struct {
	Search string
	Limit  int
	Offset int
}

type CompanyUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, in CreateCompanyInput) (company.Company, error)
	List(ctx context.Context, params CompanyListParams) ([]company.Company, error)
	Get(ctx context.Context, id uuid.UUID) (company.Company, error)
	Update(ctx context.Context, callerID, id uuid.UUID, in UpdateCompanyInput) (company.Company, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
	ListMine(ctx context.Context, callerID uuid.UUID) ([]company.Company, error)
}

type Companies struct {
	companies company.Repository
}

func NewCompanyUsecase(companies company.Repository) *Companies {
	return &Companies{companies: companies}
}

// Create requires authentication but no particular role.
func (u *Companies) Create(ctx context.Context, callerID uuid.UUID, in CreateCompanyInput) (company.Company, error) {
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	if name == "" || location == "" || strings.TrimSpace(in.Description) == "" {
		return company.Company{}, ErrInvalidInput
	}

	c := company.Company{
		ID:          uuid.New(),
		Name:        name,
		Description: in.Description,
		Location:    location,
		Website:     in.Website,
		CreatedBy:   callerID,
	}
	if err := u.companies.Create(ctx, c); err != nil {
		return company.Company{}, ErrInternal
	}

	created, err := u.companies.GetByID(ctx, c.ID)
	if err != nil {
		return company.Company{}, ErrInternal
	}
	return created, nil
}

func (u *Companies) List(ctx context.Context, params CompanyListParams) ([]company.Company, error) {
	if params.Limit < 0 || params.Limit > 50 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.companies.List(ctx, company.ListFilter{
		Search: strings.TrimSpace(params.Search),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Companies) Get(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, err
		}
		return company.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Companies) Update(ctx context.Context, callerID, id uuid.UUID, in UpdateCompanyInput) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, err
		}
		return company.Company{}, ErrInternal
	}
	if !canMutateCompany(callerID, c) {
		return company.Company{}, ErrForbidden
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return company.Company{}, ErrInvalidInput
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Location != nil {
		location := strings.TrimSpace(*in.Location)
		if location == "" {
			return company.Company{}, ErrInvalidInput
		}
		c.Location = location
	}
	if in.Website != nil {
		c.Website = in.Website
	}

	if err := u.companies.Update(ctx, c); err != nil {
		return company.Company{}, ErrInternal
	}
	return u.companies.GetByID(ctx, id)
}

// Delete removes the company; its jobs and their applications go with
// it through the storage cascades.
func (u *Companies) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return err
		}
		return ErrInternal
	}
	if !canMutateCompany(callerID, c) {
		return ErrForbidden
	}

	if err := u.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return err
		}
		return ErrInternal
	}
	return nil
}

func (u *Companies) ListMine(ctx context.Context, callerID uuid.UUID) ([]company.Company, error) {
	out, err := u.companies.ListByCreator(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
