package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/company"

	"github.com/google/uuid"
)

func TestCompanyCreate_AnyAuthenticatedUser(t *testing.T) {
	// no employer check on company creation
	callerID := uuid.New()
	repo := newStubCompanyRepo()
	uc := NewCompanyUsecase(repo)

	created, err := uc.Create(context.Background(), callerID, CreateCompanyInput{
		Name:        "Acme",
		Description: "widgets",
		Location:    "Berlin",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.CreatedBy != callerID {
		t.Fatalf("unexpected creator")
	}
}

func TestCompanyCreate_MissingFields(t *testing.T) {
	uc := NewCompanyUsecase(newStubCompanyRepo())

	_, err := uc.Create(context.Background(), uuid.New(), CreateCompanyInput{Name: "  ", Location: "Berlin", Description: "d"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompanyList_SearchPassedThrough(t *testing.T) {
	repo := newStubCompanyRepo()
	uc := NewCompanyUsecase(repo)

	if _, err := uc.List(context.Background(), CompanyListParams{Search: "  acme ", Limit: 10}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Search != "acme" {
		t.Fatalf("expected trimmed search term, got %q", repo.lastFilter.Search)
	}
}

func TestCompanyList_LimitCap(t *testing.T) {
	uc := NewCompanyUsecase(newStubCompanyRepo())

	if _, err := uc.List(context.Background(), CompanyListParams{Limit: 51}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompanyUpdate_NonOwnerForbidden(t *testing.T) {
	c := company.Company{ID: uuid.New(), Name: "Acme", Location: "Berlin", CreatedBy: uuid.New()}
	uc := NewCompanyUsecase(newStubCompanyRepo(c))

	name := "Acme GmbH"
	_, err := uc.Update(context.Background(), uuid.New(), c.ID, UpdateCompanyInput{Name: &name})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCompanyUpdate_OwnerSuccess(t *testing.T) {
	ownerID := uuid.New()
	c := company.Company{ID: uuid.New(), Name: "Acme", Location: "Berlin", CreatedBy: ownerID}
	uc := NewCompanyUsecase(newStubCompanyRepo(c))

	name := "Acme GmbH"
	got, err := uc.Update(context.Background(), ownerID, c.ID, UpdateCompanyInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "Acme GmbH" {
		t.Fatalf("expected the new name, got %q", got.Name)
	}
}

func TestCompanyDelete_UnknownCompany(t *testing.T) {
	uc := NewCompanyUsecase(newStubCompanyRepo())

	if err := uc.Delete(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
}

func TestCompanyDelete_NonOwnerForbidden(t *testing.T) {
	c := company.Company{ID: uuid.New(), CreatedBy: uuid.New()}
	repo := newStubCompanyRepo(c)
	uc := NewCompanyUsecase(repo)

	if err := uc.Delete(context.Background(), uuid.New(), c.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.companies[c.ID]; !ok {
		t.Fatalf("company must survive a forbidden delete")
	}
}
