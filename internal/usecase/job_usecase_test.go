package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

func TestJobCreate_NonEmployerRejected(t *testing.T) {
	callerID := uuid.New()
	uc := NewJobUsecase(newStubJobRepo(), newStubCompanyRepo(), stubUserRepo{})

	_, err := uc.Create(context.Background(), callerID, CreateJobInput{
		Title:       "Backend Engineer",
		Description: "desc",
		Location:    "Berlin",
		CompanyID:   uuid.New(),
	})
	if !errors.Is(err, ErrEmployerRequired) {
		t.Fatalf("expected ErrEmployerRequired, got %v", err)
	}
}

func TestJobCreate_UnknownCompany(t *testing.T) {
	callerID := uuid.New()
	users := stubUserRepo{employers: map[uuid.UUID]bool{callerID: true}}
	uc := NewJobUsecase(newStubJobRepo(), newStubCompanyRepo(), users)

	_, err := uc.Create(context.Background(), callerID, CreateJobInput{
		Title:       "Backend Engineer",
		Description: "desc",
		Location:    "Berlin",
		CompanyID:   uuid.New(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobCreate_DefaultsToFullTime(t *testing.T) {
	callerID := uuid.New()
	c := company.Company{ID: uuid.New(), Name: "Acme", Location: "Berlin", Description: "d"}
	users := stubUserRepo{employers: map[uuid.UUID]bool{callerID: true}}
	jobs := newStubJobRepo()
	uc := NewJobUsecase(jobs, newStubCompanyRepo(c), users)

	created, err := uc.Create(context.Background(), callerID, CreateJobInput{
		Title:       "Backend Engineer",
		Description: "desc",
		Location:    "Berlin",
		CompanyID:   c.ID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.JobType != job.TypeFullTime {
		t.Fatalf("expected full_time, got %q", created.JobType)
	}
	if !created.IsActive {
		t.Fatalf("new jobs start active")
	}
	if created.CreatedBy != callerID {
		t.Fatalf("unexpected creator")
	}
}

func TestJobCreate_InvalidType(t *testing.T) {
	callerID := uuid.New()
	c := company.Company{ID: uuid.New()}
	users := stubUserRepo{employers: map[uuid.UUID]bool{callerID: true}}
	uc := NewJobUsecase(newStubJobRepo(), newStubCompanyRepo(c), users)

	_, err := uc.Create(context.Background(), callerID, CreateJobInput{
		Title:       "Backend Engineer",
		Description: "desc",
		Location:    "Berlin",
		JobType:     "freelance",
		CompanyID:   c.ID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobSearch_DefaultFilter(t *testing.T) {
	jobs := newStubJobRepo()
	uc := NewJobUsecase(jobs, newStubCompanyRepo(), stubUserRepo{})

	if _, err := uc.Search(context.Background(), JobSearchParams{Limit: 20}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	f := jobs.lastFilter
	if !f.ActiveOnly {
		t.Fatalf("public search must be active-only")
	}
	if f.OrderBy != job.OrderPostedAt || !f.Descending {
		t.Fatalf("expected newest-first default, got %q desc=%v", f.OrderBy, f.Descending)
	}
	if f.CreatedBy != nil {
		t.Fatalf("public search must not scope by creator")
	}
}

func TestJobSearch_OrderingByTitleAscending(t *testing.T) {
	jobs := newStubJobRepo()
	uc := NewJobUsecase(jobs, newStubCompanyRepo(), stubUserRepo{})

	if _, err := uc.Search(context.Background(), JobSearchParams{Ordering: "title"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if jobs.lastFilter.OrderBy != job.OrderTitle || jobs.lastFilter.Descending {
		t.Fatalf("expected ascending title ordering")
	}
}

func TestJobSearch_InvalidOrdering(t *testing.T) {
	uc := NewJobUsecase(newStubJobRepo(), newStubCompanyRepo(), stubUserRepo{})

	if _, err := uc.Search(context.Background(), JobSearchParams{Ordering: "salary"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobSearch_InvalidJobType(t *testing.T) {
	uc := NewJobUsecase(newStubJobRepo(), newStubCompanyRepo(), stubUserRepo{})

	if _, err := uc.Search(context.Background(), JobSearchParams{JobType: "gig"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobSearch_LimitCap(t *testing.T) {
	uc := NewJobUsecase(newStubJobRepo(), newStubCompanyRepo(), stubUserRepo{})

	if _, err := uc.Search(context.Background(), JobSearchParams{Limit: 51}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobGet_InactiveStillVisible(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Backend Engineer", IsActive: false}
	uc := NewJobUsecase(newStubJobRepo(j), newStubCompanyRepo(), stubUserRepo{})

	got, err := uc.Get(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != j.ID {
		t.Fatalf("unexpected job")
	}
}

func TestJobUpdate_NonOwnerForbidden(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Backend Engineer", CreatedBy: uuid.New()}
	uc := NewJobUsecase(newStubJobRepo(j), newStubCompanyRepo(), stubUserRepo{})

	title := "Senior Backend Engineer"
	_, err := uc.Update(context.Background(), uuid.New(), j.ID, UpdateJobInput{Title: &title})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobUpdate_OwnerCanDeactivate(t *testing.T) {
	ownerID := uuid.New()
	j := job.Job{ID: uuid.New(), Title: "Backend Engineer", CreatedBy: ownerID, IsActive: true}
	uc := NewJobUsecase(newStubJobRepo(j), newStubCompanyRepo(), stubUserRepo{})

	inactive := false
	got, err := uc.Update(context.Background(), ownerID, j.ID, UpdateJobInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected the job to be deactivated")
	}
}

func TestJobDelete_NonOwnerForbidden(t *testing.T) {
	j := job.Job{ID: uuid.New(), CreatedBy: uuid.New()}
	jobs := newStubJobRepo(j)
	uc := NewJobUsecase(jobs, newStubCompanyRepo(), stubUserRepo{})

	if err := uc.Delete(context.Background(), uuid.New(), j.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := jobs.jobs[j.ID]; !ok {
		t.Fatalf("job must survive a forbidden delete")
	}
}

func TestJobListMine_ScopedToCaller(t *testing.T) {
	callerID := uuid.New()
	jobs := newStubJobRepo()
	uc := NewJobUsecase(jobs, newStubCompanyRepo(), stubUserRepo{})

	if _, err := uc.ListMine(context.Background(), callerID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	f := jobs.lastFilter
	if f.CreatedBy == nil || *f.CreatedBy != callerID {
		t.Fatalf("expected the creator scope")
	}
	if f.ActiveOnly {
		t.Fatalf("my_jobs includes inactive postings")
	}
}
