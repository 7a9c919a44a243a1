package usecase

import (
	"context"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type stubUserRepo struct {
	users     map[uuid.UUID]user.User
	profiles  map[uuid.UUID]user.Profile
	employers map[uuid.UUID]bool
	updateErr error
	err       error
}

func (m stubUserRepo) CreateWithProfile(context.Context, user.User, user.Profile) error { return nil }
func (m stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}
func (m stubUserRepo) GetByUsername(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m stubUserRepo) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }
func (m stubUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (m stubUserRepo) Update(context.Context, user.User) error { return m.updateErr }
func (m stubUserRepo) GetProfile(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return user.Profile{}, user.ErrNotFound
}
func (m stubUserRepo) UpdateProfile(context.Context, user.Profile) error { return nil }
func (m stubUserRepo) IsEmployer(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.employers[id], nil
}

type stubCompanyRepo struct {
	companies  map[uuid.UUID]company.Company
	listResult []company.Company
	byCreator  []company.Company
	lastFilter company.ListFilter
	deleted    []uuid.UUID
	err        error
}

func newStubCompanyRepo(companies ...company.Company) *stubCompanyRepo {
	m := &stubCompanyRepo{companies: make(map[uuid.UUID]company.Company)}
	for _, c := range companies {
		m.companies[c.ID] = c
	}
	return m
}

func (m *stubCompanyRepo) Create(_ context.Context, c company.Company) error {
	if m.err != nil {
		return m.err
	}
	m.companies[c.ID] = c
	return nil
}

func (m *stubCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	if m.err != nil {
		return company.Company{}, m.err
	}
	c, ok := m.companies[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (m *stubCompanyRepo) List(_ context.Context, f company.ListFilter) ([]company.Company, error) {
	m.lastFilter = f
	return m.listResult, m.err
}

func (m *stubCompanyRepo) ListByCreator(context.Context, uuid.UUID) ([]company.Company, error) {
	return m.byCreator, m.err
}

func (m *stubCompanyRepo) Update(_ context.Context, c company.Company) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.companies[c.ID]; !ok {
		return company.ErrNotFound
	}
	m.companies[c.ID] = c
	return nil
}

func (m *stubCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.companies[id]; !ok {
		return company.ErrNotFound
	}
	delete(m.companies, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type stubJobRepo struct {
	jobs       map[uuid.UUID]job.Job
	listResult []job.Job
	lastFilter job.ListFilter
	deleted    []uuid.UUID
	err        error
}

func newStubJobRepo(jobs ...job.Job) *stubJobRepo {
	m := &stubJobRepo{jobs: make(map[uuid.UUID]job.Job)}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *stubJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *stubJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *stubJobRepo) List(_ context.Context, f job.ListFilter) ([]job.Job, error) {
	m.lastFilter = f
	return m.listResult, m.err
}

func (m *stubJobRepo) Update(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.jobs[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *stubJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.jobs, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type stubApplicationRepo struct {
	apps        map[uuid.UUID]application.Application
	byApplicant []application.Application
	byCreator   []application.Application
	exists      bool
	createErr   error
	err         error

	listedByApplicant bool
	listedByCreator   bool
	lastListFilter    application.ListFilter
}

func newStubApplicationRepo(apps ...application.Application) *stubApplicationRepo {
	m := &stubApplicationRepo{apps: make(map[uuid.UUID]application.Application)}
	for _, a := range apps {
		m.apps[a.ID] = a
	}
	return m
}

func (m *stubApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	m.apps[a.ID] = a
	return nil
}

func (m *stubApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *stubApplicationRepo) ListByApplicant(_ context.Context, _ uuid.UUID, f application.ListFilter) ([]application.Application, error) {
	m.listedByApplicant = true
	m.lastListFilter = f
	return m.byApplicant, m.err
}

func (m *stubApplicationRepo) ListByJobCreator(_ context.Context, _ uuid.UUID, f application.ListFilter) ([]application.Application, error) {
	m.listedByCreator = true
	m.lastListFilter = f
	return m.byCreator, m.err
}

func (m *stubApplicationRepo) ExistsByJobAndApplicant(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.exists, m.err
}

func (m *stubApplicationRepo) Update(_ context.Context, a application.Application) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.apps[a.ID]; !ok {
		return application.ErrNotFound
	}
	m.apps[a.ID] = a
	return nil
}

func (m *stubApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	if m.err != nil {
		return m.err
	}
	a, ok := m.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	a.Status = status
	m.apps[id] = a
	return nil
}

func (m *stubApplicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.apps[id]; !ok {
		return application.ErrNotFound
	}
	delete(m.apps, id)
	return nil
}
