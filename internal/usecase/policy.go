package usecase

import (
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// Ownership policy, one predicate per (entity, action) pair. Every
// mutation path evaluates its predicate before touching the store, so
// the rules live in one place instead of being scattered through
// handlers.
//
// Company creation deliberately has no predicate: any authenticated
// user may create one, employer or not.

func canMutateCompany(callerID uuid.UUID, c company.Company) bool {
	return c.CreatedBy == callerID
}

func canCreateJob(isEmployer bool) bool {
	return isEmployer
}

func canMutateJob(callerID uuid.UUID, j job.Job) bool {
	return j.CreatedBy == callerID
}

func canCreateApplication(isEmployer bool) bool {
	return !isEmployer
}

// canViewApplication: the applicant and the job's creator may read it.
func canViewApplication(callerID uuid.UUID, a application.Application) bool {
	return a.ApplicantID == callerID || a.JobCreatedBy == callerID
}

// canMutateApplication covers resume/cover-letter edits and deletion,
// which belong to the applicant alone.
func canMutateApplication(callerID uuid.UUID, a application.Application) bool {
	return a.ApplicantID == callerID
}

func canSetApplicationStatus(callerID uuid.UUID, a application.Application) bool {
	return a.JobCreatedBy == callerID
}
