package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes keeps the read surface open and guards the writes per
// route. Static paths register before the ":id" wildcard.
func (h *JobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/", auth, h.Create)
	r.Get("/", h.List)
	r.Get("/search", h.List)
	r.Get("/mine", auth, h.Mine)
	r.Get("/:id", h.Get)
	r.Put("/:id", auth, h.Update)
	r.Patch("/:id", auth, h.Update)
	r.Delete("/:id", auth, h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), caller, usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		Salary:      req.Salary,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(created))
}

// List serves both /jobs and /jobs/search; the search endpoint just
// makes the query params explicit.
func (h *JobHandler) List(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	jobs, err := h.uc.Search(c.Context(), usecase.JobSearchParams{
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Keyword:  c.Query("keyword"),
		Ordering: c.Query("ordering"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, lo.Map(jobs, func(it job.Job, _ int) dto.JobListItem {
		return dto.NewJobListItem(it)
	}))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	found, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(found))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), caller, id, usecase.UpdateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		Salary:      req.Salary,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, "job deleted", nil)
}

func (h *JobHandler) Mine(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListMine(c.Context(), caller)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, lo.Map(jobs, func(it job.Job, _ int) dto.JobListItem {
		return dto.NewJobListItem(it)
	}))
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrEmployerRequired):
		return middleware.NewAppError(fiber.StatusForbidden, "Only employers can create jobs", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "You can only modify your own jobs", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
