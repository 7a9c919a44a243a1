package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterRoutes guards every application endpoint; all of them need a
// caller identity.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/", auth, h.Create)
	r.Get("/", auth, h.List)
	r.Get("/mine", auth, h.Mine)
	r.Get("/:id", auth, h.Get)
	r.Put("/:id", auth, h.Update)
	r.Patch("/:id", auth, h.Update)
	r.Delete("/:id", auth, h.Delete)
	r.Patch("/:id/status", auth, h.UpdateStatus)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), caller, usecase.CreateApplicationInput{
		JobID:       req.JobID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	params, err := applicationListParams(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.List(c.Context(), caller, params)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, lo.Map(apps, func(a application.Application, _ int) dto.ApplicationResponse {
		return dto.NewApplicationResponse(a)
	}))
}

func (h *ApplicationHandler) Mine(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	params, err := applicationListParams(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.ListMine(c.Context(), caller, params)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, lo.Map(apps, func(a application.Application, _ int) dto.ApplicationResponse {
		return dto.NewApplicationResponse(a)
	}))
}

func applicationListParams(c fiber.Ctx) (usecase.ApplicationListParams, error) {
	params := usecase.ApplicationListParams{Status: c.Query("status")}
	if raw := c.Query("job"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			return usecase.ApplicationListParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		params.JobID = &jobID
	}
	return params, nil
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	found, err := h.uc.Get(c.Context(), caller, id)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(found))
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), caller, id, usecase.UpdateApplicationInput{
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, "application withdrawn", nil)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateStatus(c.Context(), caller, id, req.Status)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrEmployersCannotApply):
		return middleware.NewAppError(fiber.StatusForbidden, "Employers cannot apply for jobs", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "You can only modify your own applications", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrJobInactive):
		return middleware.NewAppError(fiber.StatusBadRequest, "This job is no longer accepting applications", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application status", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
