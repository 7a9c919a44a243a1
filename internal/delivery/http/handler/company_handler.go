package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/company"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterRoutes wires the company surface: reads are open, writes
// carry the auth guard per route. The static "/mine" registers before
// the ":id" wildcard so it wins the match.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/", auth, h.Create)
	r.Get("/", h.List)
	r.Get("/mine", auth, h.Mine)
	r.Get("/:id", h.Get)
	r.Put("/:id", auth, h.Update)
	r.Patch("/:id", auth, h.Update)
	r.Delete("/:id", auth, h.Delete)
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), caller, usecase.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCompanyResponse(created))
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	companies, err := h.uc.List(c.Context(), usecase.CompanyListParams{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, lo.Map(companies, func(it company.Company, _ int) dto.CompanyResponse {
		return dto.NewCompanyResponse(it)
	}))
}

func (h *CompanyHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	found, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(found))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), caller, id, usecase.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(updated))
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, "company deleted", nil)
}

func (h *CompanyHandler) Mine(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	companies, err := h.uc.ListMine(c.Context(), caller)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, lo.Map(companies, func(it company.Company, _ int) dto.CompanyResponse {
		return dto.NewCompanyResponse(it)
	}))
}

func mapCompanyError(err error) error {
	switch {
	case errors.Is(err, company.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "You can only modify your own companies", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
