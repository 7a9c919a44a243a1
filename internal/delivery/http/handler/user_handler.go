package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucauth "jobboard/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/", auth, h.GetProfile)
	r.Put("/", auth, h.UpdateProfile)
	r.Patch("/", auth, h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	usr, prof, err := h.uc.GetProfile(c.Context(), caller)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr, prof))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	usr, prof, err := h.uc.UpdateProfile(c.Context(), caller, usecase.UpdateProfileInput{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IsEmployer: req.IsEmployer,
	})
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr, prof))
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucauth.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email is already in use", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
