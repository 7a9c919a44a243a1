package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is authenticated but the policy
	// predicate for the (entity, action) pair rejected them.
	ErrForbidden = errors.New("forbidden")
	ErrInternal  = errors.New("internal error")
)
