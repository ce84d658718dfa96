package http

import (
	"personal-task-planner/internal/auth"
	pkgErrors "personal-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmptyEmail, auth.ErrInvalidEmail:
		return pkgErrors.NewHTTPError(400, "a valid email is required")
	case auth.ErrEmptyName:
		return pkgErrors.NewHTTPError(400, "name is required")
	case auth.ErrNotLoggedIn:
		return pkgErrors.NewHTTPError(401, "no user is logged in")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
