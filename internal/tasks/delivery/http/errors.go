package http

import (
	"personal-task-planner/internal/tasks"
	pkgErrors "personal-task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case tasks.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "task title is required")
	case tasks.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "task date is not a valid date")
	case tasks.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "priority must be LOW, MEDIUM or HIGH")
	case tasks.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case tasks.ErrNoActiveSession:
		return pkgErrors.NewHTTPError(401, "no active user session")
	case tasks.ErrScopeMismatch:
		return pkgErrors.NewHTTPError(403, "scope does not match the active user")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
