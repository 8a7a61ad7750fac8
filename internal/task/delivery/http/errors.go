package http

import (
	"errors"
	"net/http"

	"voice-task-management/internal/task"
	pkgErrors "voice-task-management/pkg/errors"
)

var (
	errMissingID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidNow    = pkgErrors.NewHTTPError(http.StatusBadRequest, "now must be an RFC3339 timestamp")
	errInvalidWindow = pkgErrors.NewHTTPError(http.StatusBadRequest, "window must be a positive duration such as 60s")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyText), errors.Is(err, task.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
