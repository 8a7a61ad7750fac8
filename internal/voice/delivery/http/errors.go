package http

import (
	"errors"
	"net/http"

	"voice-task-management/internal/assistant"
	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	pkgErrors "voice-task-management/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrEmptyTranscript),
		errors.Is(err, voice.ErrBothInputs),
		errors.Is(err, voice.ErrInvalidTimestamp):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusConflict, "the task changed while the command was applied")
	case errors.Is(err, assistant.ErrNoStore):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
