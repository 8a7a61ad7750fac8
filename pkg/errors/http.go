package errors

import "net/http"

// HTTPError is an error that knows the status it should be served with.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
}

// NewHTTPError creates an HTTPError whose error code mirrors the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
