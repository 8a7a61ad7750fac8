package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/voice"
)

// processInterpretReq binds and validates the interpret body. Validation
// failures come back already mapped to HTTP errors.
func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, time.Time, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, err
	}
	if err := req.validate(); err != nil {
		return req, time.Time{}, h.mapError(err)
	}

	var now time.Time
	if req.Now != "" {
		var err error
		now, err = time.Parse(time.RFC3339, req.Now)
		if err != nil {
			return req, time.Time{}, h.mapError(voice.ErrInvalidTimestamp)
		}
	}
	return req, now, nil
}
