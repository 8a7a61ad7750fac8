package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// processListReq binds the list query and resolves the reference time.
func (h *handler) processListReq(c *gin.Context) (listReq, time.Time, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, time.Time{}, err
	}
	now, err := h.parseNow(req.Now)
	return req, now, err
}

// processCreateReq binds and validates the create task body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIDParam reads the task ID from the path.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

func (h *handler) processStatsReq(c *gin.Context) (time.Time, error) {
	var req statsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, err
	}
	return h.parseNow(req.Now)
}

func (h *handler) processRemindersReq(c *gin.Context) (time.Time, time.Duration, error) {
	var req remindersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, 0, err
	}

	now, err := h.parseNow(req.Now)
	if err != nil {
		return time.Time{}, 0, err
	}

	window := defaultReminderWindow
	if req.Window != "" {
		window, err = time.ParseDuration(req.Window)
		if err != nil || window <= 0 {
			return time.Time{}, 0, errInvalidWindow
		}
	}
	return now, window, nil
}

// parseNow reads an optional RFC3339 reference time, defaulting to the clock.
func (h *handler) parseNow(raw string) (time.Time, error) {
	if raw == "" {
		return h.clock(), nil
	}
	now, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errInvalidNow
	}
	return now, nil
}
