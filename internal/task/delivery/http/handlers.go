package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the task list, pending tasks first, optionally filtered.
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "all, pending, completed or overdue (default: all)"
// @Param       now    query string false "RFC3339 reference time for overdue (default: server time)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, now, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(now))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output, now))
}

// Create godoc
// @Summary     Create a task
// @Description Appends a task to the list, with an optional due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t, h.clock()))
}

// Toggle godoc
// @Summary     Toggle a task
// @Description Flips the completion flag of a task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(t, h.clock()))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ClearAll godoc
// @Summary     Delete all tasks
// @Description Empties the task list.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) ClearAll(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.ClearAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, clearResp{Deleted: n})
}

// Stats godoc
// @Summary     Task statistics
// @Description Returns total, completed, pending and overdue counts and the completion percentage.
// @Tags        Tasks
// @Produce     json
// @Param       now query string false "RFC3339 reference time (default: server time)"
// @Success     200 {object} task.Stats
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	now, err := h.processStatsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	stats, err := h.uc.Stats(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, stats)
}

// Reminders godoc
// @Summary     Tasks due soon
// @Description Lists pending tasks due within the window after now, earliest first.
// @Tags        Tasks
// @Produce     json
// @Param       now    query string false "RFC3339 reference time (default: server time)"
// @Param       window query string false "Go duration (default: 60s)"
// @Success     200 {object} remindersResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/reminders [GET]
func (h *handler) Reminders(c *gin.Context) {
	ctx := c.Request.Context()

	now, window, err := h.processRemindersReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.DueSoon(ctx, now, window)
	if err != nil {
		h.l.Errorf(ctx, "uc.DueSoon: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, remindersResp{
		Window: window.String(),
		Tasks:  newTaskResps(tasks, now),
	})
}
