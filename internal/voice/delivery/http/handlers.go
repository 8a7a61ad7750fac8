package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/pkg/response"
)

// Interpret godoc
// @Summary     Interpret a spoken command
// @Description Interprets one transcript, or the recognizer's ranked alternatives, as a task command.
// @Description Without a tasks list the command runs against the store and is applied to it.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Utterance"
// @Success     200 {object} interpretResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, now, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.as.Handle(ctx, req.toRequest(now))
	if err != nil {
		h.l.Errorf(ctx, "as.Handle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInterpretResp(res))
}
