package http

import (
	"github.com/gin-gonic/gin"

	"task-quick-add/pkg/response"
)

// Parse godoc
// @Summary     Extract a due date from a title
// @Description Runs the date parser on a task title without creating anything.
// @Description "now" pins the reference instant; it defaults to the server clock.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Title to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processParseReq: %v", err)
		h.renderError(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// QuickAdd godoc
// @Summary     Quick-add a task
// @Description Creates a task from a free-form title. The date expression is
// @Description removed from the title and becomes the due date. With
// @Description sync_calendar the task is also scheduled on Google Calendar.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Task title"
// @Success     200  {object} quickAddResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processQuickAddReq: %v", err)
		h.renderError(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}
