package http

import (
	"github.com/gin-gonic/gin"

	"task-intake/pkg/response"
)

// Parse godoc
// @Summary     Parse a task line
// @Description Extracts title, due date, due time, priority, tags and estimate from one line of Vietnamese/English text.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task text"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intake/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Format godoc
// @Summary     Format stored task fields
// @Description Renders a stored due date, due time and estimate as short display labels.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       body body formatReq true "Stored fields"
// @Success     200  {object} displayResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intake/format [POST]
func (h *handler) Format(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFormatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Format(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Format: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newFormatResp(output))
}

func (h *handler) writeError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	response.InternalError(c)
}
