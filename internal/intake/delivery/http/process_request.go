package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "task-intake/pkg/errors"
)

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("text is required")
	}
	return req, nil
}

// processFormatReq binds the format request body.
func (h *handler) processFormatReq(c *gin.Context) (formatReq, error) {
	var req formatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("invalid request body")
	}
	return req, nil
}
