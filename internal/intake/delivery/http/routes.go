package http

import (
	"github.com/gin-gonic/gin"

	"task-intake/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every intake route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	intakeGroup := rg.Group("/intake", mw.RateLimit())
	{
		intakeGroup.POST("/parse", h.Parse)
		intakeGroup.POST("/format", h.Format)
	}
}
