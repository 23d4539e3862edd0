package http

import (
	"github.com/gin-gonic/gin"

	"task-intake/internal/intake"
	"task-intake/pkg/log"
)

// Handler is the public interface for the intake HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Format(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc intake.UseCase
}

// New creates a new HTTP handler for the intake domain.
func New(l log.Logger, uc intake.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
