package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-intake/internal/intake"
	pkgLog "task-intake/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a chat. *pkgTelegram.Bot satisfies it.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type handler struct {
	l      pkgLog.Logger
	uc     intake.UseCase
	sender Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc intake.UseCase, sender Sender) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		sender: sender,
	}
}
