package telegram

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-intake/internal/intake"
	pkgLog "task-intake/pkg/log"
	pkgResponse "task-intake/pkg/response"
	pkgTelegram "task-intake/pkg/telegram"
)

const (
	startMessage = "👋 Chào bạn! Gửi cho tôi một dòng mô tả công việc, tôi sẽ tách tiêu đề, hạn, giờ, độ ưu tiên, tag và thời lượng.\n\nVí dụ: Họp nhóm @work #gấp ngày mai lúc 3h chiều (1h30p)"
	helpMessage  = "Cách viết:\n• Tag: @work\n• Ưu tiên: #gấp, quan trọng, không gấp\n• Ngày: hôm nay, ngày mai, thứ 6, next week\n• Giờ: lúc 3h chiều, at 5pm, vào 9h\n• Thời lượng: (1h30p), mất 2 tiếng, takes 45 mins"

	invalidInputMessage = "Tin nhắn trống hoặc quá dài, bạn thử lại nhé."
	failureMessage      = "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and replies from a background goroutine so a
// slow sendMessage never trips Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edited messages, polls, channel posts)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := *update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithRequestID(context.Background(), uuid.NewString())
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed for chat %d: %v", msg.Chat.ID, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage parses one message and replies with the task summary.
func (h *handler) processMessage(ctx context.Context, msg pkgTelegram.Message) error {
	switch msg.Text {
	case "":
		return nil
	case "/start":
		return h.reply(ctx, msg.Chat.ID, startMessage)
	case "/help":
		return h.reply(ctx, msg.Chat.ID, helpMessage)
	}

	input := intake.ParseInput{Text: msg.Text}
	if msg.Date > 0 {
		input.ReferenceTime = time.Unix(msg.Date, 0)
	}

	output, err := h.uc.Parse(ctx, input)
	if err != nil {
		if errors.Is(err, intake.ErrEmptyInput) || errors.Is(err, intake.ErrInputTooLong) {
			h.l.Warnf(ctx, "telegram handler: rejected input from chat %d: %v", msg.Chat.ID, err)
			return h.reply(ctx, msg.Chat.ID, invalidInputMessage)
		}
		// Best-effort error notification to user
		_ = h.reply(ctx, msg.Chat.ID, failureMessage)
		return err
	}

	h.l.Infof(ctx, "telegram handler: parsed task %q for chat %d", output.Task.Title, msg.Chat.ID)
	return h.reply(ctx, msg.Chat.ID, buildSummary(output))
}

func (h *handler) reply(ctx context.Context, chatID int64, text string) error {
	return h.sender.SendMessageWithMode(ctx, chatID, text, "")
}
