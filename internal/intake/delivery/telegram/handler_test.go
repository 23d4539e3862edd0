package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-intake/internal/intake"
	"task-intake/internal/intake/delivery/telegram"
	"task-intake/internal/intake/usecase"
	"task-intake/pkg/datemath"
	"task-intake/pkg/log"
	"task-intake/pkg/taskparse"
	pkgTelegram "task-intake/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type sentMessage struct {
	chatID int64
	text   string
}

type mockSender struct {
	sent chan sentMessage
}

func newMockSender() *mockSender {
	return &mockSender{sent: make(chan sentMessage, 4)}
}

func (m *mockSender) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.sent <- sentMessage{chatID: chatID, text: text}
	return nil
}

func (m *mockSender) wait(t *testing.T) sentMessage {
	t.Helper()
	select {
	case msg := <-m.sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reply")
		return sentMessage{}
	}
}

type failingUseCase struct{}

func (failingUseCase) Parse(ctx context.Context, input intake.ParseInput) (intake.ParseOutput, error) {
	return intake.ParseOutput{}, errors.New("boom")
}

func (failingUseCase) Format(ctx context.Context, input intake.FormatInput) (intake.FormatOutput, error) {
	return intake.FormatOutput{}, nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

// 2024-05-01 09:00 UTC, a Wednesday
const messageDate = 1714554000

func newUseCase() intake.UseCase {
	cal, _ := datemath.NewCalendar("UTC")
	return usecase.New(
		log.NewNop(),
		taskparse.NewParser(taskparse.DefaultLexicon(), cal),
		taskparse.NewFormatter(taskparse.DefaultLocale(), cal),
		cal,
		usecase.Config{MaxInputLength: 100, CacheSize: 4, CacheTTL: time.Minute},
	)
}

func postUpdate(t *testing.T, h telegram.Handler, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	body, _ := json.Marshal(update)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 10,
			Chat:      &pkgTelegram.Chat{ID: 42, Type: "private"},
			Date:      messageDate,
			Text:      text,
		},
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhookParsesTask(t *testing.T) {
	sender := newMockSender()
	h := telegram.New(log.NewNop(), newUseCase(), sender)

	w := postUpdate(t, h, textUpdate("Họp nhóm @work #gấp ngày mai lúc 3h chiều (1h30p)"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	reply := sender.wait(t)
	if reply.chatID != 42 {
		t.Errorf("reply sent to chat %d, want 42", reply.chatID)
	}
	for _, want := range []string{"Họp nhóm", "Ưu tiên: Cao", "Ngày mai 3 PM", "1h 30p", "#work"} {
		if !strings.Contains(reply.text, want) {
			t.Errorf("reply %q missing %q", reply.text, want)
		}
	}
}

func TestHandleWebhookCommands(t *testing.T) {
	sender := newMockSender()
	h := telegram.New(log.NewNop(), newUseCase(), sender)

	postUpdate(t, h, textUpdate("/help"))
	if reply := sender.wait(t); !strings.Contains(reply.text, "lúc 3h chiều") {
		t.Errorf("unexpected help reply %q", reply.text)
	}
}

func TestHandleWebhookRejectsLongInput(t *testing.T) {
	sender := newMockSender()
	h := telegram.New(log.NewNop(), newUseCase(), sender)

	postUpdate(t, h, textUpdate(strings.Repeat("a", 101)))
	if reply := sender.wait(t); !strings.Contains(reply.text, "quá dài") {
		t.Errorf("unexpected reply %q", reply.text)
	}
}

func TestHandleWebhookUseCaseFailure(t *testing.T) {
	sender := newMockSender()
	h := telegram.New(log.NewNop(), failingUseCase{}, sender)

	postUpdate(t, h, textUpdate("anything"))
	if reply := sender.wait(t); !strings.Contains(reply.text, "Có lỗi") {
		t.Errorf("unexpected reply %q", reply.text)
	}
}

func TestHandleWebhookIgnoresNonMessage(t *testing.T) {
	sender := newMockSender()
	h := telegram.New(log.NewNop(), newUseCase(), sender)

	w := postUpdate(t, h, pkgTelegram.Update{UpdateID: 2})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored ack, got %d %s", w.Code, w.Body.String())
	}
	select {
	case msg := <-sender.sent:
		t.Errorf("unexpected reply %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
