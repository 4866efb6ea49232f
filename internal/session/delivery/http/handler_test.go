package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hospitality-concierge/internal/middleware"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/session"
	sessionHTTP "hospitality-concierge/internal/session/delivery/http"
	"hospitality-concierge/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	out     session.ChatOutput
	err     error
	lastSc  model.Scope
	lastIn  session.ChatInput
	invoked int
}

func (m *mockUseCase) Chat(_ context.Context, sc model.Scope, in session.ChatInput) (session.ChatOutput, error) {
	m.invoked++
	m.lastSc = sc
	m.lastIn = in
	return m.out, m.err
}

func newRouter(uc session.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, 600)
	sessionHTTP.RegisterRoutes(r.Group("/api/v1"), sessionHTTP.New(&mockLogger{}, uc), mw)
	return r
}

func TestChatEndpoint(t *testing.T) {
	t.Run("Valid Message", func(t *testing.T) {
		uc := &mockUseCase{out: session.ChatOutput{Reply: "¡Hola!", Language: "es"}}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"user_id":"guest-1","message":"hola"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok || data["reply"] != "¡Hola!" || data["language"] != "es" {
			t.Errorf("unexpected payload: %v", resp.Data)
		}
		if uc.lastSc.UserID != "guest-1" || uc.lastIn.Message != "hola" {
			t.Errorf("usecase input: %+v %+v", uc.lastSc, uc.lastIn)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hola"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.invoked != 0 {
			t.Error("usecase must not run on invalid input")
		}
	})

	t.Run("Usecase Failure", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("boom")}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"user_id":"guest-1","message":"hola"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("Rate Limit Kicks In", func(t *testing.T) {
		uc := &mockUseCase{out: session.ChatOutput{Reply: "ok"}}
		gin.SetMode(gin.TestMode)
		r := gin.New()
		mw := middleware.New(&mockLogger{}, 10) // burst of 1
		sessionHTTP.RegisterRoutes(r.Group("/api/v1"), sessionHTTP.New(&mockLogger{}, uc), mw)

		codes := []int{}
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"user_id":"guest-1","message":"hola"}`))
			req.Header.Set("Content-Type", "application/json")
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK {
			t.Fatalf("first request must pass, got %d", codes[0])
		}
		limited := false
		for _, code := range codes[1:] {
			if code == http.StatusTooManyRequests {
				limited = true
			}
		}
		if !limited {
			t.Errorf("expected a 429 within the burst window, got %v", codes)
		}
	})
}
