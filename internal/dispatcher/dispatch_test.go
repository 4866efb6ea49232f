package dispatcher_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hospitality-concierge/internal/dispatcher"
	"hospitality-concierge/internal/model"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockHandler struct {
	reply     string
	err       error
	multiturn bool
	calls     int
}

func (m *mockHandler) Handle(ctx context.Context, sess *model.Session, userText string) (string, error) {
	m.calls++
	return m.reply, m.err
}

func (m *mockHandler) Multiturn() bool { return m.multiturn }

func TestRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("Indeterminate Never Invokes Handlers", func(t *testing.T) {
		h := &mockHandler{reply: "should not appear"}
		d := dispatcher.New(&mockLogger{})
		d.Register(model.CategoryTransport, h)

		sess := model.NewSession("U1")
		got := d.Route(ctx, sess, []model.Category{model.CategoryIndeterminate}, "???")

		if h.calls != 0 {
			t.Errorf("handler invoked %d times on indeterminate intent", h.calls)
		}
		if got != dispatcher.FallbackReply("es") {
			t.Errorf("expected fallback, got %q", got)
		}
		if sess.ActiveCategory != "" {
			t.Errorf("fallback must not touch active category, got %q", sess.ActiveCategory)
		}
	})

	t.Run("Empty Intents Fall Back", func(t *testing.T) {
		d := dispatcher.New(&mockLogger{})
		sess := model.NewSession("U1")
		sess.Language = "en"

		if got := d.Route(ctx, sess, nil, "hi"); got != dispatcher.FallbackReply("en") {
			t.Errorf("expected english fallback, got %q", got)
		}
	})

	t.Run("Indeterminate Skips Open Sub-Dialogue", func(t *testing.T) {
		h := &mockHandler{reply: "what day?", multiturn: true}
		d := dispatcher.New(&mockLogger{})
		d.Register(model.CategoryTransport, h)

		sess := model.NewSession("U1")
		sess.ActiveCategory = model.CategoryTransport

		got := d.Route(ctx, sess, []model.Category{model.CategoryIndeterminate}, "tomorrow at 10")
		if h.calls != 0 {
			t.Errorf("indeterminate intent invoked the open sub-dialogue handler %d time(s)", h.calls)
		}
		if got != dispatcher.FallbackReply("es") {
			t.Errorf("expected fallback, got %q", got)
		}
		if sess.ActiveCategory != model.CategoryTransport {
			t.Errorf("fallback must not clear active category, got %q", sess.ActiveCategory)
		}
	})

	t.Run("Multiple Intents Concatenated In Order", func(t *testing.T) {
		first := &mockHandler{reply: "towels coming"}
		second := &mockHandler{reply: "stay extended"}
		d := dispatcher.New(&mockLogger{})
		d.Register(model.CategoryCleaning, first)
		d.Register(model.CategoryExtendStay, second)

		sess := model.NewSession("U1")
		got := d.Route(ctx, sess, []model.Category{model.CategoryCleaning, model.CategoryExtendStay}, "towels and more days")

		if got != "towels coming\nstay extended" {
			t.Errorf("expected positional concatenation, got %q", got)
		}
	})

	t.Run("Unknown Intent Yields Fallback Not Error", func(t *testing.T) {
		known := &mockHandler{reply: "ok"}
		d := dispatcher.New(&mockLogger{})
		d.Register(model.CategoryCleaning, known)

		sess := model.NewSession("U1")
		got := d.Route(ctx, sess, []model.Category{"checkout", model.CategoryCleaning}, "x")

		parts := strings.Split(got, "\n")
		if len(parts) != 2 || parts[0] != dispatcher.FallbackReply("es") || parts[1] != "ok" {
			t.Errorf("unexpected routing result: %q", got)
		}
	})

	t.Run("Multiturn Dispatch Sets Active Category", func(t *testing.T) {
		multi := &mockHandler{reply: "which day?", multiturn: true}
		single := &mockHandler{reply: "here are the rules"}
		d := dispatcher.New(&mockLogger{})
		d.Register(model.CategoryTransport, multi)
		d.Register(model.CategoryInfo, single)

		sess := model.NewSession("U1")
		d.Route(ctx, sess, []model.Category{model.CategoryInfo}, "rules?")
		if sess.ActiveCategory != "" {
			t.Errorf("single-turn handler must not set active category, got %q", sess.ActiveCategory)
		}

		d.Route(ctx, sess, []model.Category{model.CategoryTransport}, "need a ride")
		if sess.ActiveCategory != model.CategoryTransport {
			t.Errorf("expected transport active, got %q", sess.ActiveCategory)
		}
	})

	t.Run("Handler Error Degrades To Error Reply", func(t *testing.T) {
		failing := &mockHandler{err: errors.New("llm down"), multiturn: true}
		d := dispatcher.New(&mockLogger{})
		d.Register(model.CategoryTransport, failing)

		sess := model.NewSession("U1")
		got := d.Route(ctx, sess, []model.Category{model.CategoryTransport}, "ride please")

		if got != dispatcher.ErrorReply("es") {
			t.Errorf("expected localized error reply, got %q", got)
		}
		if sess.ActiveCategory != "" {
			t.Errorf("failed dispatch must not set active category, got %q", sess.ActiveCategory)
		}
	})
}
