package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hospitality-concierge/internal/classifier"
	"hospitality-concierge/internal/dispatcher"
	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/session"
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

type mockRepo struct {
	sessions map[string]*model.Session
	loadErr  error
	saveErr  error
	saves    int
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]*model.Session{}}
}

func (m *mockRepo) Load(_ context.Context, id string) (*model.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if sess, ok := m.sessions[id]; ok {
		return sess, nil
	}
	sess := model.NewSession(id)
	m.sessions[id] = sess
	return sess, nil
}

func (m *mockRepo) Save(_ context.Context, sess *model.Session) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[sess.ID] = sess
	return nil
}

type mockClassifier struct {
	out      classifier.Output
	calls    int
	lastHint classifier.Hint
}

func (m *mockClassifier) Classify(_ context.Context, _ string, _ []model.Turn, hint classifier.Hint) classifier.Output {
	m.calls++
	m.lastHint = hint
	return m.out
}

type stubHandler struct {
	reply     string
	multiturn bool
	calls     int
}

func (s *stubHandler) Handle(_ context.Context, _ *model.Session, _ string) (string, error) {
	s.calls++
	return s.reply, nil
}

func (s *stubHandler) Multiturn() bool { return s.multiturn }

func newUseCase(repo *mockRepo, cls *mockClassifier, handlers map[model.Category]dispatcher.Handler) *implUseCase {
	l := &mockLogger{}
	d := dispatcher.New(l)
	for cat, h := range handlers {
		d.Register(cat, h)
	}
	return New(l, repo, cls, d)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestChatSingleTurnInfo(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	cls := &mockClassifier{out: classifier.Output{
		Language:   "en",
		Intents:    []model.Category{model.CategoryInfo},
		Confidence: 0.9,
	}}
	uc := newUseCase(repo, cls, map[model.Category]dispatcher.Handler{
		model.CategoryInfo: &stubHandler{reply: "Yes, there is WiFi."},
	})

	out, err := uc.Chat(ctx, model.Scope{UserID: "U1"}, session.ChatInput{Message: "Is there WiFi?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "Yes, there is WiFi." {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if out.Language != "en" {
		t.Errorf("language not updated: %q", out.Language)
	}

	sess := repo.sessions["U1"]
	if sess.ActiveCategory != "" {
		t.Errorf("single-turn category must not become active: %q", sess.ActiveCategory)
	}
	if len(sess.History) != 1 || sess.History[0].User != "Is there WiFi?" {
		t.Errorf("turn not appended: %v", sess.History)
	}
}

func TestChatValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(newMockRepo(), &mockClassifier{}, nil)

	if _, err := uc.Chat(ctx, model.Scope{UserID: "U1"}, session.ChatInput{Message: "   "}); !errors.Is(err, session.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := uc.Chat(ctx, model.Scope{}, session.ChatInput{Message: "hola"}); !errors.Is(err, session.ErrEmptyUserID) {
		t.Errorf("expected ErrEmptyUserID, got %v", err)
	}
}

func TestChatLoadFailureStillReplies(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.loadErr = errors.New("store down")
	cls := &mockClassifier{out: classifier.Output{
		Language: "es",
		Intents:  []model.Category{model.CategoryDiscounts},
	}}
	uc := newUseCase(repo, cls, map[model.Category]dispatcher.Handler{
		model.CategoryDiscounts: &stubHandler{reply: "10% en colaboradores"},
	})

	out, err := uc.Chat(ctx, model.Scope{UserID: "U2"}, session.ChatInput{Message: "¿descuentos?"})
	if err != nil {
		t.Fatalf("load failure must not abort the turn: %v", err)
	}
	if out.Reply != "10% en colaboradores" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
}

func TestChatSaveFailureStillReplies(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.saveErr = errors.New("disk full")
	cls := &mockClassifier{out: classifier.Output{
		Language: "en",
		Intents:  []model.Category{model.CategoryInfo},
	}}
	uc := newUseCase(repo, cls, map[model.Category]dispatcher.Handler{
		model.CategoryInfo: &stubHandler{reply: "answer"},
	})

	out, err := uc.Chat(ctx, model.Scope{UserID: "U3"}, session.ChatInput{Message: "question"})
	if err != nil {
		t.Fatalf("save failure must not abort the turn: %v", err)
	}
	if out.Reply != "answer" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if repo.saves != 1 {
		t.Errorf("expected one save attempt, got %d", repo.saves)
	}
}

func TestChatHistoryBound(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	cls := &mockClassifier{out: classifier.Output{
		Language: "en",
		Intents:  []model.Category{model.CategoryInfo},
	}}
	uc := newUseCase(repo, cls, map[model.Category]dispatcher.Handler{
		model.CategoryInfo: &stubHandler{reply: "ok"},
	})

	for i := 0; i < memory.MaxHistory+5; i++ {
		if _, err := uc.Chat(ctx, model.Scope{UserID: "U4"}, session.ChatInput{Message: fmt.Sprintf("msg %d", i)}); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	sess := repo.sessions["U4"]
	if len(sess.History) != memory.MaxHistory {
		t.Fatalf("history length = %d, want %d", len(sess.History), memory.MaxHistory)
	}
	if sess.History[0].User != "msg 5" {
		t.Errorf("oldest turns must drop first, got %q", sess.History[0].User)
	}
}

func TestChatExpiredSessionCloses(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	cls := &mockClassifier{}
	uc := newUseCase(repo, cls, nil)

	checkout := time.Date(2026, 7, 1, 11, 0, 0, 0, time.UTC)
	sess := model.NewSession("U5")
	sess.Language = "en"
	sess.CheckoutDate = &checkout
	repo.sessions["U5"] = sess

	uc.now = func() time.Time { return checkout.Add(48 * time.Hour) }

	out, err := uc.Chat(ctx, model.Scope{UserID: "U5"}, session.ChatInput{Message: "hello?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != ClosedReplyEN {
		t.Errorf("expected closed reply, got %q", out.Reply)
	}
	if cls.calls != 0 {
		t.Error("closed sessions must not be classified")
	}
	if !repo.sessions["U5"].Closed {
		t.Error("closure must be persisted")
	}
	if len(repo.sessions["U5"].History) != 0 {
		t.Error("closed turns must not be appended to history")
	}
}

func TestChatIndeterminateFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	cls := &mockClassifier{out: classifier.Output{
		Language: "en",
		Intents:  []model.Category{model.CategoryIndeterminate},
	}}
	open := &stubHandler{reply: "Where from?", multiturn: true}
	uc := newUseCase(repo, cls, map[model.Category]dispatcher.Handler{
		model.CategoryTransport: open,
	})

	sess := model.NewSession("U6")
	sess.Language = "en"
	sess.ActiveCategory = model.CategoryTransport
	repo.sessions["U6"] = sess

	out, err := uc.Chat(ctx, model.Scope{UserID: "U6"}, session.ChatInput{Message: "tomorrow at 10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open.calls != 0 {
		t.Errorf("indeterminate intent invoked a handler %d time(s)", open.calls)
	}
	if out.Reply != dispatcher.FallbackReply("en") {
		t.Errorf("expected fallback, got %q", out.Reply)
	}
	if cls.lastHint.ActiveCategory != model.CategoryTransport {
		t.Errorf("open sub-dialogue must reach the classifier as a hint, got %q", cls.lastHint.ActiveCategory)
	}
	if out.Category != model.CategoryTransport {
		t.Errorf("fallback must not clear the active category, got %q", out.Category)
	}
}
