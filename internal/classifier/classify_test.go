package classifier_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"hospitality-concierge/internal/classifier"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/pkg/openai"
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

type mockLLM struct {
	content string
	err     error
	prompts []string
}

func (m *mockLLM) CreateChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
	for _, msg := range req.Messages {
		m.prompts = append(m.prompts, msg.Content)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &openai.ChatResponse{
		Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: m.content}}},
	}, nil
}

func (m *mockLLM) Model() string { return "test-model" }

func wantIndeterminate(t *testing.T, out classifier.Output) {
	t.Helper()
	want := classifier.Output{
		Language:   model.LanguageUnknown,
		Intents:    []model.Category{model.CategoryIndeterminate},
		Confidence: 0.0,
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("expected degraded output %+v, got %+v", want, out)
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Classification", func(t *testing.T) {
		llm := &mockLLM{content: `{"language": "en", "intents": ["cleaning", "extend_stay"], "confidence": 0.85}`}
		c := classifier.New(llm, &mockLogger{})

		out := c.Classify(ctx, "I need fresh towels and want to stay longer", nil, classifier.Hint{})
		if out.Language != "en" {
			t.Errorf("expected language en, got %q", out.Language)
		}
		if len(out.Intents) != 2 || out.Intents[0] != model.CategoryCleaning || out.Intents[1] != model.CategoryExtendStay {
			t.Errorf("unexpected intents: %v", out.Intents)
		}
	})

	t.Run("Markdown Fences Stripped", func(t *testing.T) {
		llm := &mockLLM{content: "```json\n{\"language\": \"es\", \"intents\": [\"transport\"], \"confidence\": 0.9}\n```"}
		c := classifier.New(llm, &mockLogger{})

		out := c.Classify(ctx, "necesito un taxi", nil, classifier.Hint{})
		if len(out.Intents) != 1 || out.Intents[0] != model.CategoryTransport {
			t.Errorf("unexpected intents: %v", out.Intents)
		}
	})

	t.Run("LLM Error Degrades", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("connection refused")}
		c := classifier.New(llm, &mockLogger{})
		wantIndeterminate(t, c.Classify(ctx, "hola", nil, classifier.Hint{}))
	})

	t.Run("Malformed Output Is Idempotent", func(t *testing.T) {
		llm := &mockLLM{content: "I am not JSON at all"}
		c := classifier.New(llm, &mockLogger{})

		first := c.Classify(ctx, "hola", nil, classifier.Hint{})
		second := c.Classify(ctx, "hola", nil, classifier.Hint{})
		wantIndeterminate(t, first)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("degraded result not idempotent: %+v vs %+v", first, second)
		}
	})

	t.Run("Empty Intents Coerced", func(t *testing.T) {
		llm := &mockLLM{content: `{"language": "es", "intents": [], "confidence": 0.4}`}
		c := classifier.New(llm, &mockLogger{})

		out := c.Classify(ctx, "mmm", nil, classifier.Hint{})
		if len(out.Intents) != 1 || out.Intents[0] != model.CategoryIndeterminate {
			t.Errorf("empty intents should coerce to indeterminate, got %v", out.Intents)
		}
		if out.Language != "es" {
			t.Errorf("language should survive coercion, got %q", out.Language)
		}
	})

	t.Run("Window And Hint In Prompt", func(t *testing.T) {
		llm := &mockLLM{content: `{"language": "es", "intents": ["transport"], "confidence": 0.8}`}
		c := classifier.New(llm, &mockLogger{})

		window := []model.Turn{{User: "quiero ir a Tarragona", Assistant: "¿Qué día?"}}
		c.Classify(ctx, "mañana", window, classifier.Hint{Language: "es", ActiveCategory: model.CategoryTransport})

		joined := ""
		for _, p := range llm.prompts {
			joined += p
		}
		for _, want := range []string{"quiero ir a Tarragona", "active_category=transport", "mañana"} {
			if !strings.Contains(joined, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})
}
