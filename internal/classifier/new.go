package classifier

import (
	"context"

	"hospitality-concierge/internal/model"
	pkgLog "hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// Classifier is the interface for intent classification. It never fails:
// malformed or absent model output degrades to an indeterminate result so a
// turn is never aborted because classification failed.
type Classifier interface {
	Classify(ctx context.Context, message string, window []model.Turn, hint Hint) Output
}

// LLMClassifier classifies guest intent using an LLM.
type LLMClassifier struct {
	llm openai.IOpenAI
	l   pkgLog.Logger
}

// Ensure LLMClassifier implements Classifier interface
var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier.
func New(llm openai.IOpenAI, l pkgLog.Logger) *LLMClassifier {
	return &LLMClassifier{
		llm: llm,
		l:   l,
	}
}
