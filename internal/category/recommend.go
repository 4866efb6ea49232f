package category

import (
	"context"
	"fmt"
	"strings"

	pkgLog "hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// phraseOptions asks the responder to present catalog options
// conversationally in the session language. When the responder is
// unavailable or returns nothing the plain list is used instead, keeping the
// recommendation deterministic.
func phraseOptions(ctx context.Context, llm openai.IOpenAI, l pkgLog.Logger, logPrefix, lang string, lines []string) string {
	list := strings.Join(lines, "\n")

	resp, err := llm.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{{
			Role:    "system",
			Content: fmt.Sprintf(PromptRecommendationTemplate, languageName(lang), list),
		}},
		Temperature: ResponderTemperature,
		MaxTokens:   ResponderMaxTokens,
	})
	if err != nil {
		l.Warnf(ctx, "%s: responder unavailable, returning plain list: %v", logPrefix, err)
		return list
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return list
}

func languageName(lang string) string {
	if lang == "en" {
		return "English"
	}
	return "Spanish"
}
