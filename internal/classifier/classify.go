package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/pkg/openai"
)

// Classify determines guest language and intents from a message.
// Convention: Method accepts context.Context as first parameter
func (c *LLMClassifier) Classify(ctx context.Context, message string, window []model.Turn, hint Hint) Output {
	prompt := ""
	if hint.Language != "" || hint.ActiveCategory != "" {
		prompt += fmt.Sprintf(PromptHintTemplate, hint.Language, hint.ActiveCategory)
	}
	if transcript := memory.Render(window); transcript != "" {
		prompt += PromptHistoryPrefix + transcript + "\n"
	}
	prompt += fmt.Sprintf(PromptClassifierSystem, message)

	resp, err := c.llm.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: "system", Content: "You are an expert intent classifier."},
			{Role: "user", Content: prompt},
		},
		Temperature: ClassifierTemperature,
		MaxTokens:   ClassifierMaxTokens,
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return indeterminateOutput()
	}

	responseText := stripFences(resp.Text())
	if responseText == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return indeterminateOutput()
	}

	var output Output
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return indeterminateOutput()
	}

	if output.Language == "" {
		output.Language = model.LanguageUnknown
	}
	if len(output.Intents) == 0 {
		output.Intents = []model.Category{model.CategoryIndeterminate}
	}

	c.l.Infof(ctx, "%s: classified as %v (language: %s, confidence: %.2f)",
		LogPrefixClassify, output.Intents, output.Language, output.Confidence)
	return output
}

// indeterminateOutput is the degraded result substituted whenever the
// underlying classifier fails; it is identical across calls so degraded
// classification stays idempotent.
func indeterminateOutput() Output {
	return Output{
		Language:   model.LanguageUnknown,
		Intents:    []model.Category{model.CategoryIndeterminate},
		Confidence: 0.0,
	}
}

// stripFences removes markdown code blocks if present (```json ... ```).
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
