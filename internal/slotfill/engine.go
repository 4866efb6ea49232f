package slotfill

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/pkg/openai"
)

// Advance runs one turn of the slot-filling loop for the given schema: it
// asks the extractor to read the guest message against the current slot
// values, merges the extracted fields, and decides completion.
//
// The merge is monotonic: a field already holding a real value is never
// reset to the sentinel, and fields the extractor omits keep their previous
// value. Unknown keys are dropped. A non-JSON extractor reply is relayed
// verbatim as the clarifying question, never surfaced as a parse error.
func (e *Engine) Advance(ctx context.Context, schema Schema, slots map[string]string, userText string, window []model.Turn) (Result, error) {
	current := normalize(schema, slots)

	prompt := buildPrompt(schema, current, userText, window)

	resp, err := e.llm.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages:    []openai.Message{{Role: "system", Content: prompt}},
		Temperature: ExtractorTemperature,
		MaxTokens:   ExtractorMaxTokens,
	})
	if err != nil {
		return Result{Slots: current}, fmt.Errorf("%s: extractor call failed: %w", LogPrefixAdvance, err)
	}

	responseText := stripFences(resp.Text())

	var raw map[string]any
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixAdvance, LogMsgParseFallback, err)
		return Result{Slots: current, Question: responseText}, nil
	}

	merged := merge(schema, current, raw)

	question := ""
	if q, ok := raw[ReplyKey].(string); ok {
		question = strings.TrimSpace(q)
	}

	return Result{
		Slots:    merged,
		Question: question,
		Complete: question == "" && filled(schema, merged),
	}, nil
}

// normalize copies the stored slots into the canonical shape: exactly the
// schema's fields, sentinel for anything unknown, unknown keys dropped.
func normalize(schema Schema, slots map[string]string) map[string]string {
	out := make(map[string]string, len(schema.Fields))
	for _, field := range schema.Fields {
		val := slots[field]
		if val == "" {
			val = model.SlotUndefined
		}
		out[field] = val
	}
	return out
}

// merge applies the extractor's field values on top of the current slots.
func merge(schema Schema, current map[string]string, raw map[string]any) map[string]string {
	out := make(map[string]string, len(current))
	for field, val := range current {
		out[field] = val
	}
	for _, field := range schema.Fields {
		val, ok := raw[field].(string)
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		if val == "" || val == model.SlotUndefined {
			continue
		}
		out[field] = val
	}
	return out
}

func filled(schema Schema, slots map[string]string) bool {
	for _, field := range schema.Fields {
		if slots[field] == model.SlotUndefined {
			return false
		}
	}
	return true
}

func buildPrompt(schema Schema, current map[string]string, userText string, window []model.Turn) string {
	var fieldLines, jsonLines strings.Builder
	for _, field := range schema.Fields {
		fmt.Fprintf(&fieldLines, "- %s: %s\n", field, current[field])
		fmt.Fprintf(&jsonLines, "  %q: \"<%s or 'undefined'>\",\n", field, field)
	}

	return fmt.Sprintf(PromptExtractorTemplate,
		schema.Category,
		schema.Instructions,
		ReplyKey,
		fieldLines.String(),
		memory.Render(window),
		userText,
		jsonLines.String(),
		ReplyKey,
	)
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
