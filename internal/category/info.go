package category

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hospitality-concierge/internal/catalog"
	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
	pkgLog "hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// Info answers facility, rules and penalty questions about the apartment
// from the property facts. Single turn: it never enters the slot loop and
// never becomes the active category.
type Info struct {
	property string
	catalog  catalog.Catalog
	llm      openai.IOpenAI
	l        pkgLog.Logger
}

// NewInfo creates the accommodation-information handler.
func NewInfo(property string, cat catalog.Catalog, llm openai.IOpenAI, l pkgLog.Logger) *Info {
	return &Info{
		property: property,
		catalog:  cat,
		llm:      llm,
		l:        l,
	}
}

func (h *Info) Multiturn() bool { return false }

func (h *Info) Handle(ctx context.Context, sess *model.Session, userText string) (string, error) {
	facts, err := h.catalog.PropertyFacts(ctx, h.property)
	if err != nil {
		return "", fmt.Errorf("%s: property lookup failed: %w", LogPrefixInfo, err)
	}

	prompt := fmt.Sprintf(PromptInfoTemplate,
		facts.Name,
		languageName(sess.Language),
		renderFacts(facts),
		memory.Render(memory.Window(sess, memory.MaxHistory)),
		userText,
	)

	resp, err := h.llm.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages:    []openai.Message{{Role: "system", Content: prompt}},
		Temperature: ResponderTemperature,
		MaxTokens:   ResponderMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: responder call failed: %w", LogPrefixInfo, err)
	}

	return resp.Text(), nil
}

func renderFacts(facts catalog.PropertyFacts) string {
	names := make([]string, 0, len(facts.Facilities))
	for name := range facts.Facilities {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %s\n", name, facts.Facilities[name])
	}
	for _, rule := range facts.Rules {
		fmt.Fprintf(&b, "- rule: %s\n", rule)
	}
	for _, penalty := range facts.Penalties {
		fmt.Fprintf(&b, "- penalty: %s\n", penalty)
	}
	return b.String()
}
