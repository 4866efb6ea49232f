package category

import (
	"context"
	"fmt"

	"hospitality-concierge/internal/catalog"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/slotfill"
	pkgLog "hospitality-concierge/pkg/log"
	"hospitality-concierge/pkg/openai"
)

// Activities recommends up to three area activities matching the guest's
// group type, in catalog order.
type Activities struct {
	slotHandler
	catalog catalog.Catalog
	llm     openai.IOpenAI
}

// NewActivities creates the activity-recommendation handler.
func NewActivities(engine *slotfill.Engine, cat catalog.Catalog, llm openai.IOpenAI, l pkgLog.Logger) *Activities {
	h := &Activities{
		catalog: cat,
		llm:     llm,
	}
	h.slotHandler = slotHandler{
		schema: slotfill.Schema{
			Category:     model.CategoryActivities,
			Fields:       []string{FieldDay, FieldGroupType, FieldNotes},
			Instructions: InstructionsActivities,
		},
		engine:   engine,
		complete: h.recommend,
		l:        l,
	}
	return h
}

func (h *Activities) recommend(ctx context.Context, sess *model.Session, slots map[string]string) (string, error) {
	items, err := h.catalog.Activities(ctx, slots[FieldGroupType])
	if err != nil {
		return "", fmt.Errorf("%s: catalog query failed: %w", LogPrefixActivities, err)
	}
	if len(items) == 0 {
		return localized(sess.Language, NoActivitiesES, NoActivitiesEN), nil
	}
	if len(items) > RecommendationLimit {
		items = items[:RecommendationLimit]
	}

	lines := make([]string, 0, len(items))
	for _, a := range items {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", a.Name, a.Zone, a.Description))
	}

	return phraseOptions(ctx, h.llm, h.l, LogPrefixActivities, sess.Language, lines), nil
}
