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

// Restaurants recommends up to three catalog restaurants matching the
// guest's cuisine and budget, in catalog order.
type Restaurants struct {
	slotHandler
	catalog catalog.Catalog
	llm     openai.IOpenAI
}

// NewRestaurants creates the restaurant-recommendation handler.
func NewRestaurants(engine *slotfill.Engine, cat catalog.Catalog, llm openai.IOpenAI, l pkgLog.Logger) *Restaurants {
	h := &Restaurants{
		catalog: cat,
		llm:     llm,
	}
	h.slotHandler = slotHandler{
		schema: slotfill.Schema{
			Category:     model.CategoryRestaurants,
			Fields:       []string{FieldCuisine, FieldBudget},
			Instructions: InstructionsRestaurants,
		},
		engine:   engine,
		complete: h.recommend,
		l:        l,
	}
	return h
}

func (h *Restaurants) recommend(ctx context.Context, sess *model.Session, slots map[string]string) (string, error) {
	items, err := h.catalog.Restaurants(ctx, slots[FieldCuisine], slots[FieldBudget])
	if err != nil {
		return "", fmt.Errorf("%s: catalog query failed: %w", LogPrefixRestaurants, err)
	}
	if len(items) == 0 {
		return localized(sess.Language, NoRestaurantsES, NoRestaurantsEN), nil
	}
	if len(items) > RecommendationLimit {
		items = items[:RecommendationLimit]
	}

	lines := make([]string, 0, len(items))
	for _, r := range items {
		lines = append(lines, fmt.Sprintf("- %s (%s, %s, %s)", r.Name, r.Cuisine, r.Budget, r.Zone))
	}

	return phraseOptions(ctx, h.llm, h.l, LogPrefixRestaurants, sess.Language, lines), nil
}
