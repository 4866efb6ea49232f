package inmem

import (
	"context"
	"strings"

	"hospitality-concierge/internal/catalog"
)

func (c *implCatalog) Restaurants(ctx context.Context, cuisine, budget string) ([]catalog.Restaurant, error) {
	var out []catalog.Restaurant
	for _, r := range c.restaurants {
		if matches(r.Cuisine, cuisine) && matches(r.Budget, budget) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *implCatalog) Activities(ctx context.Context, groupType string) ([]catalog.Activity, error) {
	var out []catalog.Activity
	for _, a := range c.activities {
		if matches(a.GroupType, groupType) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (c *implCatalog) PropertyFacts(ctx context.Context, name string) (catalog.PropertyFacts, error) {
	facts, ok := c.properties[name]
	if !ok {
		return catalog.PropertyFacts{}, catalog.ErrPropertyNotFound
	}
	return facts, nil
}

// matches is a case-insensitive containment check; an empty filter matches
// everything.
func matches(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
