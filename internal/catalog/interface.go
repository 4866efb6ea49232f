package catalog

import (
	"context"
	"errors"
)

// ErrPropertyNotFound is returned when no facts exist for an apartment name.
var ErrPropertyNotFound = errors.New("property not found")

// Catalog answers lookup queries for completion actions. Implementations
// must be deterministic: equal inputs return equal results in the same
// order (catalog insertion order, no secondary scoring).
type Catalog interface {
	// Restaurants returns entries matching the cuisine and budget filters.
	// An empty filter matches everything.
	Restaurants(ctx context.Context, cuisine, budget string) ([]Restaurant, error)

	// Activities returns entries suitable for the given group type.
	// An empty filter matches everything.
	Activities(ctx context.Context, groupType string) ([]Activity, error)

	// PropertyFacts returns the knowledge record for one apartment.
	PropertyFacts(ctx context.Context, name string) (PropertyFacts, error)
}
