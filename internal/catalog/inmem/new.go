// Package inmem provides a seeded in-memory catalog used in development and
// tests. Entries keep their insertion order, which is the catalog's ranking.
package inmem

import (
	"hospitality-concierge/internal/catalog"
)

type implCatalog struct {
	restaurants []catalog.Restaurant
	activities  []catalog.Activity
	properties  map[string]catalog.PropertyFacts
}

// Ensure implCatalog implements Catalog interface
var _ catalog.Catalog = (*implCatalog)(nil)

// New creates an in-memory catalog with the given entries.
func New(restaurants []catalog.Restaurant, activities []catalog.Activity, properties []catalog.PropertyFacts) *implCatalog {
	props := make(map[string]catalog.PropertyFacts, len(properties))
	for _, p := range properties {
		props[p.Name] = p
	}
	return &implCatalog{
		restaurants: restaurants,
		activities:  activities,
		properties:  props,
	}
}

// NewSeeded creates an in-memory catalog preloaded with the Calafell sample
// data. Used when no database is configured.
func NewSeeded() *implCatalog {
	return New(seedRestaurants, seedActivities, seedProperties)
}

// SeedData exposes the Calafell sample entries for seeding other backends.
func SeedData() ([]catalog.Restaurant, []catalog.Activity, []catalog.PropertyFacts) {
	return seedRestaurants, seedActivities, seedProperties
}
