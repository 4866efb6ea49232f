package inmem_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hospitality-concierge/internal/catalog"
	"hospitality-concierge/internal/catalog/inmem"
)

func TestRestaurants_FilterAndOrder(t *testing.T) {
	c := inmem.New([]catalog.Restaurant{
		{Name: "A", Cuisine: "italian", Budget: "cheap"},
		{Name: "B", Cuisine: "seafood", Budget: "medium"},
		{Name: "C", Cuisine: "Italian", Budget: "medium"},
	}, nil, nil)

	got, err := c.Restaurants(context.Background(), "italian", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("expected [A C] in insertion order, got %v", got)
	}

	// Deterministic for equal inputs.
	again, _ := c.Restaurants(context.Background(), "italian", "")
	if !reflect.DeepEqual(got, again) {
		t.Error("repeated query returned different results")
	}

	all, _ := c.Restaurants(context.Background(), "", "")
	if len(all) != 3 {
		t.Errorf("empty filters should match everything, got %d", len(all))
	}
}

func TestPropertyFacts(t *testing.T) {
	c := inmem.NewSeeded()

	facts, err := c.PropertyFacts(context.Background(), "Mirador del Mar 3B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facts.Facilities["wifi"] == "" {
		t.Error("seeded property should know about wifi")
	}

	_, err = c.PropertyFacts(context.Background(), "No Such Place")
	if !errors.Is(err, catalog.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}
