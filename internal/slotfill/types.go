package slotfill

import "hospitality-concierge/internal/model"

// Schema defines one category's slot-filling contract: the required fields
// and the category-specific extraction instructions injected into the prompt.
type Schema struct {
	Category     model.Category
	Fields       []string
	Instructions string
}

// Result is the outcome of one Advance call.
//
// Slots always contains exactly the schema's fields: unknown keys from the
// extractor are dropped and missing fields carry the sentinel, so completion
// checks are a plain equality scan.
type Result struct {
	Slots    map[string]string
	Question string // clarifying question for the guest; empty when none is needed
	Complete bool
}
