package model

import "time"

// Category names a topic-specific sub-dialogue with its own slot schema.
type Category string

const (
	CategoryInfo        Category = "accommodation_info"
	CategoryIssue       Category = "stay_issue"
	CategoryCleaning    Category = "cleaning"
	CategoryTransport   Category = "transport"
	CategoryRestaurants Category = "restaurant_recommendations"
	CategoryActivities  Category = "activity_recommendations"
	CategoryExtendStay  Category = "extend_stay"
	CategoryDiscounts   Category = "discounts"

	// CategoryIndeterminate is the classifier's degraded output; it is never
	// routed to a handler.
	CategoryIndeterminate Category = "indeterminate"
)

const (
	// SlotUndefined is the sentinel value for an unfilled slot field. Completion
	// checks scan for it by equality, so a missing field is always stored as
	// this value rather than an absent key.
	SlotUndefined = "undefined"

	// DefaultLanguage is the fallback language code for new sessions.
	DefaultLanguage = "es"

	// LanguageUnknown marks a turn whose language could not be classified.
	LanguageUnknown = "unknown"
)

// Turn is one user/assistant exchange in the conversation history.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Session is the per-guest conversation record. One exists per guest
// identifier (phone number or account id); it is created on first contact
// and never deleted — closure is a logical flag only.
type Session struct {
	ID             string
	ActiveCategory Category // set only by the dispatcher; empty when no sub-dialogue is open
	Language       string
	History        []Turn
	Slots          map[Category]map[string]string
	Closed         bool
	CheckoutDate   *time.Time // drives lazy expiry; nil when unknown
	CreatedAt      time.Time
}

// NewSession creates a fresh session record for the given guest identifier.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Language:  DefaultLanguage,
		History:   []Turn{},
		Slots:     map[Category]map[string]string{},
		CreatedAt: time.Now().UTC(),
	}
}

// CategorySlots returns the slot map for the given category, creating it on
// first use. Callers fill missing schema fields with SlotUndefined.
func (s *Session) CategorySlots(cat Category) map[string]string {
	if s.Slots == nil {
		s.Slots = map[Category]map[string]string{}
	}
	if s.Slots[cat] == nil {
		s.Slots[cat] = map[string]string{}
	}
	return s.Slots[cat]
}

// Expired reports whether the stay has ended relative to now. Sessions close
// one day after the recorded checkout date; a session without a checkout
// date never expires.
func (s *Session) Expired(now time.Time) bool {
	if s.CheckoutDate == nil {
		return false
	}
	return now.After(s.CheckoutDate.Add(24 * time.Hour))
}
