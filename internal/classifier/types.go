package classifier

import "hospitality-concierge/internal/model"

// Output is the canonical classification result for one inbound message.
// Intents is never empty: unparseable or empty classifier output is coerced
// to [CategoryIndeterminate].
type Output struct {
	Language   string           `json:"language"`
	Intents    []model.Category `json:"intents"`
	Confidence float64          `json:"confidence"`
}

// Hint carries the session context passed to the classifier as a
// disambiguation aid, not a hard constraint.
type Hint struct {
	Language       string
	ActiveCategory model.Category
}
