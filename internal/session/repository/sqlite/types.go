package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
)

// sessionRow is the stored form of a session. History and slots are JSON
// text columns so schema migrations never touch the conversational state.
type sessionRow struct {
	ID             string `gorm:"primaryKey;column:id"`
	ActiveCategory string `gorm:"column:active_category"`
	Language       string `gorm:"column:language"`
	History        string `gorm:"column:history"`
	Slots          string `gorm:"column:slots"`
	Closed         bool   `gorm:"column:closed"`
	CheckoutDate   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (sessionRow) TableName() string { return "sessions" }

func toRow(sess *model.Session) sessionRow {
	history, _ := json.Marshal(sess.History)
	slots, _ := json.Marshal(sess.Slots)
	return sessionRow{
		ID:             sess.ID,
		ActiveCategory: string(sess.ActiveCategory),
		Language:       sess.Language,
		History:        string(history),
		Slots:          string(slots),
		Closed:         sess.Closed,
		CheckoutDate:   sess.CheckoutDate,
		CreatedAt:      sess.CreatedAt,
	}
}

func fromRow(row sessionRow) *model.Session {
	return &model.Session{
		ID:             row.ID,
		ActiveCategory: model.Category(row.ActiveCategory),
		Language:       row.Language,
		History:        canonicalizeHistory(row.History),
		Slots:          canonicalizeSlots(row.Slots),
		Closed:         row.Closed,
		CheckoutDate:   row.CheckoutDate,
		CreatedAt:      row.CreatedAt,
	}
}

// canonicalizeHistory coerces any stored representation of the history into
// the canonical turn list. Structured assistant values are re-serialized to
// text, unrecognized entries are dropped, malformed input yields an empty
// history, over-long histories keep only the most recent memory.MaxHistory
// turns. Never fails.
func canonicalizeHistory(raw string) []model.Turn {
	out := []model.Turn{}
	if raw == "" {
		return out
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return out
	}

	for _, entry := range entries {
		user, ok := asText(entry["user"])
		if !ok {
			continue
		}
		assistant, ok := asText(entry["assistant"])
		if !ok {
			continue
		}
		out = append(out, model.Turn{User: user, Assistant: assistant})
	}
	if len(out) > memory.MaxHistory {
		out = out[len(out)-memory.MaxHistory:]
	}
	return out
}

// canonicalizeSlots coerces any stored representation of the slot map into
// the canonical category-to-fields shape. A category value stored as a JSON
// string is decoded, non-string field values are stringified, anything else
// is dropped. Never fails.
func canonicalizeSlots(raw string) map[model.Category]map[string]string {
	out := map[model.Category]map[string]string{}
	if raw == "" {
		return out
	}

	var categories map[string]any
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return out
	}

	for cat, val := range categories {
		// textual encoding of the field map
		if s, ok := val.(string); ok {
			var decoded map[string]any
			if err := json.Unmarshal([]byte(s), &decoded); err != nil {
				continue
			}
			val = decoded
		}

		fields, ok := val.(map[string]any)
		if !ok {
			continue
		}

		slots := make(map[string]string, len(fields))
		for field, fv := range fields {
			if text, ok := asText(fv); ok {
				slots[field] = text
			}
		}
		out[model.Category(cat)] = slots
	}
	return out
}

func asText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return fmt.Sprint(t), true
	}
}
