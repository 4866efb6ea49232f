// Package memory builds the bounded recent-turn context fed to classification
// and extraction prompts, and owns the history truncation policy.
package memory

import (
	"encoding/json"
	"fmt"
	"strings"

	"hospitality-concierge/internal/model"
)

const (
	// MaxHistory is the hard bound on stored turns. Older turns are dropped,
	// never archived.
	MaxHistory = 10
)

// Window returns the last min(max, MaxHistory) turns in chronological order
// (oldest first). It never mutates the session.
func Window(sess *model.Session, max int) []model.Turn {
	if sess == nil || len(sess.History) == 0 || max <= 0 {
		return nil
	}
	if max > MaxHistory {
		max = MaxHistory
	}

	start := len(sess.History) - max
	if start < 0 {
		start = 0
	}

	out := make([]model.Turn, len(sess.History)-start)
	copy(out, sess.History[start:])
	return out
}

// Render serializes a window into the transcript form used inside prompts.
func Render(turns []model.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	var b strings.Builder
	for _, turn := range turns {
		fmt.Fprintf(&b, "Guest: %q\nAssistant: %q\n", turn.User, turn.Assistant)
	}
	return b.String()
}

// Append records one exchange on the session and truncates the history to
// MaxHistory entries, oldest first. The assistant side may be any value a
// completion action produced; non-string values are serialized to their
// canonical JSON form so the stored history stays type-stable.
func Append(sess *model.Session, userText string, assistant any) {
	sess.History = append(sess.History, model.Turn{
		User:      userText,
		Assistant: assistantText(assistant),
	})
	if len(sess.History) > MaxHistory {
		sess.History = sess.History[len(sess.History)-MaxHistory:]
	}
}

func assistantText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}
