package slotfill

// Log prefixes
const (
	LogPrefixAdvance = "internal.slotfill.Advance"
)

// ReplyKey is the extractor's reply field: a clarifying question string, or
// null when every required field is known.
const ReplyKey = "reply_to_guest"

// Extractor prompt
const (
	PromptExtractorTemplate = `You are an assistant handling %s requests for guests of a holiday apartment.
%s
Your goal is to make sure the guest provides every required field before the request is registered.
If the guest already provided everything, return %q as null.
If something is missing, ask only for what is missing.

Required fields and their values known so far ("undefined" means unknown):
%s
Recent conversation:
%s
Guest message:
%q

Always return a JSON object with this exact structure (no extra text, no backticks):
{
%s  %q: "<question for the guest, or null if every field is known>"
}`
)

// Extractor configuration
const (
	ExtractorTemperature = 0.0
	ExtractorMaxTokens   = 200
)

// Log messages
const (
	LogMsgParseFallback = "extractor returned non-JSON, relaying raw text as clarifying question"
)
