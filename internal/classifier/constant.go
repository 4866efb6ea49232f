package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompts
const (
	PromptClassifierSystem = `You are an intent classifier for a holiday-apartment concierge assistant.
Analyse the guest's message and detect its language and one or more of the
following categories:

1. accommodation_info: questions about the apartment itself — facilities (wifi, towels, capacity, location), house rules (smoking, pets, quiet hours) or penalties (lost keys, damages)
2. stay_issue: the guest reports a problem or breakdown (no hot water, broken coffee machine, leak, blocked door)
3. cleaning: requests for an extra cleaning, fresh sheets or towels
4. transport: the guest needs a private transfer from one place to another
5. restaurant_recommendations: where to eat or dine
6. activity_recommendations: what to visit or do, leisure activities, local tourism
7. extend_stay: requests to add more nights to the booking
8. discounts: questions about promotions, coupons or discounts

Always return a JSON object with this exact structure (no extra text):

{
  "language": "<main language code, e.g. es, en>",
  "intents": ["<one_or_more_categories_from_the_list>"],
  "confidence": <number between 0 and 1>
}

If no category matches, use ["indeterminate"] in "intents".

Examples:

Message: "¿Dónde puedo ver las normas de la casa?"
{"language": "es", "intents": ["accommodation_info"], "confidence": 0.9}

Message: "I need fresh towels and I'd like to extend my stay"
{"language": "en", "intents": ["cleaning", "extend_stay"], "confidence": 0.85}

Now classify this message:

%q`

	PromptHistoryPrefix = "Recent conversation:\n"
	PromptHintTemplate  = "Session context: language=%s active_category=%s\n\n"
)

// Classifier configuration
const (
	ClassifierTemperature = 0.0
	ClassifierMaxTokens   = 200
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "failed to parse JSON, degrading to indeterminate"
	ErrMsgEmptyResponse   = "empty LLM response, degrading to indeterminate"
)
