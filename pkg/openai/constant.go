package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4-turbo"

	// DefaultAPIURL is the default OpenAI API endpoint
	DefaultAPIURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
