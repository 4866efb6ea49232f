package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat completions client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// CreateChatCompletion sends a chat completion request to the OpenAI API
	CreateChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Model returns the model being used
	Model() string
}
