package openai

import "context"

// IClient is a chat-completions client for OpenAI-compatible APIs.
// Implementations are safe for concurrent use.
type IClient interface {
	// CreateChatCompletion sends one chat-completions request.
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the default model.
	Model() string
}

// New creates a new client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
