package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "deepseek")
	Name() string

	// Model returns the default model
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	// Model overrides the provider default when set
	Model             string
	SystemInstruction string
	Messages          []Message
	Tools             []Tool
	// ToolChoice forces the named tool
	ToolChoice string
	// Temperature is left to the provider default when nil
	Temperature *float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "assistant"
	Text string
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON Schema
	Strict      bool
}

// FunctionCall represents a model's function call request. Arguments stay
// raw so callers can validate them strictly.
type FunctionCall struct {
	Name      string
	Arguments string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text          string
	FunctionCalls []FunctionCall
	ProviderName  string
	ModelName     string
	Usage         *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
