package openai

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Config holds client configuration.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	// No client timeout: the caller's context deadline bounds each call.
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("openai: RequestsPerSecond must be >= 0")
	}
	return nil
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Request is a chat-completions request.
type Request struct {
	// Model overrides the client default when set.
	Model    string
	Messages []Message
	Tools    []Tool
	// ToolChoice forces a call to the named tool when set.
	ToolChoice string
	// Temperature is omitted from the wire request when nil.
	Temperature *float64
	MaxTokens   int
}

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Tool is a function declaration with a JSON schema for its arguments.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Strict      bool
}

// ToolCall is a function call returned by the model. Arguments is the raw
// JSON string exactly as the provider sent it.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Response is a chat-completions response reduced to its first choice.
type Response struct {
	Model        string
	Text         string
	ToolCalls    []ToolCall
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types.
type chatRequest struct {
	Model       string          `json:"model"`
	Messages    []chatMessage   `json:"messages"`
	Tools       []chatTool      `json:"tools,omitempty"`
	ToolChoice  *chatToolChoice `json:"tool_choice,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content,omitempty"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`
}

type chatTool struct {
	Type     string           `json:"type"`
	Function chatFunctionDecl `json:"function"`
}

type chatFunctionDecl struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	Strict      bool           `json:"strict,omitempty"`
}

type chatToolChoice struct {
	Type     string             `json:"type"`
	Function chatToolChoiceName `json:"function"`
}

type chatToolChoiceName struct {
	Name string `json:"name"`
}

type chatToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function chatFunctionCall `json:"function"`
}

type chatFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Param   string `json:"param"`
		Code    any    `json:"code"`
	} `json:"error"`
}
