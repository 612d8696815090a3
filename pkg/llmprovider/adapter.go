package llmprovider

import (
	"context"

	"intent-coordinator/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. Every provider
// with an OpenAI-compatible chat-completions API goes through it.
type OpenAIAdapter struct {
	name   string
	client openai.IClient
}

// NewOpenAIAdapter creates a new adapter reporting itself as name
func NewOpenAIAdapter(name string, client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.CreateChatCompletion(ctx, convertToOpenAIRequest(req))
	if err != nil {
		pe := &ProviderError{Provider: a.name, Err: err}
		if apiErr, ok := openai.AsAPIError(err); ok {
			pe.StatusCode = apiErr.StatusCode
		}
		return nil, pe
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	for _, tc := range resp.ToolCalls {
		out.FunctionCalls = append(out.FunctionCalls, FunctionCall{Name: tc.Name, Arguments: tc.Arguments})
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIRequest(req *Request) *openai.Request {
	out := &openai.Request{
		Model:       req.Model,
		ToolChoice:  req.ToolChoice,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.Message, 0, len(req.Messages)+1),
	}
	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, openai.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, openai.Message{Role: m.Role, Content: m.Text})
	}
	for _, t := range req.Tools {
		out.Tools = append(out.Tools, openai.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
			Strict:      t.Strict,
		})
	}
	return out
}
