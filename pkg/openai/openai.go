package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const maxErrorBody = 64 << 10

func newClientImpl(cfg Config) *clientImpl {
	c := &clientImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := max(1, int(cfg.RequestsPerSecond))
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// CreateChatCompletion sends a chat-completions request.
func (c *clientImpl) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("openai: rate limiter: %w", err)
		}
	}

	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return transformResponse(&chatResp), nil
}

// Model returns the default model.
func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) transformRequest(req *Request) *chatRequest {
	model := req.Model
	if model == "" {
		model = c.model
	}

	out := &chatRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)),
	}

	for _, m := range req.Messages {
		out.Messages = append(out.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	if len(req.Tools) > 0 {
		out.Tools = make([]chatTool, len(req.Tools))
		for i, tool := range req.Tools {
			out.Tools[i] = chatTool{
				Type: "function",
				Function: chatFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
					Strict:      tool.Strict,
				},
			}
		}
	}

	if req.ToolChoice != "" {
		out.ToolChoice = &chatToolChoice{
			Type:     "function",
			Function: chatToolChoiceName{Name: req.ToolChoice},
		}
	}

	return out
}

func transformResponse(resp *chatResponse) *Response {
	out := &Response{
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]
	out.Text = choice.Message.Content
	out.FinishReason = choice.FinishReason
	for _, tc := range choice.Message.ToolCalls {
		if tc.Type != "function" {
			continue
		}
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		apiErr.Message = body.Error.Message
		apiErr.Type = body.Error.Type
		apiErr.Param = body.Error.Param
	}
	return apiErr
}
