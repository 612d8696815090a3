package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{APIKey: "test-key", Model: "test-model", BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return client
}

func TestCreateChatCompletionToolCall(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		_, _ = w.Write([]byte(`{"model":"test-model","choices":[{"index":0,"finish_reason":"tool_calls","message":{"role":"assistant","tool_calls":[{"id":"call_1","type":"function","function":{"name":"parse_intent","arguments":"{\"a\":1}"}}]}}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	})

	zero := 0.0
	resp, err := client.CreateChatCompletion(context.Background(), &Request{
		Messages:    []Message{{Role: "system", Content: "sys"}, {Role: "user", Content: "hi"}},
		Tools:       []Tool{{Name: "parse_intent", Description: "d", Parameters: map[string]any{"type": "object"}, Strict: true}},
		ToolChoice:  "parse_intent",
		Temperature: &zero,
	})
	require.NoError(t, err)

	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "parse_intent", resp.ToolCalls[0].Name)
	assert.Equal(t, `{"a":1}`, resp.ToolCalls[0].Arguments)
	assert.Equal(t, 15, resp.Usage.TotalTokens)

	assert.Equal(t, "test-model", got["model"])
	assert.Equal(t, 0.0, got["temperature"])
	choice := got["tool_choice"].(map[string]any)
	assert.Equal(t, "function", choice["type"])
	assert.Equal(t, "parse_intent", choice["function"].(map[string]any)["name"])
}

func TestCreateChatCompletionOmitsNilTemperature(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	resp, err := client.CreateChatCompletion(context.Background(), &Request{Model: "override"})
	require.NoError(t, err)
	assert.Empty(t, resp.ToolCalls)

	_, present := got["temperature"]
	assert.False(t, present)
	assert.Equal(t, "override", got["model"])
}

func TestCreateChatCompletionAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Unsupported value: 'temperature' does not support 0 with this model. Only the default (1) value is supported.","type":"invalid_request_error","param":"temperature"}}`))
	})

	_, err := client.CreateChatCompletion(context.Background(), &Request{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "temperature", apiErr.Param)
	assert.Contains(t, apiErr.Message, "Only the default")
}

func TestCreateChatCompletionNonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := client.CreateChatCompletion(context.Background(), &Request{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	assert.Error(t, cfg.Validate())

	cfg = Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.NotNil(t, cfg.HTTPClient)
	assert.Zero(t, cfg.HTTPClient.Timeout, "the context deadline alone bounds a call")

	cfg = Config{APIKey: "k", RequestsPerSecond: -1}
	assert.Error(t, cfg.Validate())
}

func TestCreateChatCompletionHonorsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreateChatCompletion(ctx, &Request{Messages: []Message{{Role: "user", Content: "hi"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBaseURLForProvider(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, BaseURLForProvider("openai"))
	assert.Equal(t, DeepSeekBaseURL, BaseURLForProvider("deepseek"))
	assert.Equal(t, QwenBaseURL, BaseURLForProvider("qwen"))
	assert.Empty(t, BaseURLForProvider("unknown"))
}
