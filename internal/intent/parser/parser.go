// Package parser calls the language model and returns its schema-checked
// tool arguments.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/intent/schema"
	"intent-coordinator/internal/metrics"
	"intent-coordinator/pkg/llmprovider"
	"intent-coordinator/pkg/log"
)

// ProviderSource hands out the shared provider. *llmprovider.Handle
// implements it.
type ProviderSource interface {
	Get() (llmprovider.Provider, error)
}

// Client is the AI parsing client. It holds no mutable state besides the
// provider handle.
type Client struct {
	providers ProviderSource
	l         log.Logger
	now       func() time.Time
}

var _ intent.Parser = (*Client)(nil)

// New creates a Client.
func New(providers ProviderSource, l log.Logger) *Client {
	return &Client{
		providers: providers,
		l:         l,
		now:       time.Now,
	}
}

// ParseIntentFromText asks the model for a parse_intent tool call.
//
// The first attempt requests temperature 0. If the model rejects that
// value, one more attempt is made without it. opts.Timeout bounds both
// attempts together.
func (c *Client) ParseIntentFromText(ctx context.Context, opts intent.ParseOptions) (intent.StructuredIntent, error) {
	provider, err := c.providers.Get()
	if err != nil {
		return intent.StructuredIntent{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	startedAt := c.now()
	outcome := metrics.OutcomeError
	defer func() {
		metrics.ParserCallDuration.WithLabelValues(outcome).Observe(c.now().Sub(startedAt).Seconds())
	}()

	zero := 0.0
	req := buildRequest(opts)
	req.Temperature = &zero

	resp, err := c.attempt(ctx, provider, req, opts.Timeout)
	if err != nil && llmprovider.IsUnsupportedTemperature(err) {
		remaining := opts.Timeout - c.now().Sub(startedAt)
		if remaining <= 0 {
			outcome = metrics.OutcomeTimeout
			return intent.StructuredIntent{}, fmt.Errorf("%w: no budget left for the fallback attempt", ErrTimeout)
		}

		c.l.Warnf(ctx, "parser.ParseIntentFromText: model %s rejected temperature, retrying without it", opts.Model)
		metrics.TemperatureFallbacks.Inc()

		req.Temperature = nil
		resp, err = c.attempt(ctx, provider, req, remaining)
	}
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		return intent.StructuredIntent{}, err
	}

	args := firstToolArguments(resp)
	if strings.TrimSpace(args) == "" {
		return intent.StructuredIntent{}, ErrNoToolCallReturned
	}

	out, err := schema.Parse([]byte(args))
	if err != nil {
		return intent.StructuredIntent{}, err
	}

	outcome = metrics.OutcomeOK
	return out, nil
}

type attemptResult struct {
	resp *llmprovider.Response
	err  error
}

// attempt runs one provider call under budget. When the budget runs out the
// pending call is abandoned, not awaited.
func (c *Client) attempt(ctx context.Context, p llmprovider.Provider, req *llmprovider.Request, budget time.Duration) (*llmprovider.Response, error) {
	if budget <= 0 {
		return nil, ErrTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	done := make(chan attemptResult, 1)
	go func() {
		resp, err := p.GenerateContent(ctx, req)
		done <- attemptResult{resp: resp, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, r.err)
		}
		return r.resp, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, budget)
		}
		return nil, ctx.Err()
	}
}

func buildRequest(opts intent.ParseOptions) *llmprovider.Request {
	return &llmprovider.Request{
		Model:             opts.Model,
		SystemInstruction: SystemPrompt,
		Messages:          []llmprovider.Message{{Role: "user", Text: opts.Text}},
		Tools: []llmprovider.Tool{{
			Name:        ToolName,
			Description: ToolDescription,
			Parameters:  toolParameters(),
			Strict:      true,
		}},
		ToolChoice: ToolName,
	}
}

func firstToolArguments(resp *llmprovider.Response) string {
	if resp == nil || len(resp.FunctionCalls) == 0 {
		return ""
	}
	return resp.FunctionCalls[0].Arguments
}
