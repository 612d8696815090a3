package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"intent-coordinator/internal/idempotency"
	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/metrics"
	"intent-coordinator/internal/ratelimit"
	"intent-coordinator/internal/token"
)

// ParseFreeText runs one request through rate limiting, idempotency replay,
// the model and the post-processor, in that order. Only successful responses
// are cached.
func (uc *implUseCase) ParseFreeText(ctx context.Context, input intent.ParseFreeTextInput) (intent.ParseFreeTextOutput, error) {
	network := token.NormalizeNetwork(input.Network)

	rate := uc.limiter.Hit(ratelimit.Key(network, input.CallerID), uc.now())
	if !rate.Allowed {
		metrics.RateLimited.WithLabelValues(network).Inc()
		return uc.fail(network, intent.ErrRateLimited)
	}

	now := uc.now()
	idemKey := strings.TrimSpace(input.IdempotencyKey)
	var textHash string
	if input.Text != nil {
		textHash = idempotency.HashText(*input.Text)
	}

	if idemKey != "" {
		resp, hit, err := uc.replay(ctx, idempotency.Key(network, idemKey), textHash, now)
		if err != nil {
			return uc.fail(network, err)
		}
		if hit {
			metrics.IdempotencyReplays.WithLabelValues(network).Inc()
			metrics.ParseRequests.WithLabelValues(network, metrics.OutcomeReplayed).Inc()
			return intent.ParseFreeTextOutput{Response: resp, Replayed: true, RateRemaining: rate.Remaining}, nil
		}
	}

	var resp intent.ParsedIntentResponse
	var err error
	if uc.cfg.CoalesceInflight && idemKey != "" {
		resp, err = uc.parseCoalesced(ctx, network, idemKey, textHash, input.Text)
	} else {
		resp, err = uc.parse(ctx, network, input.Text)
	}
	if err != nil {
		return uc.fail(network, err)
	}

	if idemKey != "" {
		uc.remember(ctx, idempotency.Key(network, idemKey), textHash, resp, now)
	}

	metrics.ParseRequests.WithLabelValues(network, metrics.OutcomeOK).Inc()
	return intent.ParseFreeTextOutput{Response: resp, RateRemaining: rate.Remaining}, nil
}

func (uc *implUseCase) fail(network string, err error) (intent.ParseFreeTextOutput, error) {
	metrics.ParseRequests.WithLabelValues(network, intent.KindOf(err).String()).Inc()
	return intent.ParseFreeTextOutput{}, err
}

// replay looks up a stored response. A stored response for different text is
// a conflict. Store failures are logged and treated as a miss.
func (uc *implUseCase) replay(ctx context.Context, key, textHash string, now time.Time) (intent.ParsedIntentResponse, bool, error) {
	rec, ok, err := uc.store.Get(ctx, key, now)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ParseFreeText store.Get: %v", err)
		return intent.ParsedIntentResponse{}, false, nil
	}
	if !ok {
		return intent.ParsedIntentResponse{}, false, nil
	}
	if rec.TextHash != textHash {
		return intent.ParsedIntentResponse{}, false, intent.NewError(intent.KindIdempotencyKeyConflict, errors.New("text differs from the original request"))
	}

	var resp intent.ParsedIntentResponse
	if err := json.Unmarshal(rec.Response, &resp); err != nil {
		uc.l.Warnf(ctx, "uc.ParseFreeText decode cached response: %v", err)
		return intent.ParsedIntentResponse{}, false, nil
	}
	return resp, true, nil
}

func (uc *implUseCase) remember(ctx context.Context, key, textHash string, resp intent.ParsedIntentResponse, now time.Time) {
	raw, err := json.Marshal(resp)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ParseFreeText encode response: %v", err)
		return
	}
	if err := uc.store.Set(ctx, key, idempotency.Record{TextHash: textHash, Response: raw}, now); err != nil {
		uc.l.Warnf(ctx, "uc.ParseFreeText store.Set: %v", err)
	}
}

// parseCoalesced lets concurrent requests for the same key and text share
// one parse. Followers get the leader's result, errors included.
func (uc *implUseCase) parseCoalesced(ctx context.Context, network, idemKey, textHash string, text *string) (intent.ParsedIntentResponse, error) {
	flightKey := idempotency.Key(network, idemKey) + "\x00" + textHash
	v, err, _ := uc.inflight.Do(flightKey, func() (any, error) {
		return uc.parse(context.WithoutCancel(ctx), network, text)
	})
	if err != nil {
		return intent.ParsedIntentResponse{}, err
	}
	return v.(intent.ParsedIntentResponse), nil
}

// parse validates the text, calls the model and post-processes its output.
// Every error it returns carries an intent.Kind.
func (uc *implUseCase) parse(ctx context.Context, network string, text *string) (intent.ParsedIntentResponse, error) {
	rawText, err := uc.validateInput(text)
	if err != nil {
		return intent.ParsedIntentResponse{}, err
	}
	if err := rejectUnsupportedMentions(rawText); err != nil {
		return intent.ParsedIntentResponse{}, err
	}

	if uc.parser == nil || uc.cfg.Model == "" {
		uc.l.Errorf(ctx, "uc.ParseFreeText: parser not configured")
		return intent.ParsedIntentResponse{}, intent.NewError(intent.KindParserUnavailable, errors.New("parser not configured"))
	}

	structured, err := uc.parser.ParseIntentFromText(ctx, intent.ParseOptions{
		Model:   uc.cfg.Model,
		Text:    rawText,
		Timeout: uc.cfg.ParserTimeout,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ParseFreeText parser.ParseIntentFromText: %v", err)
		return intent.ParsedIntentResponse{}, intent.NewError(intent.KindParserUnavailable, err)
	}

	resp, err := uc.postProcess(ctx, network, rawText, structured, uc.now())
	if err != nil {
		if intent.KindOf(err) == intent.KindUnknown {
			err = intent.NewError(intent.KindUnparseableIntent, err)
		}
		if intent.KindOf(err) == intent.KindParserUnavailable {
			uc.l.Errorf(ctx, "uc.ParseFreeText postProcess: %v", err)
		} else {
			uc.l.Infof(ctx, "uc.ParseFreeText rejected: %v", err)
		}
		return intent.ParsedIntentResponse{}, fmt.Errorf("post-process: %w", err)
	}
	return resp, nil
}
