// Package metrics holds the Prometheus collectors of the intent service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeTimeout  = "timeout"
	OutcomeReplayed = "replayed"
)

var (
	ParseRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_parse_requests_total",
		Help: "Free-text parse requests by network and outcome code",
	}, []string{"network", "outcome"})

	ParserCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "intent_parser_call_seconds",
		Help:    "Wall-clock time of one parser call, both attempts included",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
	}, []string{"outcome"})

	IdempotencyReplays = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_idempotency_replays_total",
		Help: "Responses served from the idempotency cache",
	}, []string{"network"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_rate_limited_total",
		Help: "Requests rejected by the fixed-window rate limiter",
	}, []string{"network"})

	TemperatureFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intent_parser_temperature_fallbacks_total",
		Help: "Parser calls retried without a temperature override",
	})
)
