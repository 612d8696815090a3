// Package app wires configuration into the intent coordinator's components.
package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"intent-coordinator/config"
	"intent-coordinator/internal/httpserver"
	"intent-coordinator/internal/idempotency"
	idemMemory "intent-coordinator/internal/idempotency/memory"
	idemRedis "intent-coordinator/internal/idempotency/redis"
	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/intent/parser"
	"intent-coordinator/internal/intent/usecase"
	"intent-coordinator/internal/ratelimit"
	"intent-coordinator/internal/token"
	tokenFile "intent-coordinator/internal/token/repository/file"
	"intent-coordinator/pkg/llmprovider"
	"intent-coordinator/pkg/log"
)

// App holds the wired components shared by the API server and the CLI.
type App struct {
	Registry token.Registry
	IntentUC intent.UseCase

	providers *llmprovider.Handle
	networks  []string
	redis     *goredis.Client
}

// New builds every component from cfg. A missing LLM key or model does not
// fail here; parse requests report the parser as unavailable instead.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{networks: cfg.Networks.Supported}

	// 1. Token registry
	registry := token.NewCachedRegistry(tokenFile.New(cfg.Networks.TokensDir), l)
	a.Registry = registry

	// 2. LLM provider and parser
	providerCfg := llmprovider.ProviderConfig{
		Name:              cfg.LLM.Provider,
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
	}
	if !providerCfg.Configured() {
		l.Warn(ctx, "LLM provider not configured: free-text parsing will return 503 until llm.api_key and llm.model are set")
	}
	a.providers = llmprovider.NewHandle(providerCfg, l)
	intentParser := parser.New(a.providers, l)

	// 3. Idempotency store
	store, err := a.newStore(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	// 4. Rate limiter
	limiter := ratelimit.New(ratelimit.Config{
		Limit:   cfg.Intent.RateLimitPerWindow,
		Window:  cfg.Intent.RateLimitWindow,
		MaxKeys: cfg.Intent.RateLimitMaxKeys,
	})

	// 5. Intent usecase
	a.IntentUC = usecase.New(l, registry, intentParser, store, limiter, usecase.Config{
		Model:                 cfg.LLM.Model,
		MaxTextLen:            cfg.Intent.MaxTextLen,
		DefaultExpiryMinutes:  cfg.Intent.DefaultExpiryMinutes,
		DefaultMaxSlippageBps: cfg.Intent.DefaultMaxSlippageBps,
		ParserTimeout:         cfg.Intent.ParserTimeout,
		CoalesceInflight:      cfg.Intent.CoalesceInflight,
	}, time.Now)

	return a, nil
}

func (a *App) newStore(ctx context.Context, cfg *config.Config, l log.Logger) (idempotency.Store, error) {
	switch cfg.Intent.IdempotencyBackend {
	case config.IdempotencyBackendRedis:
		client, err := idemRedis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("idempotency store: %w", err)
		}
		a.redis = client
		l.Infof(ctx, "Idempotency store: redis at %s", cfg.Redis.Addr)
		return idemRedis.New(client, idemRedis.Config{
			TTL:       cfg.Intent.IdempotencyTTL,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}), nil
	default:
		l.Infof(ctx, "Idempotency store: memory, max %d entries", cfg.Intent.IdempotencyMaxEntries)
		return idemMemory.New(idemMemory.Config{
			TTL:        cfg.Intent.IdempotencyTTL,
			MaxEntries: cfg.Intent.IdempotencyMaxEntries,
		}), nil
	}
}

// ReadyChecks reports whether the parser can be reached and every supported
// network's catalog loads. Neither check calls the model.
func (a *App) ReadyChecks() []httpserver.ReadyCheck {
	checks := []httpserver.ReadyCheck{{
		Name: "llm_provider",
		Check: func(ctx context.Context) error {
			_, err := a.providers.Get()
			return err
		},
	}}
	for _, n := range a.networks {
		network := n
		checks = append(checks, httpserver.ReadyCheck{
			Name: "tokens_" + network,
			Check: func(ctx context.Context) error {
				_, err := a.Registry.GetTokens(ctx, network)
				return err
			},
		})
	}
	return checks
}

// Close releases external connections.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
