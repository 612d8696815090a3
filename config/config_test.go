package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Environment: EnvironmentConfig{Name: "development"},
		HTTPServer:  HTTPServerConfig{Port: 8080, Mode: "debug"},
		Networks:    NetworksConfig{Supported: []string{"devnet"}, TokensDir: "./config"},
		Intent: IntentConfig{
			MaxTextLen:            500,
			DefaultExpiryMinutes:  15,
			DefaultMaxSlippageBps: 100,
			ParserTimeout:         10 * time.Second,
			IdempotencyTTL:        10 * time.Minute,
			IdempotencyBackend:    IdempotencyBackendMemory,
			IdempotencyMaxEntries: 10000,
			RateLimitPerWindow:    30,
			RateLimitWindow:       time.Minute,
			RateLimitMaxKeys:      10000,
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.HTTPServer.Port = 0 }, "http_server.port"},
		{"port too large", func(c *Config) { c.HTTPServer.Port = 70000 }, "http_server.port"},
		{"unknown environment", func(c *Config) { c.Environment.Name = "qa" }, "environment.name"},
		{"no networks", func(c *Config) { c.Networks.Supported = nil }, "networks.supported"},
		{"unknown network", func(c *Config) { c.Networks.Supported = []string{"ethereum"} }, "unknown network"},
		{"no tokens dir", func(c *Config) { c.Networks.TokensDir = "" }, "networks.tokens_dir"},
		{"text len", func(c *Config) { c.Intent.MaxTextLen = 0 }, "intent.max_text_len"},
		{"expiry low", func(c *Config) { c.Intent.DefaultExpiryMinutes = 0 }, "intent.default_expiry_minutes"},
		{"expiry high", func(c *Config) { c.Intent.DefaultExpiryMinutes = 1441 }, "intent.default_expiry_minutes"},
		{"slippage negative", func(c *Config) { c.Intent.DefaultMaxSlippageBps = -1 }, "intent.default_max_slippage_bps"},
		{"slippage high", func(c *Config) { c.Intent.DefaultMaxSlippageBps = 5001 }, "intent.default_max_slippage_bps"},
		{"parser timeout", func(c *Config) { c.Intent.ParserTimeout = 0 }, "intent.parser_timeout"},
		{"idempotency ttl", func(c *Config) { c.Intent.IdempotencyTTL = 0 }, "intent.idempotency_ttl"},
		{"unknown backend", func(c *Config) { c.Intent.IdempotencyBackend = "etcd" }, "intent.idempotency_backend"},
		{"redis without addr", func(c *Config) { c.Intent.IdempotencyBackend = IdempotencyBackendRedis }, "redis.addr"},
		{"rate count", func(c *Config) { c.Intent.RateLimitPerWindow = 0 }, "intent.rate_limit_per_window"},
		{"rate window", func(c *Config) { c.Intent.RateLimitWindow = 0 }, "intent.rate_limit_window"},
		{"bad proxy", func(c *Config) { c.HTTPServer.TrustedProxies = []string{"not-an-ip"} }, "http_server.trusted_proxies"},
		{"negative rps", func(c *Config) { c.LLM.RequestsPerSecond = -1 }, "llm.requests_per_second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RedisBackend(t *testing.T) {
	c := validConfig()
	c.Intent.IdempotencyBackend = IdempotencyBackendRedis
	c.Redis.Addr = "localhost:6379"
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_TrustedProxies(t *testing.T) {
	c := validConfig()
	c.HTTPServer.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.10", "::1"}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"Mainnet, devnet", " devnet ", "", "localnet"})
	want := []string{"mainnet", "devnet", "localnet"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("splitList = %v, want %v", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Intent.MaxTextLen != 500 || cfg.Intent.DefaultExpiryMinutes != 15 || cfg.Intent.DefaultMaxSlippageBps != 100 {
		t.Errorf("unexpected intent defaults: %+v", cfg.Intent)
	}
	if cfg.Intent.ParserTimeout != 10*time.Second || cfg.Intent.RateLimitWindow != time.Minute {
		t.Errorf("unexpected durations: %+v", cfg.Intent)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 0 {
		t.Errorf("proxies must not be trusted by default: %v", cfg.HTTPServer.TrustedProxies)
	}
	if len(cfg.Networks.Supported) != 4 {
		t.Errorf("unexpected networks: %v", cfg.Networks.Supported)
	}
}
