package config

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"intent-coordinator/internal/model"
)

// Idempotency store backends.
const (
	IdempotencyBackendMemory = "memory"
	IdempotencyBackendRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intent coordinator specifics
	Networks NetworksConfig
	Intent   IntentConfig

	// LLM provider
	LLM LLMConfig

	// Shared idempotency store
	Redis RedisConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies lists proxy IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type NetworksConfig struct {
	Supported []string
	// TokensDir holds one tokens.<network>.json catalog per network.
	TokensDir string
}

type IntentConfig struct {
	MaxTextLen            int
	DefaultExpiryMinutes  int
	DefaultMaxSlippageBps int
	ParserTimeout         time.Duration

	IdempotencyTTL        time.Duration
	IdempotencyBackend    string
	IdempotencyMaxEntries int
	CoalesceInflight      bool

	RateLimitPerWindow int
	RateLimitWindow    time.Duration
	RateLimitMaxKeys   int
}

// LLMConfig holds the single chat-completions provider. An empty APIKey or
// Model leaves the parser unconfigured; requests then fail as unavailable.
type LLMConfig struct {
	Provider          string
	APIKey            string
	BaseURL           string
	Model             string
	RequestsPerSecond float64
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitProxies(viper.GetStringSlice("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Networks
	cfg.Networks.Supported = splitList(viper.GetStringSlice("networks.supported"))
	cfg.Networks.TokensDir = viper.GetString("networks.tokens_dir")

	// Intent
	cfg.Intent.MaxTextLen = viper.GetInt("intent.max_text_len")
	cfg.Intent.DefaultExpiryMinutes = viper.GetInt("intent.default_expiry_minutes")
	cfg.Intent.DefaultMaxSlippageBps = viper.GetInt("intent.default_max_slippage_bps")
	cfg.Intent.ParserTimeout = viper.GetDuration("intent.parser_timeout")
	cfg.Intent.IdempotencyTTL = viper.GetDuration("intent.idempotency_ttl")
	cfg.Intent.IdempotencyBackend = strings.ToLower(viper.GetString("intent.idempotency_backend"))
	cfg.Intent.IdempotencyMaxEntries = viper.GetInt("intent.idempotency_max_entries")
	cfg.Intent.CoalesceInflight = viper.GetBool("intent.coalesce_inflight")
	cfg.Intent.RateLimitPerWindow = viper.GetInt("intent.rate_limit_per_window")
	cfg.Intent.RateLimitWindow = viper.GetDuration("intent.rate_limit_window")
	cfg.Intent.RateLimitMaxKeys = viper.GetInt("intent.rate_limit_max_keys")

	// LLM
	cfg.LLM.Provider = strings.ToLower(viper.GetString("llm.provider"))
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.RequestsPerSecond = viper.GetFloat64("llm.requests_per_second")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = apiKey
	}
	if model := viper.GetString("openai_model"); model != "" && cfg.LLM.Model == "" {
		cfg.LLM.Model = model
	}

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("networks.supported", []string{"mainnet", "testnet", "devnet", "localnet"})
	viper.SetDefault("networks.tokens_dir", "./config")

	viper.SetDefault("intent.max_text_len", 500)
	viper.SetDefault("intent.default_expiry_minutes", 15)
	viper.SetDefault("intent.default_max_slippage_bps", 100)
	viper.SetDefault("intent.parser_timeout", "10s")
	viper.SetDefault("intent.idempotency_ttl", "10m")
	viper.SetDefault("intent.idempotency_backend", IdempotencyBackendMemory)
	viper.SetDefault("intent.idempotency_max_entries", 10000)
	viper.SetDefault("intent.coalesce_inflight", false)
	viper.SetDefault("intent.rate_limit_per_window", 30)
	viper.SetDefault("intent.rate_limit_window", "1m")
	viper.SetDefault("intent.rate_limit_max_keys", 10000)

	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.requests_per_second", 0)

	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.key_prefix", "intent:idem:")
}

// Validate range-checks every value the core depends on.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment.Name != "" && !model.Environment(c.Environment.Name).Valid() {
		errs = append(errs, fmt.Errorf("environment.name: unknown environment %q", c.Environment.Name))
	}
	if c.HTTPServer.Port < 1 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port: must be in 1..65535, got %d", c.HTTPServer.Port))
	}

	for _, p := range c.HTTPServer.TrustedProxies {
		if !validProxy(p) {
			errs = append(errs, fmt.Errorf("http_server.trusted_proxies: %q is not an IP or CIDR", p))
		}
	}

	if len(c.Networks.Supported) == 0 {
		errs = append(errs, errors.New("networks.supported: at least one network is required"))
	}
	for _, n := range c.Networks.Supported {
		if !slices.Contains(model.KnownNetworks, n) {
			errs = append(errs, fmt.Errorf("networks.supported: unknown network %q", n))
		}
	}
	if c.Networks.TokensDir == "" {
		errs = append(errs, errors.New("networks.tokens_dir: required"))
	}

	in := c.Intent
	if in.MaxTextLen <= 0 {
		errs = append(errs, fmt.Errorf("intent.max_text_len: must be positive, got %d", in.MaxTextLen))
	}
	if in.DefaultExpiryMinutes < 1 || in.DefaultExpiryMinutes > 1440 {
		errs = append(errs, fmt.Errorf("intent.default_expiry_minutes: must be in 1..1440, got %d", in.DefaultExpiryMinutes))
	}
	if in.DefaultMaxSlippageBps < 0 || in.DefaultMaxSlippageBps > 5000 {
		errs = append(errs, fmt.Errorf("intent.default_max_slippage_bps: must be in 0..5000, got %d", in.DefaultMaxSlippageBps))
	}
	if in.ParserTimeout <= 0 {
		errs = append(errs, errors.New("intent.parser_timeout: must be positive"))
	}
	if in.IdempotencyTTL <= 0 {
		errs = append(errs, errors.New("intent.idempotency_ttl: must be positive"))
	}
	switch in.IdempotencyBackend {
	case IdempotencyBackendMemory:
		if in.IdempotencyMaxEntries <= 0 {
			errs = append(errs, errors.New("intent.idempotency_max_entries: must be positive"))
		}
	case IdempotencyBackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr: required when intent.idempotency_backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("intent.idempotency_backend: unknown backend %q", in.IdempotencyBackend))
	}
	if in.RateLimitPerWindow <= 0 {
		errs = append(errs, errors.New("intent.rate_limit_per_window: must be positive"))
	}
	if in.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("intent.rate_limit_window: must be positive"))
	}
	if in.RateLimitMaxKeys <= 0 {
		errs = append(errs, errors.New("intent.rate_limit_max_keys: must be positive"))
	}

	if c.LLM.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("llm.requests_per_second: must not be negative"))
	}

	return errors.Join(errs...)
}

// splitProxies accepts both YAML lists and comma-separated env values.
func splitProxies(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validProxy(p string) bool {
	if _, err := netip.ParsePrefix(p); err == nil {
		return true
	}
	_, err := netip.ParseAddr(p)
	return err == nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}
