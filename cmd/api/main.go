package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"intent-coordinator/config"
	_ "intent-coordinator/docs" // Swagger docs
	"intent-coordinator/internal/app"
	"intent-coordinator/internal/httpserver"
	"intent-coordinator/pkg/log"
)

// @title       Intent Coordinator API
// @description Parses free-text SUI/USDC swap requests into exact, deterministic trading intents.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 0. Env files; missing files are fine
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Intent Coordinator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Networks: %v (catalogs in %s)", cfg.Networks.Supported, cfg.Networks.TokensDir)

	// 3. Components
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize components: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close components: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Networks:       cfg.Networks.Supported,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		ReadyChecks:    a.ReadyChecks(),
		Registry:       a.Registry,
		IntentUC:       a.IntentUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
