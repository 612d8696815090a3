package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/token"
	"intent-coordinator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	networks    []string
	proxies     []string
	readyChecks []ReadyCheck

	// Domains
	registry token.Registry
	intentUC intent.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// Networks accepted in the network query parameter.
	Networks []string
	// TrustedProxies are the proxy IPs or CIDRs whose forwarding headers are
	// believed. Empty means the caller is the socket peer.
	TrustedProxies []string
	// ReadyChecks must all pass for /ready to report ready.
	ReadyChecks []ReadyCheck

	Registry token.Registry
	IntentUC intent.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		networks:    cfg.Networks,
		proxies:     cfg.TrustedProxies,
		readyChecks: cfg.ReadyChecks,
		registry:    cfg.Registry,
		intentUC:    cfg.IntentUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// Rate limiting keys on ClientIP, so forwarding headers are ignored
	// unless they come from a configured proxy.
	if err := srv.gin.SetTrustedProxies(srv.proxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if len(srv.networks) == 0 {
		return errors.New("at least one network is required")
	}
	if srv.registry == nil {
		return errors.New("token registry is required")
	}
	if srv.intentUC == nil {
		return errors.New("intent usecase is required")
	}
	return nil
}
