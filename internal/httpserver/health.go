package httpserver

import (
	"context"
	"net/http"
	"time"

	pkgErrors "intent-coordinator/pkg/errors"
	"intent-coordinator/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Intent coordinator is up"
	HealthVersion = "1.0.0"
	ServiceName   = "intent-coordinator"
)

const (
	NotReadyCode = "NOT_READY"
	checkOK      = "ok"
	checkFailed  = "failed"
	readyTimeout = 3 * time.Second
)

// ReadyCheck is one named readiness check.
type ReadyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs every ReadyCheck. Failures are logged; the response only
// names the failing checks.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "API is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := make(map[string]string, len(srv.readyChecks))
	ready := true
	for _, rc := range srv.readyChecks {
		if err := rc.Check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck %s: %v", rc.Name, err)
			checks[rc.Name] = checkFailed
			ready = false
			continue
		}
		checks[rc.Name] = checkOK
	}

	if !ready {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, NotReadyCode, "Service not ready.").
			WithDetails(map[string]any{"checks": checks}))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"checks":   checks,
		"networks": srv.networks,
		"version":  HealthVersion,
		"service":  ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
