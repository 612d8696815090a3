package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"intent-coordinator/internal/token"
	pkgErrors "intent-coordinator/pkg/errors"
	"intent-coordinator/pkg/response"
)

var exemptPaths = []string{"/health", "/ready", "/live", "/metrics"}

// Network rejects requests whose network query parameter is not one of the
// configured networks. System routes and preflight requests pass through.
func (m Middleware) Network() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || isExempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		network := token.NormalizeNetwork(c.Query("network"))
		if !slices.Contains(m.networks, network) {
			m.l.Debugf(c.Request.Context(), "middleware.Network: rejected network=%q", c.Query("network"))
			response.Abort(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_NETWORK", "Invalid network parameter.").
				WithDetails(map[string]any{"expected": m.networks}))
			return
		}

		c.Next()
	}
}

func isExempt(path string) bool {
	return slices.Contains(exemptPaths, path) || strings.HasPrefix(path, "/swagger/")
}
