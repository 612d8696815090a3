package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "intent-coordinator/internal/intent/delivery/http"
	tokenHTTP "intent-coordinator/internal/token/delivery/http"
)

// setupTokenDomain registers GET /api/tokens.
func (srv HTTPServer) setupTokenDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := tokenHTTP.New(srv.l, srv.registry)
	tokenHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Token domain registered")
	return nil
}

// setupIntentDomain registers POST /api/intent/free-text.
func (srv HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := intentHTTP.New(srv.l, srv.intentUC)
	intentHTTP.RegisterRoutes(api.Group("/intent"), h)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
