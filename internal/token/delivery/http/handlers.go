package http

import (
	"github.com/gin-gonic/gin"

	"intent-coordinator/pkg/response"
)

// List godoc
// @Summary     List tokens
// @Description Returns the token registry of a network.
// @Tags        Tokens
// @Produce     json
// @Param       network query string true "Network name"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Invalid network"
// @Failure     500 {object} response.Resp "Token registry unavailable"
// @Router      /api/tokens [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tokens, err := h.registry.GetTokens(ctx, c.Query("network"))
	if err != nil {
		h.l.Errorf(ctx, "registry.GetTokens: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(tokens))
}
