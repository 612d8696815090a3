package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"intent-coordinator/pkg/response"
)

// ParseFreeText godoc
// @Summary     Parse a free-text swap intent
// @Description Turns a request such as "swap 10 SUI to USDC" into exact integer amounts.
// @Description Repeating a request with the same Idempotency-Key and text replays the first response.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       network         query  string   true  "Network name"
// @Param       Idempotency-Key header string   false "Idempotency key"
// @Param       request         body   parseReq true  "Free text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Invalid input"
// @Failure     409 {object} response.Resp "Idempotency key conflict"
// @Failure     422 {object} response.Resp "Unparseable intent"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     503 {object} response.Resp "Parser unavailable"
// @Router      /api/intent/free-text [POST]
func (h *handler) ParseFreeText(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processParseRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "intent.delivery.http.ParseFreeText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.ParseFreeText(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(HeaderRateLimitRemaining, strconv.Itoa(out.RateRemaining))
	if out.Replayed {
		c.Header(HeaderIdempotentReplay, "true")
	}
	response.OK(c, newParseResp(out.Response))
}
