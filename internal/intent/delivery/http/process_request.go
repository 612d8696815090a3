package http

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/token"
)

const maxBodyBytes = 64 << 10

// processParseRequest builds the use case input. The text field is read
// leniently: a missing or non-string value yields a nil Text so the use case
// reports it as invalid input together with every other text rule.
func (h *handler) processParseRequest(c *gin.Context) (intent.ParseFreeTextInput, error) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return intent.ParseFreeTextInput{}, intent.NewError(intent.KindInvalidInput, fmt.Errorf("read body: %w", err))
	}

	input := intent.ParseFreeTextInput{
		Network:        token.NormalizeNetwork(c.Query("network")),
		IdempotencyKey: strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey)),
		CallerID:       c.ClientIP(),
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return input, nil
	}

	var req parseReq
	if err := json.Unmarshal(raw, &req); err != nil {
		return intent.ParseFreeTextInput{}, intent.NewError(intent.KindInvalidInput, fmt.Errorf("decode body: %w", err))
	}
	input.Text = req.text()

	return input, nil
}
