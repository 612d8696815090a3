package intent

import "time"

// Supported symbols. The service handles exactly one pair, in both directions.
const (
	SymbolSUI  = "SUI"
	SymbolUSDC = "USDC"
)

// StructuredIntent is the model's tool-call output. Every field is a hint:
// nothing here reaches the caller without being re-derived.
type StructuredIntent struct {
	SellSymbol       string  `json:"sell_symbol" validate:"oneof=SUI USDC"`
	BuySymbol        string  `json:"buy_symbol" validate:"oneof=SUI USDC"`
	SellAmount       string  `json:"sell_amount"`
	MinBuyAmount     *string `json:"min_buy_amount"`
	MaxSlippageBps   *int    `json:"max_slippage_bps" validate:"omitnil,min=0,max=5000"`
	ExpiresInMinutes *int    `json:"expires_in_minutes" validate:"omitnil,min=1,max=1440"`
}

// ParseFreeTextInput is one free-text parse request.
type ParseFreeTextInput struct {
	Network string
	// Text is nil when the request carried no string text.
	Text           *string
	IdempotencyKey string
	// CallerID identifies the caller for rate limiting, typically the client IP.
	CallerID string
}

// ParsedIntent holds the service-derived fields of a parsed intent.
type ParsedIntent struct {
	SellToken    string `json:"sellToken"`
	BuyToken     string `json:"buyToken"`
	SellAmount   string `json:"sellAmount"`
	MinBuyAmount string `json:"minBuyAmount"`
	ExpiresAtMs  int64  `json:"expiresAtMs"`
}

// ParsedIntentResponse is the only externally visible artifact of a parse.
type ParsedIntentResponse struct {
	RawText string       `json:"rawText"`
	Parsed  ParsedIntent `json:"parsed"`
}

// ParseFreeTextOutput wraps the response with request metadata.
type ParseFreeTextOutput struct {
	Response ParsedIntentResponse
	// Replayed is true when the response came from the idempotency cache.
	Replayed bool
	// RateRemaining is the number of requests left in the caller's window.
	RateRemaining int
}

// ParseOptions are the knobs of a single parser call.
type ParseOptions struct {
	Model   string
	Text    string
	Timeout time.Duration
}
