package http

import (
	"bytes"
	"encoding/json"

	"intent-coordinator/internal/intent"
)

type parseReq struct {
	Text json.RawMessage `json:"text" swaggertype:"string" example:"swap 10 SUI to USDC"`
}

// text returns the text when the field holds a JSON string.
func (r parseReq) text() *string {
	raw := bytes.TrimSpace(r.Text)
	if len(raw) == 0 || raw[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

type parsedResp struct {
	SellToken    string `json:"sellToken" example:"0x2::sui::SUI"`
	BuyToken     string `json:"buyToken"`
	SellAmount   string `json:"sellAmount" example:"10"`
	MinBuyAmount string `json:"minBuyAmount" example:"29.7"`
	ExpiresAtMs  int64  `json:"expiresAtMs"`
}

type parseResp struct {
	RawText string     `json:"rawText"`
	Parsed  parsedResp `json:"parsed"`
}

func newParseResp(r intent.ParsedIntentResponse) parseResp {
	return parseResp{
		RawText: r.RawText,
		Parsed: parsedResp{
			SellToken:    r.Parsed.SellToken,
			BuyToken:     r.Parsed.BuyToken,
			SellAmount:   r.Parsed.SellAmount,
			MinBuyAmount: r.Parsed.MinBuyAmount,
			ExpiresAtMs:  r.Parsed.ExpiresAtMs,
		},
	}
}
