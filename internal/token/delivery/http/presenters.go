package http

import "intent-coordinator/internal/token"

type tokenResp struct {
	ID                 string `json:"id"`
	Symbol             string `json:"symbol"`
	Decimals           int    `json:"decimals"`
	IndicativePriceUSD string `json:"indicativePriceUsd,omitempty"`
}

type listResp struct {
	Tokens []tokenResp `json:"tokens"`
}

func newListResp(tokens []token.Token) listResp {
	out := listResp{Tokens: make([]tokenResp, 0, len(tokens))}
	for _, t := range tokens {
		out.Tokens = append(out.Tokens, tokenResp{
			ID:                 t.ID,
			Symbol:             t.Symbol,
			Decimals:           t.Decimals,
			IndicativePriceUSD: t.IndicativePriceUSD,
		})
	}
	return out
}
