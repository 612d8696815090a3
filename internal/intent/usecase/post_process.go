package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"intent-coordinator/internal/intent"
	"intent-coordinator/internal/token"
	"intent-coordinator/pkg/decimal"
)

func unparseable(format string, args ...any) error {
	return intent.NewError(intent.KindUnparseableIntent, fmt.Errorf(format, args...))
}

// postProcess re-derives every money field from the model's hints. It is the
// only producer of ParsedIntentResponse.
func (uc *implUseCase) postProcess(ctx context.Context, network, rawText string, s intent.StructuredIntent, now time.Time) (intent.ParsedIntentResponse, error) {
	if s.MinBuyAmount != nil && s.MaxSlippageBps != nil {
		return intent.ParsedIntentResponse{}, unparseable("both min_buy_amount and max_slippage_bps are set")
	}

	sellSymbol := strings.ToUpper(strings.TrimSpace(s.SellSymbol))
	buySymbol := strings.ToUpper(strings.TrimSpace(s.BuySymbol))
	if !supportedSymbols[sellSymbol] || !supportedSymbols[buySymbol] {
		return intent.ParsedIntentResponse{}, unparseable("unsupported symbols %q/%q", sellSymbol, buySymbol)
	}
	if sellSymbol == buySymbol {
		return intent.ParsedIntentResponse{}, unparseable("sell and buy symbol are both %s", sellSymbol)
	}
	if !supportedPairs[[2]string{sellSymbol, buySymbol}] {
		return intent.ParsedIntentResponse{}, unparseable("unsupported pair %s->%s", sellSymbol, buySymbol)
	}

	tokens, err := uc.registry.GetTokens(ctx, network)
	if err != nil {
		return intent.ParsedIntentResponse{}, intent.NewError(intent.KindParserUnavailable, err)
	}
	sellToken, ok := token.PickBySymbol(tokens, sellSymbol)
	if !ok {
		return intent.ParsedIntentResponse{}, unparseable("token %s not in %s registry", sellSymbol, network)
	}
	buyToken, ok := token.PickBySymbol(tokens, buySymbol)
	if !ok {
		return intent.ParsedIntentResponse{}, unparseable("token %s not in %s registry", buySymbol, network)
	}

	sellAtomic, err := decimal.ParseToInteger(s.SellAmount, sellToken.Decimals)
	if err != nil {
		return intent.ParsedIntentResponse{}, unparseable("sell amount: %v", err)
	}
	if sellAtomic.Sign() <= 0 {
		return intent.ParsedIntentResponse{}, unparseable("sell amount must be positive")
	}

	expiresAtMs, err := uc.expiresAt(now, s.ExpiresInMinutes)
	if err != nil {
		return intent.ParsedIntentResponse{}, err
	}

	minBuy, err := uc.minBuyAmount(s, sellToken, buyToken, sellAtomic)
	if err != nil {
		return intent.ParsedIntentResponse{}, err
	}

	return intent.ParsedIntentResponse{
		RawText: rawText,
		Parsed: intent.ParsedIntent{
			SellToken:    sellToken.ID,
			BuyToken:     buyToken.ID,
			SellAmount:   decimal.FormatInteger(sellAtomic, sellToken.Decimals),
			MinBuyAmount: minBuy,
			ExpiresAtMs:  expiresAtMs,
		},
	}, nil
}

func (uc *implUseCase) expiresAt(now time.Time, expiresInMinutes *int) (int64, error) {
	minutes := uc.cfg.DefaultExpiryMinutes
	if expiresInMinutes != nil {
		minutes = *expiresInMinutes
	}
	if minutes < minExpiryMinutes || minutes > maxExpiryMinutes {
		return 0, unparseable("expiry %d minutes out of range", minutes)
	}
	return now.UnixMilli() + int64(minutes)*time.Minute.Milliseconds(), nil
}

// minBuyAmount returns the explicit minimum when the model gave one,
// otherwise derives it from indicative prices and slippage.
func (uc *implUseCase) minBuyAmount(s intent.StructuredIntent, sellToken, buyToken token.Token, sellAtomic *big.Int) (string, error) {
	if s.MinBuyAmount != nil {
		minAtomic, err := decimal.ParseToInteger(*s.MinBuyAmount, buyToken.Decimals)
		if err != nil {
			return "", unparseable("min buy amount: %v", err)
		}
		if minAtomic.Sign() <= 0 {
			return "", unparseable("min buy amount must be positive")
		}
		return decimal.FormatInteger(minAtomic, buyToken.Decimals), nil
	}

	slippageBps := uc.cfg.DefaultMaxSlippageBps
	if s.MaxSlippageBps != nil {
		slippageBps = *s.MaxSlippageBps
	}
	if slippageBps < 0 || slippageBps > maxSlippageBps {
		return "", unparseable("slippage %d bps out of range", slippageBps)
	}

	// Missing prices are a server-side data gap, not a user error.
	if !sellToken.HasPrice() || !buyToken.HasPrice() {
		return "", intent.NewError(intent.KindParserUnavailable, errors.New("indicative price missing"))
	}
	sellPrice, err := decimal.ParseUSDPrice(sellToken.IndicativePriceUSD)
	if err != nil {
		return "", intent.NewError(intent.KindParserUnavailable, fmt.Errorf("sell price: %w", err))
	}
	buyPrice, err := decimal.ParseUSDPrice(buyToken.IndicativePriceUSD)
	if err != nil {
		return "", intent.NewError(intent.KindParserUnavailable, fmt.Errorf("buy price: %w", err))
	}
	if sellPrice.Sign() <= 0 || buyPrice.Sign() <= 0 {
		return "", intent.NewError(intent.KindParserUnavailable, errors.New("indicative price is zero"))
	}

	expected := decimal.ExpectedBuy(sellAtomic,
		decimal.Leg{Decimals: sellToken.Decimals, PriceMicros: sellPrice},
		decimal.Leg{Decimals: buyToken.Decimals, PriceMicros: buyPrice},
	)
	minBuy := decimal.ApplySlippage(expected, slippageBps)
	if minBuy.Sign() <= 0 {
		return "", unparseable("derived minimum is not positive")
	}
	return decimal.FormatInteger(minBuy, buyToken.Decimals), nil
}
