package decimal

import "math/big"

// Leg describes one side of a conversion: its atomic precision and its
// indicative USD price in micro-dollars.
type Leg struct {
	Decimals    int
	PriceMicros *big.Int
}

// ExpectedBuy converts sellAtomic into the buy token at indicative prices.
// Every division truncates toward zero:
//
//	usd         = sellAtomic * sellPrice / 10^sellDecimals
//	expectedBuy = usd * 10^buyDecimals / buyPrice
func ExpectedBuy(sellAtomic *big.Int, sell, buy Leg) *big.Int {
	usd := new(big.Int).Mul(sellAtomic, sell.PriceMicros)
	usd.Quo(usd, Pow10(sell.Decimals))

	out := new(big.Int).Mul(usd, Pow10(buy.Decimals))
	return out.Quo(out, buy.PriceMicros)
}

// ApplySlippage returns expected * (10000 - bps) / 10000, truncated.
func ApplySlippage(expected *big.Int, slippageBps int) *big.Int {
	out := new(big.Int).Mul(expected, big.NewInt(int64(BpsDenominator-slippageBps)))
	return out.Quo(out, big.NewInt(BpsDenominator))
}
