package token_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-coordinator/internal/token"
	"intent-coordinator/pkg/log"
)

type mockLoader struct {
	tokens   []token.Token
	err      error
	calls    atomic.Int32
	networks sync.Map
}

func (m *mockLoader) LoadTokens(ctx context.Context, network string) ([]token.Token, error) {
	m.calls.Add(1)
	m.networks.Store(network, true)
	if m.err != nil {
		return nil, m.err
	}
	return m.tokens, nil
}

var catalog = []token.Token{
	{ID: "0x2::sui::SUI", Symbol: "SUI", Decimals: 9, IndicativePriceUSD: "3.00"},
	{ID: "0xUSDC", Symbol: "USDC", Decimals: 6, IndicativePriceUSD: "1.00"},
}

func TestGetTokensLoadsOncePerNetwork(t *testing.T) {
	loader := &mockLoader{tokens: catalog}
	reg := token.NewCachedRegistry(loader, log.NewNop())

	for _, n := range []string{"devnet", " DevNet ", "DEVNET"} {
		got, err := reg.GetTokens(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, catalog, got)
	}
	assert.Equal(t, int32(1), loader.calls.Load())
	_, ok := loader.networks.Load("devnet")
	assert.True(t, ok)

	_, err := reg.GetTokens(context.Background(), "testnet")
	require.NoError(t, err)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestGetTokensConcurrentFirstLoad(t *testing.T) {
	loader := &mockLoader{tokens: catalog}
	reg := token.NewCachedRegistry(loader, log.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.GetTokens(context.Background(), "devnet")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, loader.calls.Load(), int32(20))
	assert.GreaterOrEqual(t, loader.calls.Load(), int32(1))

	before := loader.calls.Load()
	_, _ = reg.GetTokens(context.Background(), "devnet")
	assert.Equal(t, before, loader.calls.Load())
}

func TestGetTokensReturnsCopy(t *testing.T) {
	reg := token.NewCachedRegistry(&mockLoader{tokens: catalog}, log.NewNop())

	got, err := reg.GetTokens(context.Background(), "devnet")
	require.NoError(t, err)
	got[0].Symbol = "HACKED"

	again, err := reg.GetTokens(context.Background(), "devnet")
	require.NoError(t, err)
	assert.Equal(t, "SUI", again[0].Symbol)
}

func TestGetTokensLoadFailure(t *testing.T) {
	loader := &mockLoader{err: errors.New("open tokens.devnet.json: no such file")}
	reg := token.NewCachedRegistry(loader, log.NewNop())

	_, err := reg.GetTokens(context.Background(), "devnet")
	assert.ErrorIs(t, err, token.ErrRegistryUnavailable)

	// Failures are not cached.
	loader.err = nil
	loader.tokens = catalog
	_, err = reg.GetTokens(context.Background(), "devnet")
	assert.NoError(t, err)
}

func TestGetTokensInvalidEntry(t *testing.T) {
	tests := map[string]token.Token{
		"empty id":          {Symbol: "SUI", Decimals: 9},
		"empty symbol":      {ID: "0x2::sui::SUI", Decimals: 9},
		"negative decimals": {ID: "0x2::sui::SUI", Symbol: "SUI", Decimals: -1},
	}
	for name, bad := range tests {
		t.Run(name, func(t *testing.T) {
			reg := token.NewCachedRegistry(&mockLoader{tokens: []token.Token{catalog[0], bad}}, log.NewNop())
			_, err := reg.GetTokens(context.Background(), "devnet")
			assert.ErrorIs(t, err, token.ErrRegistryUnavailable)
			assert.ErrorIs(t, err, token.ErrInvalidEntry)
		})
	}
}

func TestGetTokensKeepsLoaderCause(t *testing.T) {
	loader := &mockLoader{err: fmt.Errorf("%w: %q", token.ErrInvalidNetwork, "../etc")}
	reg := token.NewCachedRegistry(loader, log.NewNop())

	_, err := reg.GetTokens(context.Background(), "../etc")
	assert.ErrorIs(t, err, token.ErrRegistryUnavailable)
	assert.ErrorIs(t, err, token.ErrInvalidNetwork)
}

func TestPickBySymbol(t *testing.T) {
	got, ok := token.PickBySymbol(catalog, "usdc")
	require.True(t, ok)
	assert.Equal(t, "0xUSDC", got.ID)

	_, ok = token.PickBySymbol(catalog, "BTC")
	assert.False(t, ok)

	_, ok = token.PickBySymbol(catalog, "US")
	assert.False(t, ok)
}
