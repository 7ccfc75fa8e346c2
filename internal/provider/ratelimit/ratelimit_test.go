package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
	"quotegateway/internal/provider/ratelimit"
)

type stubMarket struct {
	provider.MarketData
	calls int
}

func (s *stubMarket) Name() string { return "stub" }

func (s *stubMarket) Trending(context.Context, string) ([]string, error) {
	s.calls++
	return []string{"NVDA"}, nil
}

type stubNews struct{ calls int }

func (s *stubNews) Name() string { return "news" }

func (s *stubNews) News(context.Context, provider.NewsQuery, int) ([]market.Record, error) {
	s.calls++
	return nil, nil
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	require.Nil(t, ratelimit.NewLimiter(0, 0, 0))

	l := ratelimit.NewLimiter(120, 0, time.Second)
	require.NotNil(t, l)
	require.InDelta(t, 2.0, float64(l.Limit()), 1e-9)
	require.Equal(t, 1, l.Burst())

	l = ratelimit.NewLimiter(0, 5, 500*time.Millisecond)
	require.InDelta(t, 2.0, float64(l.Limit()), 1e-9)
	require.Equal(t, 1, l.Burst())
}

func TestMarketDataWaitsForToken(t *testing.T) {
	t.Parallel()

	stub := &stubMarket{}
	m := &ratelimit.MarketData{P: stub, Limiter: ratelimit.NewLimiter(0, 0, time.Hour)}

	// the first call spends the only token
	_, err := m.Trending(t.Context(), "US")
	require.NoError(t, err)

	// the second would wait an hour, so it gives up with the context
	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Trending(ctx, "US")
	require.Error(t, err)
	require.Equal(t, 1, stub.calls)
	require.Equal(t, "stub", m.Name())
}

func TestMarketDataWithoutLimiter(t *testing.T) {
	t.Parallel()

	stub := &stubMarket{}
	m := &ratelimit.MarketData{P: stub}
	for range 3 {
		_, err := m.Trending(t.Context(), "US")
		require.NoError(t, err)
	}
	require.Equal(t, 3, stub.calls)
}

func TestNewsGate(t *testing.T) {
	t.Parallel()

	stub := &stubNews{}
	n := &ratelimit.News{S: stub, Limiter: ratelimit.NewLimiter(60, 2, 0)}
	for range 2 {
		_, err := n.News(t.Context(), provider.NewsQuery{Category: "general"}, 0)
		require.NoError(t, err)
	}
	require.Equal(t, 2, stub.calls)
	require.Equal(t, "news", n.Name())
}

type chainStub struct {
	provider.MarketData
	calls []string
}

func (s *chainStub) OptionChain(_ context.Context, symbol string) (market.Table, error) {
	s.calls = append(s.calls, "OptionChain "+symbol)
	return market.Table{}, nil
}

func (s *chainStub) Recommendations(_ context.Context, symbol string) ([]string, error) {
	s.calls = append(s.calls, "Recommendations "+symbol)
	return []string{"MSFT"}, nil
}

func TestMarketDataGatesOptionsAndRecommendations(t *testing.T) {
	t.Parallel()

	stub := &chainStub{}
	m := &ratelimit.MarketData{P: stub, Limiter: ratelimit.NewLimiter(0, 0, time.Hour)}

	_, err := m.OptionChain(t.Context(), "AAPL")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Recommendations(ctx, "AAPL")
	require.Error(t, err)
	require.Equal(t, []string{"OptionChain AAPL"}, stub.calls)
}
