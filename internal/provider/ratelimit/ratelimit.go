package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
)

// NewLimiter builds the limiter for an upstream. A positive perMinute gives
// a token bucket of size burst; otherwise a positive minInterval spaces calls
// at least that far apart. It returns nil when neither is set.
func NewLimiter(perMinute, burst int, minInterval time.Duration) *rate.Limiter {
	switch {
	case perMinute > 0:
		if burst <= 0 {
			burst = 1
		}
		return rate.NewLimiter(rate.Limit(float64(perMinute)/60), burst)
	case minInterval > 0:
		return rate.NewLimiter(rate.Every(minInterval), 1)
	}
	return nil
}

// MarketData gates every upstream call of the wrapped provider. Callers
// wait for a token or return early if the context is canceled.
type MarketData struct {
	P       provider.MarketData
	Limiter *rate.Limiter
}

func (m *MarketData) wait(ctx context.Context) error {
	if m.Limiter == nil {
		return nil
	}
	return m.Limiter.Wait(ctx)
}

func (m *MarketData) Name() string { return m.P.Name() }

func (m *MarketData) Quotes(ctx context.Context, symbols []string) (map[string]market.Value, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.Quotes(ctx, symbols)
}

func (m *MarketData) Modules(ctx context.Context, symbol string, modules []string) (map[string]market.Value, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.Modules(ctx, symbol, modules)
}

func (m *MarketData) Statement(ctx context.Context, symbol string, kind provider.StatementKind, freq provider.Frequency) (market.Table, error) {
	if err := m.wait(ctx); err != nil {
		return market.Table{}, err
	}
	return m.P.Statement(ctx, symbol, kind, freq)
}

func (m *MarketData) History(ctx context.Context, symbol, period, interval string) (market.Table, error) {
	if err := m.wait(ctx); err != nil {
		return market.Table{}, err
	}
	return m.P.History(ctx, symbol, period, interval)
}

func (m *MarketData) OptionChain(ctx context.Context, symbol string) (market.Table, error) {
	if err := m.wait(ctx); err != nil {
		return market.Table{}, err
	}
	return m.P.OptionChain(ctx, symbol)
}

func (m *MarketData) Recommendations(ctx context.Context, symbol string) ([]string, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.Recommendations(ctx, symbol)
}

func (m *MarketData) Trending(ctx context.Context, region string) ([]string, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.Trending(ctx, region)
}

func (m *MarketData) Screener(ctx context.Context, screener string, count int) ([]market.Value, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.Screener(ctx, screener, count)
}

func (m *MarketData) Search(ctx context.Context, query string) ([]market.Value, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.Search(ctx, query)
}

func (m *MarketData) MarketSummary(ctx context.Context, region string) ([]market.Record, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.P.MarketSummary(ctx, region)
}

// News gates every call of the wrapped news source.
type News struct {
	S       provider.NewsSource
	Limiter *rate.Limiter
}

func (n *News) Name() string { return n.S.Name() }

func (n *News) News(ctx context.Context, query provider.NewsQuery, limit int) ([]market.Record, error) {
	if n.Limiter != nil {
		if err := n.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return n.S.News(ctx, query, limit)
}
