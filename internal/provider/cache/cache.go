package cache

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"quotegateway/internal/market"
	"quotegateway/internal/metrics"
	"quotegateway/internal/provider"
)

// Provider caches quote records per symbol for a TTL. It requests only
// missing symbols from the wrapped provider and combines cached and fresh
// values. Sentinels are never cached. Every other MarketData call passes
// straight through.
type Provider struct {
	provider.MarketData
	Store Store
	TTL   time.Duration
	// FetchTimeout bounds a shared upstream fetch. It runs detached from
	// the caller that started it, so one canceled request does not fail
	// the others waiting on the same symbols.
	FetchTimeout time.Duration

	group singleflight.Group
}

// DefaultFetchTimeout applies when FetchTimeout is not set.
const DefaultFetchTimeout = 30 * time.Second

// New wraps p with a quote cache backed by store.
func New(p provider.MarketData, store Store, ttl time.Duration) *Provider {
	return &Provider{MarketData: p, Store: store, TTL: ttl, FetchTimeout: DefaultFetchTimeout}
}

// Quotes returns a value for every requested symbol, using the store when
// it holds a live record.
func (c *Provider) Quotes(ctx context.Context, symbols []string) (map[string]market.Value, error) {
	if c.Store == nil || c.TTL <= 0 {
		return c.MarketData.Quotes(ctx, symbols)
	}

	cached, err := c.Store.GetMany(ctx, symbols)
	if err != nil {
		zap.L().Warn("quote cache read failed", zap.Error(err))
		cached = nil
	}

	out := make(map[string]market.Value, len(symbols))
	missing := make([]string, 0, len(symbols))
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if rec, ok := cached[s]; ok {
			out[s] = market.RecordValue(rec)
			continue
		}
		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			missing = append(missing, s)
		}
	}
	metrics.RecordCacheLookups(len(symbols)-len(missing), len(missing))

	if len(missing) == 0 {
		return out, nil
	}

	// identical concurrent misses share one upstream call
	ch := c.group.DoChan(strings.Join(missing, ","), func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout())
		defer cancel()
		fresh, err := c.MarketData.Quotes(fctx, missing)
		if err != nil {
			return nil, err
		}
		c.store(fctx, fresh)
		return fresh, nil
	})
	var res any
	select {
	case r := <-ch:
		res, err = r.Val, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if err != nil {
		// cached data beats failing the whole request
		if len(out) == 0 {
			return nil, err
		}
		for _, s := range missing {
			out[s] = market.ErrorValue(err.Error())
		}
		return out, nil
	}

	fresh := res.(map[string]market.Value)
	for _, s := range missing {
		if v, ok := fresh[s]; ok {
			out[s] = v
		}
	}
	return out, nil
}

func (c *Provider) fetchTimeout() time.Duration {
	if c.FetchTimeout > 0 {
		return c.FetchTimeout
	}
	return DefaultFetchTimeout
}

func (c *Provider) store(ctx context.Context, fresh map[string]market.Value) {
	records := make(map[string]market.Record, len(fresh))
	for s, v := range fresh {
		if rec, ok := v.Record(); ok {
			records[s] = rec
		}
	}
	if err := c.Store.SetMany(ctx, records, c.TTL); err != nil {
		zap.L().Warn("quote cache write failed", zap.Error(err))
	}
}
