package yahooadapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quotegateway/internal/market"
	"quotegateway/internal/provider/yahoo"
)

// Config tunes how the adapter talks to Yahoo.
type Config struct {
	Name string // display name, default: Yahoo
	// MaxSymbolsPerRequest splits large symbol lists into several quote
	// requests. 0 or negative means the default of 50.
	MaxSymbolsPerRequest int
	// MaxConcurrency limits concurrent quote requests when splitting.
	// Defaults to 4 when <= 0.
	MaxConcurrency int
	// TrendingCount is how many trending symbols are requested, default 20.
	TrendingCount int
	// SearchCount is how many search hits are requested, default 10.
	SearchCount int
}

// Adapter exposes a yahoo.Client as a provider.MarketData.
type Adapter struct {
	cfg    Config
	client *yahoo.Client
	now    func() time.Time
}

// New returns an adapter over client with cfg defaults filled in.
func New(cfg Config, client *yahoo.Client) *Adapter {
	if cfg.Name == "" {
		cfg.Name = "Yahoo"
	}
	if cfg.MaxSymbolsPerRequest <= 0 {
		cfg.MaxSymbolsPerRequest = 50
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.TrendingCount <= 0 {
		cfg.TrendingCount = 20
	}
	if cfg.SearchCount <= 0 {
		cfg.SearchCount = 10
	}
	return &Adapter{cfg: cfg, client: client, now: time.Now}
}

func (a *Adapter) Name() string { return a.cfg.Name }

// notFound is the sentinel Yahoo-style message for a symbol with no data.
func notFound(symbol string) market.Value {
	return market.ErrorValue("Quote not found for ticker symbol: " + symbol)
}

// Quotes fetches symbols in chunks of MaxSymbolsPerRequest. Every requested
// symbol gets an entry: its record, or a sentinel when Yahoo returned nothing
// or its chunk failed. The call only fails when every chunk failed.
func (a *Adapter) Quotes(ctx context.Context, symbols []string) (map[string]market.Value, error) {
	out := make(map[string]market.Value, len(symbols))
	if len(symbols) == 0 {
		return out, nil
	}

	chunks := chunkStrings(symbols, a.cfg.MaxSymbolsPerRequest)
	found := make(map[string]market.Record, len(symbols))
	failed := make(map[string]string)
	var (
		mu       sync.Mutex
		firstErr error
		failures int
	)

	var g errgroup.Group
	g.SetLimit(a.cfg.MaxConcurrency)
	for _, chunk := range chunks {
		g.Go(func() error {
			records, err := a.client.GetQuotes(ctx, chunk)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				zap.L().Warn("yahoo quote chunk failed",
					zap.Strings("symbols", chunk),
					zap.Error(err))
				failures++
				if firstErr == nil {
					firstErr = err
				}
				for _, s := range chunk {
					failed[s] = err.Error()
				}
				return nil
			}
			for _, r := range records {
				rec := market.Record(r)
				if s := strings.ToUpper(rec.String("symbol")); s != "" {
					found[s] = rec
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if failures == len(chunks) {
		return nil, classify(firstErr)
	}

	for _, s := range symbols {
		switch rec, ok := found[strings.ToUpper(s)]; {
		case ok:
			out[s] = market.RecordValue(rec)
		case failed[s] != "":
			out[s] = market.ErrorValue(failed[s])
		default:
			out[s] = notFound(s)
		}
	}
	return out, nil
}

// Modules fetches quoteSummary modules for symbol. {raw, fmt} wrappers are
// replaced by their raw value. An unknown symbol yields one sentinel per
// requested module.
func (a *Adapter) Modules(ctx context.Context, symbol string, modules []string) (map[string]market.Value, error) {
	res, err := a.client.GetQuoteSummary(ctx, symbol, modules)
	if errors.Is(err, yahoo.ErrNotFound) {
		out := make(map[string]market.Value, len(modules))
		for _, m := range modules {
			out[m] = notFound(symbol)
		}
		return out, nil
	}
	if err != nil {
		return nil, classify(err)
	}

	out := make(map[string]market.Value, len(res))
	for name, raw := range res {
		m, ok := unwrapRaw(raw).(map[string]any)
		if !ok {
			continue
		}
		out[name] = market.RecordValue(market.Record(m))
	}
	return out, nil
}

func (a *Adapter) Trending(ctx context.Context, region string) ([]string, error) {
	symbols, err := a.client.GetTrending(ctx, region, a.cfg.TrendingCount)
	if err != nil {
		return nil, classify(err)
	}
	return symbols, nil
}

func (a *Adapter) Screener(ctx context.Context, screener string, count int) ([]market.Value, error) {
	quotes, err := a.client.GetScreener(ctx, screener, count)
	if err != nil {
		return nil, classify(err)
	}
	return toValues(quotes), nil
}

func (a *Adapter) Search(ctx context.Context, query string) ([]market.Value, error) {
	quotes, err := a.client.Search(ctx, query, a.cfg.SearchCount)
	if err != nil {
		return nil, classify(err)
	}
	return toValues(quotes), nil
}

func (a *Adapter) MarketSummary(ctx context.Context, region string) ([]market.Record, error) {
	indices, err := a.client.GetMarketSummary(ctx, region)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]market.Record, 0, len(indices))
	for _, idx := range indices {
		out = append(out, market.Record(idx))
	}
	return out, nil
}

func toValues(quotes []map[string]any) []market.Value {
	out := make([]market.Value, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, market.RecordValue(market.Record(q)))
	}
	return out
}

// classify maps client failures onto the gateway's error kinds.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, yahoo.ErrNotFound):
		return fmt.Errorf("%w: %w", market.ErrMissingEntity, err)
	case errors.Is(err, yahoo.ErrBadRequest):
		return fmt.Errorf("%w: %w", market.ErrInvalidInput, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", market.ErrUpstreamUnavailable, err)
	}
}

// unwrapRaw replaces every {"raw": x, ...} object in v with x.
func unwrapRaw(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if raw, ok := t["raw"]; ok {
			return raw
		}
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = unwrapRaw(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = unwrapRaw(inner)
		}
		return out
	}
	return v
}

func chunkStrings(in []string, size int) [][]string {
	if size <= 0 || len(in) <= size {
		return [][]string{in}
	}
	out := make([][]string, 0, (len(in)+size-1)/size)
	for i := 0; i < len(in); i += size {
		j := min(i+size, len(in))
		out = append(out, in[i:j])
	}
	return out
}
