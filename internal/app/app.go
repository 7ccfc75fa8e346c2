// Package app assembles the gateway's provider stack from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quotegateway/internal/config"
	"quotegateway/internal/httpx"
	"quotegateway/internal/provider"
	"quotegateway/internal/provider/cache"
	"quotegateway/internal/provider/finnhub"
	"quotegateway/internal/provider/ratelimit"
	"quotegateway/internal/provider/yahoo"
	"quotegateway/internal/provider/yahooadapter"
	"quotegateway/internal/service"
)

const userAgent = "quote-gateway/1.0"

// App holds the wired service and the resources to release on shutdown.
type App struct {
	Service *service.Service
	// Upstreams are the breaker-guarded HTTP clients, one per provider.
	Upstreams []*httpx.Client

	closers []func() error
}

// New builds the provider chain described by cfg:
// yahoo client -> adapter -> rate limit -> quote cache, plus Finnhub news
// when an API key is configured.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}
	timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second

	market, err := a.marketData(ctx, cfg, timeout)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	news, err := a.newsSource(cfg, timeout)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Service = service.New(market, news)
	return a, nil
}

func (a *App) marketData(ctx context.Context, cfg config.Config, timeout time.Duration) (provider.MarketData, error) {
	hc := httpx.New(timeout, httpx.DefaultBreakerConfig("yahoo"))
	hc.UserAgent = userAgent
	a.Upstreams = append(a.Upstreams, hc)

	options := []yahoo.ClientOption{yahoo.WithHTTPClient(hc)}
	if cfg.Yahoo.BaseURL != "" {
		options = append(options, yahoo.WithBaseURL(cfg.Yahoo.BaseURL))
	}
	client := yahoo.NewClient(options...)

	var p provider.MarketData = yahooadapter.New(yahooadapter.Config{
		Name:                 "Yahoo",
		MaxSymbolsPerRequest: cfg.Yahoo.MaxSymbolsPerRequest,
		MaxConcurrency:       cfg.Yahoo.MaxConcurrency,
	}, client)

	interval := time.Duration(cfg.Yahoo.MinRequestIntervalSec) * time.Second
	if limiter := ratelimit.NewLimiter(cfg.Yahoo.MaxRequestsPerMinute, cfg.Yahoo.Burst, interval); limiter != nil {
		p = &ratelimit.MarketData{P: p, Limiter: limiter}
	}

	if cfg.Cache.TTLSeconds <= 0 {
		return p, nil
	}
	store, err := a.cacheStore(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	cached := cache.New(p, store, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	cached.FetchTimeout = timeout
	return cached, nil
}

func (a *App) cacheStore(ctx context.Context, cfg config.Cache) (cache.Store, error) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryStore(cfg.MaxItems), nil
	}
	store := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
	}
	a.closers = append(a.closers, store.Close)
	zap.L().Info("quote cache backed by redis", zap.String("address", cfg.RedisAddr))
	return store, nil
}

// newsSource returns nil without an API key; the news route then answers
// UpstreamUnavailable.
func (a *App) newsSource(cfg config.Config, timeout time.Duration) (provider.NewsSource, error) {
	if cfg.Finnhub.APIKey == "" {
		zap.L().Warn("finnhub api key not set; news disabled")
		return nil, nil
	}

	hc := httpx.New(timeout, httpx.DefaultBreakerConfig("finnhub"))
	hc.UserAgent = userAgent
	a.Upstreams = append(a.Upstreams, hc)

	options := []finnhub.ClientOption{finnhub.WithHTTPClient(hc)}
	if cfg.Finnhub.BaseURL != "" {
		options = append(options, finnhub.WithBaseURL(cfg.Finnhub.BaseURL))
	}
	client, err := finnhub.NewClient(cfg.Finnhub.APIKey, options...)
	if err != nil {
		return nil, err
	}

	var s provider.NewsSource = finnhub.NewSource(client)
	if limiter := ratelimit.NewLimiter(cfg.Finnhub.MaxRequestsPerMinute, cfg.Finnhub.Burst, 0); limiter != nil {
		s = &ratelimit.News{S: s, Limiter: limiter}
	}
	return s, nil
}

// Close releases every resource New opened.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
