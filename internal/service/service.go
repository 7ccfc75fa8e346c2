// Package service runs the gateway's operations: it resolves input, calls
// the market-data and news collaborators and feeds their output through the
// core filters in package market.
package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"quotegateway/internal/market"
	"quotegateway/internal/metrics"
	"quotegateway/internal/provider"
)

// Service is built once at startup and shared by every request.
type Service struct {
	market provider.MarketData
	news   provider.NewsSource
}

// New returns a Service over md and news. news may be nil when no news
// provider is configured.
func New(md provider.MarketData, news provider.NewsSource) *Service {
	return &Service{market: md, news: news}
}

var errorKinds = []error{
	market.ErrInvalidInput,
	market.ErrMissingEntity,
	market.ErrIneligible,
	market.ErrEmptyResult,
	market.ErrUpstreamUnavailable,
}

// upstream classifies a collaborator failure. Errors that already carry a
// kind keep it; anything else, timeouts included, is UpstreamUnavailable.
func upstream(op string, err error) error {
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	zap.L().Warn("upstream call failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", market.ErrUpstreamUnavailable, op, err)
}

// singleSymbol resolves input that must name exactly one symbol.
func singleSymbol(input string) (market.Symbol, error) {
	batch, err := market.ResolveSymbols(input)
	if err != nil {
		return "", err
	}
	if len(batch) != 1 {
		return "", fmt.Errorf("%w: expected a single ticker, got %d", market.ErrInvalidInput, len(batch))
	}
	return batch[0], nil
}

// dropped records how many upstream values the projector filtered out.
func dropped(flow string, in, out int) {
	if n := in - out; n > 0 {
		metrics.RecordDropped(flow, n)
		zap.L().Debug("dropped ineligible values", zap.String("flow", flow), zap.Int("count", n))
	}
}
