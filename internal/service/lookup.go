package service

import (
	"context"
	"fmt"
	"strings"

	"quotegateway/internal/market"
)

// Screener count bounds.
const (
	DefaultScreenerCount = 25
	MaxScreenerCount     = 250
)

// Search returns the eligible instruments matching query.
func (s *Service) Search(ctx context.Context, query string) ([]market.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", market.ErrInvalidInput)
	}
	values, err := s.market.Search(ctx, query)
	if err != nil {
		return nil, upstream("search", err)
	}

	eligible := market.ProjectValues(values)
	dropped("search", len(values), len(eligible))
	out := make([]market.SearchResult, 0, len(eligible))
	for _, q := range eligible {
		out = append(out, market.NewSearchResult(q))
	}
	return out, nil
}

// Trending returns the eligible trending equities of a country, priced from
// one batched quote lookup.
func (s *Service) Trending(ctx context.Context, country string) ([]market.TrendingQuote, error) {
	region, err := Region(country)
	if err != nil {
		return nil, err
	}
	symbols, err := s.market.Trending(ctx, region)
	if err != nil {
		return nil, upstream("trending", err)
	}
	batch := market.CollectSymbols(symbols)
	if len(batch) == 0 {
		// nothing trending is not an error
		return []market.TrendingQuote{}, nil
	}

	values, err := s.market.Quotes(ctx, batch.Strings())
	if err != nil {
		return nil, upstream("trending quotes", err)
	}
	eligible := market.Project(batch, values)
	dropped("trending", len(batch), len(eligible))
	out := make([]market.TrendingQuote, 0, len(eligible))
	for _, q := range eligible {
		out = append(out, market.NewTrendingQuote(q))
	}
	return out, nil
}

// MarketSummary returns the headline indices of a country. Indices are not
// equities, so no eligibility filter applies.
func (s *Service) MarketSummary(ctx context.Context, country string) ([]market.MarketSummary, error) {
	region, err := Region(country)
	if err != nil {
		return nil, err
	}
	records, err := s.market.MarketSummary(ctx, region)
	if err != nil {
		return nil, upstream("market summary", err)
	}
	out := make([]market.MarketSummary, 0, len(records))
	for _, r := range records {
		out = append(out, market.NewMarketSummary(r))
	}
	return out, nil
}

// Screener returns the eligible quotes of a predefined screener such as
// "day_gainers". count <= 0 means DefaultScreenerCount.
func (s *Service) Screener(ctx context.Context, screener string, count int) ([]market.EligibleQuote, error) {
	screener = strings.TrimSpace(screener)
	if screener == "" {
		return nil, fmt.Errorf("%w: screener type is required", market.ErrInvalidInput)
	}
	if count <= 0 {
		count = DefaultScreenerCount
	}
	if count > MaxScreenerCount {
		return nil, fmt.Errorf("%w: count must be at most %d", market.ErrInvalidInput, MaxScreenerCount)
	}

	values, err := s.market.Screener(ctx, screener, count)
	if err != nil {
		return nil, upstream("screener", err)
	}
	eligible := market.ProjectValues(values)
	dropped("screener", len(values), len(eligible))
	return eligible, nil
}

// Recommendations returns the eligible equities Yahoo relates to ticker,
// most related first, priced from one batched quote lookup.
func (s *Service) Recommendations(ctx context.Context, ticker string) ([]market.EligibleQuote, error) {
	symbol, err := singleSymbol(ticker)
	if err != nil {
		return nil, err
	}
	related, err := s.market.Recommendations(ctx, symbol)
	if err != nil {
		return nil, upstream("recommendations", err)
	}
	batch := market.CollectSymbols(related)
	if len(batch) == 0 {
		return []market.EligibleQuote{}, nil
	}

	values, err := s.market.Quotes(ctx, batch.Strings())
	if err != nil {
		return nil, upstream("recommendation quotes", err)
	}
	eligible := market.Project(batch, values)
	dropped("recommendations", len(batch), len(eligible))
	return eligible, nil
}
