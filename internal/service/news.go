package service

import (
	"context"
	"fmt"
	"strings"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
)

// News returns curated articles about ticker, or of category when ticker is
// empty. count <= 0 means market.DefaultNewsCount.
func (s *Service) News(ctx context.Context, ticker, category string, count int) ([]market.NewsArticle, error) {
	if s.news == nil {
		return nil, fmt.Errorf("%w: no news provider configured", market.ErrUpstreamUnavailable)
	}

	var query provider.NewsQuery
	if strings.TrimSpace(ticker) != "" {
		symbol, err := singleSymbol(ticker)
		if err != nil {
			return nil, err
		}
		query.Symbol = symbol
	} else {
		query.Category = strings.ToLower(strings.TrimSpace(category))
	}

	// the curator drops imageless articles, so fetch the full feed
	records, err := s.news.News(ctx, query, 0)
	if err != nil {
		return nil, upstream("news", err)
	}
	return market.CurateNews(records, count), nil
}
