package finnhub

import (
	"context"
	"fmt"
	"time"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
)

// DefaultCategory is the market news feed used when no symbol or category
// is given.
const DefaultCategory = "general"

// companyNewsWindow is how far back company news is requested.
const companyNewsWindow = 7 * 24 * time.Hour

// Source exposes a Client as a provider.NewsSource.
type Source struct {
	client *Client
	now    func() time.Time
}

// NewSource wraps client.
func NewSource(client *Client) *Source {
	return &Source{client: client, now: time.Now}
}

func (s *Source) Name() string { return "Finnhub" }

// News returns raw articles for the query, at most limit when limit > 0.
func (s *Source) News(ctx context.Context, query provider.NewsQuery, limit int) ([]market.Record, error) {
	var (
		articles []map[string]any
		err      error
	)
	if query.Symbol != "" {
		to := s.now().UTC()
		articles, err = s.client.CompanyNews(ctx, query.Symbol, to.Add(-companyNewsWindow), to)
	} else {
		category := query.Category
		if category == "" {
			category = DefaultCategory
		}
		articles, err = s.client.MarketNews(ctx, category)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", market.ErrUpstreamUnavailable, err)
	}

	out := make([]market.Record, 0, len(articles))
	for _, a := range articles {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, market.Record(a))
	}
	return out, nil
}
