package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type financeResponse struct {
	Finance struct {
		Result []struct {
			Quotes []map[string]any `json:"quotes"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"finance"`
}

// GetTrending returns the trending ticker symbols for a region such as "US".
func (c *Client) GetTrending(ctx context.Context, region string, count int) ([]string, error) {
	var payload financeResponse
	params := url.Values{"count": []string{strconv.Itoa(count)}}
	if err := c.get(ctx, "/v1/finance/trending/"+url.PathEscape(region), params, &payload); err != nil {
		return nil, err
	}
	if err := payload.Finance.Error.err(); err != nil {
		return nil, err
	}

	var symbols []string
	for _, result := range payload.Finance.Result {
		for _, q := range result.Quotes {
			if s, ok := q["symbol"].(string); ok && s != "" {
				symbols = append(symbols, s)
			}
		}
	}
	return symbols, nil
}

// GetScreener returns the quotes of a predefined screener, e.g. "day_gainers".
func (c *Client) GetScreener(ctx context.Context, id string, count int) ([]map[string]any, error) {
	var payload financeResponse
	params := url.Values{
		"scrIds": []string{id},
		"count":  []string{strconv.Itoa(count)},
	}
	if err := c.get(ctx, "/v1/finance/screener/predefined/saved", params, &payload); err != nil {
		return nil, err
	}
	if err := payload.Finance.Error.err(); err != nil {
		return nil, err
	}
	if len(payload.Finance.Result) == 0 {
		return nil, fmt.Errorf("screener %s: %w", id, ErrNotFound)
	}
	return payload.Finance.Result[0].Quotes, nil
}

type searchResponse struct {
	Quotes []map[string]any `json:"quotes"`
}

// Search returns instruments matching a free text query.
func (c *Client) Search(ctx context.Context, query string, count int) ([]map[string]any, error) {
	var payload searchResponse
	params := url.Values{
		"q":           []string{query},
		"quotesCount": []string{strconv.Itoa(count)},
		"newsCount":   []string{"0"},
	}
	if err := c.get(ctx, "/v1/finance/search", params, &payload); err != nil {
		return nil, err
	}
	return payload.Quotes, nil
}

type marketSummaryResponse struct {
	MarketSummaryResponse struct {
		Result []map[string]any `json:"result"`
		Error  *apiError        `json:"error"`
	} `json:"marketSummaryResponse"`
}

// GetMarketSummary returns the headline indices of a region.
func (c *Client) GetMarketSummary(ctx context.Context, region string) ([]map[string]any, error) {
	var payload marketSummaryResponse
	params := url.Values{"region": []string{region}}
	if err := c.get(ctx, "/v6/finance/quote/marketSummary", params, &payload); err != nil {
		return nil, err
	}
	if err := payload.MarketSummaryResponse.Error.err(); err != nil {
		return nil, err
	}
	return payload.MarketSummaryResponse.Result, nil
}

type recommendationsResponse struct {
	Finance struct {
		Result []struct {
			Symbol             string `json:"symbol"`
			RecommendedSymbols []struct {
				Symbol string  `json:"symbol"`
				Score  float64 `json:"score"`
			} `json:"recommendedSymbols"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"finance"`
}

// GetRecommendations returns the symbols Yahoo relates to symbol, best
// score first.
func (c *Client) GetRecommendations(ctx context.Context, symbol string) ([]string, error) {
	var payload recommendationsResponse
	if err := c.get(ctx, "/v6/finance/recommendationsbysymbol/"+url.PathEscape(symbol), nil, &payload); err != nil {
		return nil, err
	}
	if err := payload.Finance.Error.err(); err != nil {
		return nil, err
	}
	if len(payload.Finance.Result) == 0 {
		return nil, fmt.Errorf("recommendations %s: %w", symbol, ErrNotFound)
	}

	recommended := payload.Finance.Result[0].RecommendedSymbols
	symbols := make([]string, 0, len(recommended))
	for _, r := range recommended {
		if r.Symbol != "" {
			symbols = append(symbols, r.Symbol)
		}
	}
	return symbols, nil
}
