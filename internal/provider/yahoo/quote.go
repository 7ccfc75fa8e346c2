package yahoo

import (
	"context"
	"net/url"
	"strings"
)

type quoteResponse struct {
	QuoteResponse struct {
		Result []map[string]any `json:"result"`
		Error  *apiError        `json:"error"`
	} `json:"quoteResponse"`
}

// GetQuotes fetches quote records for all symbols in one request. Symbols
// Yahoo does not know are simply absent from the result.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]map[string]any, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	var payload quoteResponse
	params := url.Values{"symbols": []string{strings.Join(symbols, ",")}}
	if err := c.get(ctx, "/v7/finance/quote", params, &payload); err != nil {
		return nil, err
	}
	if err := payload.QuoteResponse.Error.err(); err != nil {
		return nil, err
	}
	return payload.QuoteResponse.Result, nil
}
