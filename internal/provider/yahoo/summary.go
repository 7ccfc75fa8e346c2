package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]any `json:"result"`
		Error  *apiError        `json:"error"`
	} `json:"quoteSummary"`
}

// GetQuoteSummary fetches the named quoteSummary modules for one symbol. The
// returned map is keyed by module name; modules Yahoo omits are absent.
func (c *Client) GetQuoteSummary(ctx context.Context, symbol string, modules []string) (map[string]any, error) {
	var payload quoteSummaryResponse
	params := url.Values{"modules": []string{strings.Join(modules, ",")}}
	if err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params, &payload); err != nil {
		return nil, err
	}
	if err := payload.QuoteSummary.Error.err(); err != nil {
		return nil, err
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quote summary for %s: %w", symbol, ErrNotFound)
	}
	return payload.QuoteSummary.Result[0], nil
}
