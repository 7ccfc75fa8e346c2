package yahoo

import (
	"context"
	"fmt"
	"net/url"
)

// Chart is the OHLCV history of one symbol. Indicator slices are aligned with
// Timestamps; nil entries are gaps Yahoo reports as null.
type Chart struct {
	Symbol     string
	Currency   string
	Timezone   string
	Timestamps []int64
	Open       []*float64
	High       []*float64
	Low        []*float64
	Close      []*float64
	Volume     []*float64
	AdjClose   []*float64
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol           string `json:"symbol"`
				Currency         string `json:"currency"`
				ExchangeTimezone string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// GetChart fetches price history for symbol over rng sampled at interval.
func (c *Client) GetChart(ctx context.Context, symbol, rng, interval string) (*Chart, error) {
	var payload chartResponse
	params := url.Values{
		"range":    []string{rng},
		"interval": []string{interval},
		"events":   []string{"div,split"},
	}
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params, &payload); err != nil {
		return nil, err
	}
	if err := payload.Chart.Error.err(); err != nil {
		return nil, err
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart for %s: %w", symbol, ErrNotFound)
	}

	result := payload.Chart.Result[0]
	chart := &Chart{
		Symbol:     result.Meta.Symbol,
		Currency:   result.Meta.Currency,
		Timezone:   result.Meta.ExchangeTimezone,
		Timestamps: result.Timestamp,
	}
	if len(result.Indicators.Quote) > 0 {
		q := result.Indicators.Quote[0]
		chart.Open, chart.High, chart.Low, chart.Close, chart.Volume = q.Open, q.High, q.Low, q.Close, q.Volume
	}
	if len(result.Indicators.AdjClose) > 0 {
		chart.AdjClose = result.Indicators.AdjClose[0].AdjClose
	}
	return chart, nil
}
