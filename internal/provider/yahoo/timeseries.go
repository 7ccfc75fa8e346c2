package yahoo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// TimeseriesPoint is one reported value of a fundamentals line item.
type TimeseriesPoint struct {
	AsOfDate     string
	PeriodType   string
	CurrencyCode string
	Value        *float64
}

// Timeseries is the history of a single line item, e.g. annualTotalRevenue.
type Timeseries struct {
	Type   string
	Points []TimeseriesPoint
}

type timeseriesResponse struct {
	Timeseries struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *apiError                    `json:"error"`
	} `json:"timeseries"`
}

type timeseriesMeta struct {
	Type []string `json:"type"`
}

type rawPoint struct {
	AsOfDate      string `json:"asOfDate"`
	PeriodType    string `json:"periodType"`
	CurrencyCode  string `json:"currencyCode"`
	ReportedValue *struct {
		Raw *float64 `json:"raw"`
	} `json:"reportedValue"`
}

// GetTimeseries fetches fundamentals line items for symbol between period1
// and period2. Each result names its line item in meta.type and carries the
// points under a key of the same name.
func (c *Client) GetTimeseries(ctx context.Context, symbol string, types []string, period1, period2 time.Time) ([]Timeseries, error) {
	var payload timeseriesResponse
	params := url.Values{
		"symbol":  []string{symbol},
		"type":    []string{strings.Join(types, ",")},
		"period1": []string{strconv.FormatInt(period1.Unix(), 10)},
		"period2": []string{strconv.FormatInt(period2.Unix(), 10)},
	}
	path := "/ws/fundamentals-timeseries/v1/finance/timeseries/" + url.PathEscape(symbol)
	if err := c.get(ctx, path, params, &payload); err != nil {
		return nil, err
	}
	if err := payload.Timeseries.Error.err(); err != nil {
		return nil, err
	}

	out := make([]Timeseries, 0, len(payload.Timeseries.Result))
	for _, result := range payload.Timeseries.Result {
		var meta timeseriesMeta
		if err := sonic.Unmarshal(result["meta"], &meta); err != nil || len(meta.Type) == 0 {
			continue
		}
		series := Timeseries{Type: meta.Type[0]}

		var points []*rawPoint
		if raw, ok := result[series.Type]; ok {
			if err := sonic.Unmarshal(raw, &points); err != nil {
				zap.L().Warn("skipping malformed timeseries item",
					zap.String("symbol", symbol),
					zap.String("type", series.Type),
					zap.Error(err))
				points = nil
			}
		}
		for _, p := range points {
			if p == nil || p.AsOfDate == "" {
				continue
			}
			point := TimeseriesPoint{
				AsOfDate:     p.AsOfDate,
				PeriodType:   p.PeriodType,
				CurrencyCode: p.CurrencyCode,
			}
			if p.ReportedValue != nil {
				point.Value = p.ReportedValue.Raw
			}
			series.Points = append(series.Points, point)
		}
		out = append(out, series)
	}
	return out, nil
}
