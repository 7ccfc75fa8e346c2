package yahooadapter

import (
	"context"
	"strings"
	"time"
	_ "time/tzdata"

	"quotegateway/internal/market"
)

const historyPeriodKey = "date"

var historyColumns = []string{"open", "high", "low", "close", "volume", "adjclose"}

// History fetches price bars as a table keyed by date. Daily and longer
// intervals render the date as YYYY-MM-DD, intraday bars as RFC 3339 in the
// exchange timezone.
func (a *Adapter) History(ctx context.Context, symbol, period, interval string) (market.Table, error) {
	chart, err := a.client.GetChart(ctx, symbol, period, interval)
	if err != nil {
		return market.Table{}, classify(err)
	}

	loc := time.UTC
	if chart.Timezone != "" {
		if l, err := time.LoadLocation(chart.Timezone); err == nil {
			loc = l
		}
	}
	layout := time.DateOnly
	if intraday(interval) {
		layout = time.RFC3339
	}

	series := [][]*float64{chart.Open, chart.High, chart.Low, chart.Close, chart.Volume, chart.AdjClose}
	table := market.Table{PeriodKey: historyPeriodKey, Columns: historyColumns}
	for i, ts := range chart.Timestamps {
		cells := make([]any, len(series))
		empty := true
		for j, s := range series {
			if i < len(s) && s[i] != nil {
				cells[j] = *s[i]
				empty = false
			}
		}
		if empty {
			continue
		}
		table.Rows = append(table.Rows, market.Row{
			Period: time.Unix(ts, 0).In(loc).Format(layout),
			Cells:  cells,
		})
	}
	return table, nil
}

func intraday(interval string) bool {
	return strings.HasSuffix(interval, "m") && !strings.HasSuffix(interval, "mo") || strings.HasSuffix(interval, "h")
}
