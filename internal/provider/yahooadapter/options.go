package yahooadapter

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"quotegateway/internal/market"
	"quotegateway/internal/provider/yahoo"
)

const optionPeriodKey = "contractSymbol"

var optionColumns = []string{
	"optionType", "expiration", "strike", "currency", "lastPrice", "change",
	"percentChange", "volume", "openInterest", "bid", "ask", "contractSize",
	"lastTradeDate", "impliedVolatility", "inTheMoney",
}

// OptionChain walks every listed expiration of symbol. The first request
// returns the nearest expiration and the list of the others, which are then
// fetched concurrently. Rows come out by expiration, calls before puts.
func (a *Adapter) OptionChain(ctx context.Context, symbol string) (market.Table, error) {
	first, err := a.client.GetOptions(ctx, symbol, 0)
	if err != nil {
		return market.Table{}, classify(err)
	}

	byDate := make(map[int64]yahoo.OptionExpiry, len(first.ExpirationDates))
	for _, e := range first.Options {
		byDate[e.ExpirationDate] = e
	}

	pages := make([]*yahoo.OptionChain, len(first.ExpirationDates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.MaxConcurrency)
	for i, date := range first.ExpirationDates {
		if _, ok := byDate[date]; ok {
			continue
		}
		g.Go(func() error {
			page, err := a.client.GetOptions(gctx, symbol, date)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return market.Table{}, classify(err)
	}
	for _, page := range pages {
		if page == nil {
			continue
		}
		for _, e := range page.Options {
			byDate[e.ExpirationDate] = e
		}
	}

	dates := make([]int64, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	table := market.Table{PeriodKey: optionPeriodKey, Columns: optionColumns}
	for _, d := range dates {
		e := byDate[d]
		for _, c := range e.Calls {
			table.Rows = append(table.Rows, contractRow("call", c))
		}
		for _, p := range e.Puts {
			table.Rows = append(table.Rows, contractRow("put", p))
		}
	}
	return table, nil
}

func contractRow(kind string, c yahoo.OptionContract) market.Row {
	var lastTrade any
	if c.LastTradeDate > 0 {
		lastTrade = time.Unix(c.LastTradeDate, 0).UTC().Format(time.RFC3339)
	}
	return market.Row{
		Period: c.ContractSymbol,
		Cells: []any{
			kind,
			time.Unix(c.Expiration, 0).UTC().Format(time.DateOnly),
			deref(c.Strike),
			c.Currency,
			deref(c.LastPrice),
			deref(c.Change),
			deref(c.PercentChange),
			deref(c.Volume),
			deref(c.OpenInterest),
			deref(c.Bid),
			deref(c.Ask),
			c.ContractSize,
			lastTrade,
			deref(c.ImpliedVolatility),
			c.InTheMoney,
		},
	}
}

// deref turns a missing number into a nil cell.
func deref(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// Recommendations returns the symbols Yahoo relates to symbol.
func (a *Adapter) Recommendations(ctx context.Context, symbol string) ([]string, error) {
	symbols, err := a.client.GetRecommendations(ctx, symbol)
	if err != nil {
		return nil, classify(err)
	}
	return symbols, nil
}
