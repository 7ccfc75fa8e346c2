package provider

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"quotegateway/internal/market"
)

// MarketData is the upstream market-data collaborator. Implementations are
// built once at startup and shared by every request.
//
//go:generate mockgen -package=service_test -destination=../service/mock_market_data_test.go -source=provider.go
type MarketData interface {
	Name() string

	// Quotes returns one value per requested symbol: a record, or a sentinel
	// when the upstream had nothing for that symbol.
	Quotes(ctx context.Context, symbols []string) (map[string]market.Value, error)

	// Modules returns the named quote summary modules for one symbol, keyed
	// by module name. A sentinel is returned per module when the symbol is
	// unknown.
	Modules(ctx context.Context, symbol string, modules []string) (map[string]market.Value, error)

	// Statement returns a financial statement as a period-by-line-item table.
	// An unknown symbol fails with market.ErrMissingEntity; a known symbol
	// without data yields an empty table.
	Statement(ctx context.Context, symbol string, kind StatementKind, freq Frequency) (market.Table, error)

	// History returns price bars as a table keyed by date.
	History(ctx context.Context, symbol, period, interval string) (market.Table, error)

	// OptionChain returns every listed option contract of a symbol as a
	// table keyed by contract symbol. An unknown symbol fails with
	// market.ErrMissingEntity.
	OptionChain(ctx context.Context, symbol string) (market.Table, error)

	// Recommendations returns the symbols the upstream relates to symbol,
	// most related first.
	Recommendations(ctx context.Context, symbol string) ([]string, error)

	Trending(ctx context.Context, region string) ([]string, error)
	Screener(ctx context.Context, screener string, count int) ([]market.Value, error)
	Search(ctx context.Context, query string) ([]market.Value, error)
	MarketSummary(ctx context.Context, region string) ([]market.Record, error)
}

// NewsSource fetches news for a symbol or a category.
type NewsSource interface {
	Name() string
	News(ctx context.Context, query NewsQuery, limit int) ([]market.Record, error)
}

// NewsQuery selects company news when Symbol is set, otherwise the
// category feed.
type NewsQuery struct {
	Symbol   string
	Category string
}

// StatementKind names a financial statement.
type StatementKind string

const (
	BalanceSheet      StatementKind = "balance-sheet"
	CashFlow          StatementKind = "cash-flow"
	IncomeStatement   StatementKind = "income-statement"
	ValuationMeasures StatementKind = "valuation-measures"
)

// ParseStatementKind accepts the route-style names above.
func ParseStatementKind(s string) (StatementKind, error) {
	switch k := StatementKind(strings.ToLower(strings.TrimSpace(s))); k {
	case BalanceSheet, CashFlow, IncomeStatement, ValuationMeasures:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown statement kind %q", market.ErrInvalidInput, s)
}

// Frequency is the reporting period of a statement.
type Frequency string

const (
	Annual    Frequency = "annual"
	Quarterly Frequency = "quarterly"
)

// ParseFrequency accepts "a"/"annual" and "q"/"quarterly"; empty means annual.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "annual":
		return Annual, nil
	case "q", "quarterly":
		return Quarterly, nil
	}
	return "", fmt.Errorf("%w: unknown period %q (want a or q)", market.ErrInvalidInput, s)
}

// History defaults applied when the caller leaves period or interval empty.
const (
	DefaultHistoryPeriod   = "1mo"
	DefaultHistoryInterval = "1d"
)

var (
	historyPeriods = []string{"1d", "5d", "7d", "60d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

	historyIntervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}
)

// ParseHistoryRange applies defaults and checks period and interval against
// the values the chart endpoint accepts.
func ParseHistoryRange(period, interval string) (string, string, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	interval = strings.ToLower(strings.TrimSpace(interval))
	if period == "" {
		period = DefaultHistoryPeriod
	}
	if interval == "" {
		interval = DefaultHistoryInterval
	}
	if !slices.Contains(historyPeriods, period) {
		return "", "", fmt.Errorf("%w: period must be one of %s", market.ErrInvalidInput, strings.Join(historyPeriods, ", "))
	}
	if !slices.Contains(historyIntervals, interval) {
		return "", "", fmt.Errorf("%w: interval must be one of %s", market.ErrInvalidInput, strings.Join(historyIntervals, ", "))
	}
	return period, interval, nil
}
