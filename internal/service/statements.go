package service

import (
	"context"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
)

// Statement returns one financial statement of a symbol as per-period
// records, in the provider's period order. period is "a" or "q".
func (s *Service) Statement(ctx context.Context, ticker string, kind provider.StatementKind, period string) ([]market.PeriodRecord, error) {
	symbol, err := singleSymbol(ticker)
	if err != nil {
		return nil, err
	}
	freq, err := provider.ParseFrequency(period)
	if err != nil {
		return nil, err
	}
	table, err := s.market.Statement(ctx, symbol, kind, freq)
	if err != nil {
		return nil, upstream(string(kind), err)
	}
	return market.Reshape(table)
}

// History returns price bars of a symbol, one record per date.
func (s *Service) History(ctx context.Context, ticker, period, interval string) ([]market.PeriodRecord, error) {
	symbol, err := singleSymbol(ticker)
	if err != nil {
		return nil, err
	}
	period, interval, err = provider.ParseHistoryRange(period, interval)
	if err != nil {
		return nil, err
	}
	table, err := s.market.History(ctx, symbol, period, interval)
	if err != nil {
		return nil, upstream("history", err)
	}
	return market.Reshape(table)
}

// OptionChain returns every listed option contract of a symbol, one record
// per contract, ordered by expiration with calls before puts.
func (s *Service) OptionChain(ctx context.Context, ticker string) ([]market.PeriodRecord, error) {
	symbol, err := singleSymbol(ticker)
	if err != nil {
		return nil, err
	}
	table, err := s.market.OptionChain(ctx, symbol)
	if err != nil {
		return nil, upstream("option chain", err)
	}
	return market.Reshape(table)
}
