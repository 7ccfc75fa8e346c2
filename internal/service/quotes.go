package service

import (
	"context"
	"fmt"

	"quotegateway/internal/market"
)

// Quote summary module names.
const (
	ModulePrice           = "price"
	ModuleSummaryDetail   = "summaryDetail"
	ModuleAssetProfile    = "assetProfile"
	ModuleFinancialData   = "financialData"
	ModuleKeyStatistics   = "defaultKeyStatistics"
	ModuleESGScores       = "esgScores"
	ModuleFundPerformance = "fundPerformance"
	ModuleFundProfile     = "fundProfile"
	ModuleFundTopHoldings = "topHoldings"
)

// overviewModules are merged in this order; later modules win on overlap.
var overviewModules = []string{ModuleSummaryDetail, ModuleKeyStatistics, ModuleFinancialData}

// Quotes resolves a symbol list and returns the eligible quotes in the
// order the symbols were first named.
func (s *Service) Quotes(ctx context.Context, input string) ([]market.EligibleQuote, error) {
	batch, err := market.ResolveSymbols(input)
	if err != nil {
		return nil, err
	}
	values, err := s.market.Quotes(ctx, batch.Strings())
	if err != nil {
		return nil, upstream("quotes", err)
	}
	eligible := market.Project(batch, values)
	dropped("quotes", len(batch), len(eligible))
	return eligible, nil
}

// Price returns the price module of one symbol. A symbol the provider does
// not know fails with ErrMissingEntity; one that is not an eligible equity
// fails with ErrIneligible.
func (s *Service) Price(ctx context.Context, ticker string) (market.EligibleQuote, error) {
	rec, err := s.Module(ctx, ticker, ModulePrice)
	if err != nil {
		return nil, err
	}
	q, ok := market.Eligible(market.RecordValue(rec))
	if !ok {
		dropped("price", 1, 0)
		return nil, fmt.Errorf("%w: %s is not an equity on a recognized exchange", market.ErrIneligible, rec.String("symbol"))
	}
	return q, nil
}

// Module returns one quote summary module of one symbol.
func (s *Service) Module(ctx context.Context, ticker, module string) (market.Record, error) {
	symbol, err := singleSymbol(ticker)
	if err != nil {
		return nil, err
	}
	values, err := s.market.Modules(ctx, symbol, []string{module})
	if err != nil {
		return nil, upstream(module, err)
	}
	rec, ok := values[module].Record()
	if !ok {
		return nil, missing(symbol, values[module])
	}
	return rec, nil
}

// Overview merges summary detail, key statistics and financial data of one
// symbol into a single record. Summary detail is the base; without it the
// symbol counts as missing.
func (s *Service) Overview(ctx context.Context, ticker string) (market.Record, error) {
	symbol, err := singleSymbol(ticker)
	if err != nil {
		return nil, err
	}
	values, err := s.market.Modules(ctx, symbol, overviewModules)
	if err != nil {
		return nil, upstream("overview", err)
	}

	sources := make([]market.Record, len(overviewModules))
	for i, m := range overviewModules {
		sources[i], _ = values[m].Record()
	}
	merged, err := market.Merge(sources...)
	if err != nil {
		return nil, missing(symbol, values[ModuleSummaryDetail])
	}
	return merged, nil
}

// missing builds the MissingEntity error for symbol, carrying the
// provider's sentinel message when there is one.
func missing(symbol string, v market.Value) error {
	if msg, ok := v.Err(); ok && msg != "" {
		return fmt.Errorf("%w: %s", market.ErrMissingEntity, msg)
	}
	return fmt.Errorf("%w: no data for %s", market.ErrMissingEntity, symbol)
}

// FundSectorWeightings returns a fund's sector weights as one record keyed
// by sector. The provider reports them as a list of one-entry records
// inside the top holdings module.
func (s *Service) FundSectorWeightings(ctx context.Context, ticker string) (market.Record, error) {
	holdings, err := s.Module(ctx, ticker, ModuleFundTopHoldings)
	if err != nil {
		return nil, err
	}
	list, _ := holdings["sectorWeightings"].([]any)
	sources := make([]market.Record, 0, len(list)+1)
	sources = append(sources, market.Record{})
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			sources = append(sources, market.Record(m))
		}
	}
	if len(sources) == 1 {
		return nil, fmt.Errorf("%w: no sector weightings for %s", market.ErrMissingEntity, ticker)
	}
	return market.Merge(sources...)
}
