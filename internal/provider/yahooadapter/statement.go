package yahooadapter

import (
	"context"
	"fmt"
	"slices"
	"time"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
	"quotegateway/internal/provider/yahoo"
)

// statementStart is the earliest date requested from the timeseries endpoint.
var statementStart = time.Date(1985, 8, 23, 0, 0, 0, 0, time.UTC)

// Columns emitted ahead of the line items on every statement row.
const (
	columnPeriodType   = "periodType"
	columnCurrencyCode = "currencyCode"
	statementPeriodKey = "asOfDate"
)

// lineItems lists the timeseries line items fetched per statement kind,
// without their annual/quarterly prefix. Output columns keep this order.
var lineItems = map[provider.StatementKind][]string{
	provider.BalanceSheet: {
		"TotalAssets", "CurrentAssets", "CashAndCashEquivalents", "CashCashEquivalentsAndShortTermInvestments",
		"AccountsReceivable", "Inventory", "NetPPE", "Goodwill", "TotalNonCurrentAssets",
		"TotalLiabilitiesNetMinorityInterest", "CurrentLiabilities", "AccountsPayable", "CurrentDebt",
		"LongTermDebt", "TotalDebt", "NetDebt", "StockholdersEquity", "RetainedEarnings",
		"CommonStockEquity", "WorkingCapital", "TangibleBookValue", "ShareIssued", "OrdinarySharesNumber",
	},
	provider.CashFlow: {
		"OperatingCashFlow", "InvestingCashFlow", "FinancingCashFlow", "FreeCashFlow", "CapitalExpenditure",
		"DepreciationAndAmortization", "StockBasedCompensation", "ChangeInWorkingCapital",
		"RepurchaseOfCapitalStock", "CashDividendsPaid", "IssuanceOfDebt", "RepaymentOfDebt",
		"BeginningCashPosition", "EndCashPosition", "ChangesInCash", "IncomeTaxPaidSupplementalData",
		"InterestPaidSupplementalData",
	},
	provider.IncomeStatement: {
		"TotalRevenue", "CostOfRevenue", "GrossProfit", "OperatingExpense", "ResearchAndDevelopment",
		"SellingGeneralAndAdministration", "OperatingIncome", "InterestExpense", "PretaxIncome",
		"TaxProvision", "NetIncome", "NetIncomeCommonStockholders", "BasicEPS", "DilutedEPS",
		"BasicAverageShares", "DilutedAverageShares", "EBIT", "EBITDA", "NormalizedIncome",
	},
	provider.ValuationMeasures: {
		"MarketCap", "EnterpriseValue", "PeRatio", "ForwardPeRatio", "PegRatio", "PsRatio", "PbRatio",
		"EnterprisesValueRevenueRatio", "EnterprisesValueEBITDARatio",
	},
}

// Statement fetches a financial statement as a table with one row per
// asOfDate, oldest first. A symbol Yahoo does not know fails with
// market.ErrMissingEntity; a known symbol without data yields no rows.
func (a *Adapter) Statement(ctx context.Context, symbol string, kind provider.StatementKind, freq provider.Frequency) (market.Table, error) {
	items, ok := lineItems[kind]
	if !ok {
		return market.Table{}, fmt.Errorf("%w: unknown statement kind %q", market.ErrInvalidInput, kind)
	}
	prefix := string(freq)
	if freq == "" {
		prefix = string(provider.Annual)
	}
	types := make([]string, len(items))
	for i, item := range items {
		types[i] = prefix + item
	}

	series, err := a.client.GetTimeseries(ctx, symbol, types, statementStart, a.now())
	if err != nil {
		return market.Table{}, classify(err)
	}

	table := statementTable(series, prefix, items)
	if len(table.Rows) == 0 {
		if err := a.ensureKnown(ctx, symbol); err != nil {
			return market.Table{}, err
		}
	}
	return table, nil
}

// ensureKnown tells an unknown symbol apart from a known one without data,
// which the timeseries endpoint reports identically.
func (a *Adapter) ensureKnown(ctx context.Context, symbol string) error {
	quotes, err := a.client.GetQuotes(ctx, []string{symbol})
	if err != nil {
		return classify(err)
	}
	if len(quotes) == 0 {
		return fmt.Errorf("%w: quote not found for ticker symbol: %s", market.ErrMissingEntity, symbol)
	}
	return nil
}

type statementRow struct {
	periodType   string
	currencyCode string
	values       map[string]*float64
}

func statementTable(series []yahoo.Timeseries, prefix string, items []string) market.Table {
	rows := make(map[string]*statementRow)
	present := make(map[string]bool, len(items))
	for _, s := range series {
		item := s.Type[min(len(prefix), len(s.Type)):]
		for _, p := range s.Points {
			row, ok := rows[p.AsOfDate]
			if !ok {
				row = &statementRow{values: make(map[string]*float64)}
				rows[p.AsOfDate] = row
			}
			if row.periodType == "" {
				row.periodType = p.PeriodType
			}
			if row.currencyCode == "" {
				row.currencyCode = p.CurrencyCode
			}
			row.values[item] = p.Value
			present[item] = true
		}
	}

	columns := []string{columnPeriodType, columnCurrencyCode}
	for _, item := range items {
		if present[item] {
			columns = append(columns, item)
		}
	}

	dates := make([]string, 0, len(rows))
	for d := range rows {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	table := market.Table{PeriodKey: statementPeriodKey, Columns: columns}
	for _, d := range dates {
		row := rows[d]
		cells := make([]any, len(columns))
		cells[0] = row.periodType
		cells[1] = row.currencyCode
		for i, col := range columns[2:] {
			if v := row.values[col]; v != nil {
				cells[i+2] = *v
			}
		}
		table.Rows = append(table.Rows, market.Row{Period: d, Cells: cells})
	}
	return table
}
