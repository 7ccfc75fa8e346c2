package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quotegateway/internal/market"
	"quotegateway/internal/provider"
	"quotegateway/internal/service"
)

func TestStatement(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	md := NewMockMarketData(ctrl)
	md.EXPECT().
		Statement(gomock.Any(), "AAPL", provider.BalanceSheet, provider.Quarterly).
		Return(market.Table{
			PeriodKey: "asOfDate",
			Columns:   []string{"periodType", "TotalAssets"},
			Rows: []market.Row{
				{Period: "2023-12-31", Cells: []any{"3M", 353514000000.0}},
				{Period: "2024-03-31", Cells: []any{"3M", 337411000000.0}},
			},
		}, nil)
	svc := service.New(md, nil)

	records, err := svc.Statement(t.Context(), "aapl", provider.BalanceSheet, "q")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, market.PeriodRecord{"asOfDate": "2023-12-31", "periodType": "3M", "TotalAssets": 353514000000.0}, records[0])
}

func TestStatementEmptyAndInvalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	md := NewMockMarketData(ctrl)
	md.EXPECT().
		Statement(gomock.Any(), "SPY", provider.CashFlow, provider.Annual).
		Return(market.Table{PeriodKey: "asOfDate"}, nil)
	svc := service.New(md, nil)

	_, err := svc.Statement(t.Context(), "SPY", provider.CashFlow, "")
	require.ErrorIs(t, err, market.ErrEmptyResult)

	_, err = svc.Statement(t.Context(), "SPY", provider.CashFlow, "monthly")
	require.ErrorIs(t, err, market.ErrInvalidInput)
}

func TestStatementMissingSymbolPassesThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	md := NewMockMarketData(ctrl)
	md.EXPECT().
		Statement(gomock.Any(), "ZZZZ", provider.IncomeStatement, provider.Annual).
		Return(market.Table{}, market.ErrMissingEntity)
	svc := service.New(md, nil)

	_, err := svc.Statement(t.Context(), "ZZZZ", provider.IncomeStatement, "a")
	require.ErrorIs(t, err, market.ErrMissingEntity)
}

func TestHistoryDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	md := NewMockMarketData(ctrl)
	md.EXPECT().
		History(gomock.Any(), "AAPL", provider.DefaultHistoryPeriod, provider.DefaultHistoryInterval).
		Return(market.Table{
			PeriodKey: "date",
			Columns:   []string{"open", "close"},
			Rows:      []market.Row{{Period: "2024-01-02", Cells: []any{187.15, 185.64}}},
		}, nil)
	svc := service.New(md, nil)

	records, err := svc.History(t.Context(), "AAPL", "", "")
	require.NoError(t, err)
	require.Equal(t, []market.PeriodRecord{{"date": "2024-01-02", "open": 187.15, "close": 185.64}}, records)

	_, err = svc.History(t.Context(), "AAPL", "forever", "")
	require.ErrorIs(t, err, market.ErrInvalidInput)
}

func TestOptionChain(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	md := NewMockMarketData(ctrl)
	md.EXPECT().
		OptionChain(gomock.Any(), "AAPL").
		Return(market.Table{
			PeriodKey: "contractSymbol",
			Columns:   []string{"optionType", "strike"},
			Rows: []market.Row{
				{Period: "AAPL240614C00200000", Cells: []any{"call", 200.0}},
				{Period: "AAPL240614P00200000", Cells: []any{"put", 200.0}},
			},
		}, nil)
	md.EXPECT().OptionChain(gomock.Any(), "BRK-A").Return(market.Table{PeriodKey: "contractSymbol"}, nil)
	svc := service.New(md, nil)

	records, err := svc.OptionChain(t.Context(), "aapl")
	require.NoError(t, err)
	require.Equal(t, []market.PeriodRecord{
		{"contractSymbol": "AAPL240614C00200000", "optionType": "call", "strike": 200.0},
		{"contractSymbol": "AAPL240614P00200000", "optionType": "put", "strike": 200.0},
	}, records)

	_, err = svc.OptionChain(t.Context(), "BRK-A")
	require.ErrorIs(t, err, market.ErrEmptyResult)
}
