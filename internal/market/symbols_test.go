package market

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSymbols_DedupesCaseAndWhitespace(t *testing.T) {
	batch, err := ResolveSymbols("AAPL,aapl, MSFT,AAPL")
	require.NoError(t, err)
	require.Equal(t, SymbolBatch{"AAPL", "MSFT"}, batch)
}

func TestResolveSymbols_Single(t *testing.T) {
	batch, err := ResolveSymbols(" tsla ")
	require.NoError(t, err)
	require.Equal(t, SymbolBatch{"TSLA"}, batch)
}

func TestResolveSymbols_KeepsFirstOccurrenceOrder(t *testing.T) {
	batch, err := ResolveSymbols("msft,,goog, ,aapl,GOOG,brk-b")
	require.NoError(t, err)
	require.Equal(t, []string{"MSFT", "GOOG", "AAPL", "BRK-B"}, batch.Strings())
}

func TestResolveSymbols_Empty(t *testing.T) {
	for _, in := range []string{"", " ", ",,", " , ,"} {
		_, err := ResolveSymbols(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %q: want ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestResolveSymbols_Malformed(t *testing.T) {
	_, err := ResolveSymbols("AAPL,DROP TABLE")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Contains(t, err.Error(), "DROP TABLE")
}

func TestResolveSymbols_TooMany(t *testing.T) {
	syms := make([]string, 0, MaxBatchSize+1)
	for i := 0; i <= MaxBatchSize; i++ {
		syms = append(syms, "S"+strconv.Itoa(i))
	}
	_, err := ResolveSymbols(strings.Join(syms, ","))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveSymbols_AcceptsAmpersandTickers(t *testing.T) {
	batch, err := ResolveSymbols("m&m.ns")
	require.NoError(t, err)
	require.Equal(t, SymbolBatch{"M&M.NS"}, batch)
}

func TestCollectSymbols_SkipsMalformedTokens(t *testing.T) {
	batch := CollectSymbols([]string{"RELIANCE.NS", "M&M.NS", "NOT A TICKER", " aapl ", "", "AAPL"})
	require.Equal(t, SymbolBatch{"RELIANCE.NS", "M&M.NS", "AAPL"}, batch)
}

func TestCollectSymbols_EmptyAndCapped(t *testing.T) {
	require.Empty(t, CollectSymbols(nil))
	require.Empty(t, CollectSymbols([]string{"  ", "$$$"}))

	syms := make([]string, 0, MaxBatchSize+10)
	for i := 0; i < MaxBatchSize+10; i++ {
		syms = append(syms, "S"+strconv.Itoa(i))
	}
	batch := CollectSymbols(syms)
	require.Len(t, batch, MaxBatchSize)
	require.Equal(t, "S0", batch[0])
}
