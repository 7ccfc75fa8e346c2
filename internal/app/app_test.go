package app_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"quotegateway/internal/app"
	"quotegateway/internal/config"
	"quotegateway/internal/market"
)

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"quoteResponse":{"result":[
			{"symbol":"AAPL","exchange":"NMS","quoteType":"EQUITY","regularMarketPrice":189.5},
			{"symbol":"SPY","exchange":"PCX","quoteType":"ETF","regularMarketPrice":450.1}
		],"error":null}}`)
	})
	mux.HandleFunc("/api/v1/news", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id":7,"headline":"Markets rally","image":"https://img/7.jpg","url":"https://n/7"},
			{"id":8,"headline":"No picture","image":"","url":"https://n/8"}
		]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	cfg := config.Default()
	cfg.Yahoo.BaseURL = baseURL
	cfg.Finnhub.BaseURL = baseURL
	cfg.Yahoo.MaxRequestsPerMinute = 0
	return cfg
}

func TestNew_QuotesThroughProviderChain(t *testing.T) {
	// Arrange
	srv := upstream(t)
	a, err := app.New(t.Context(), testConfig(srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	// Act
	quotes, err := a.Service.Quotes(t.Context(), "aapl,spy,zzzz")

	// Assert
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.Equal(t, "AAPL", quotes[0].Symbol())
	require.Len(t, a.Upstreams, 1)
	require.Equal(t, "yahoo", a.Upstreams[0].Name())
}

func TestNew_NewsDisabledWithoutKey(t *testing.T) {
	srv := upstream(t)
	cfg := testConfig(srv.URL)
	cfg.Finnhub.APIKey = ""

	a, err := app.New(t.Context(), cfg)
	require.NoError(t, err)

	_, err = a.Service.News(t.Context(), "", "general", 5)
	require.ErrorIs(t, err, market.ErrUpstreamUnavailable)
}

func TestNew_NewsWithKey(t *testing.T) {
	srv := upstream(t)
	cfg := testConfig(srv.URL)
	cfg.Finnhub.APIKey = "test-key"

	a, err := app.New(t.Context(), cfg)
	require.NoError(t, err)

	articles, err := a.Service.News(t.Context(), "", "", 5)
	require.NoError(t, err)
	require.Len(t, a.Upstreams, 2)
	require.Equal(t, []market.NewsArticle{
		{ID: "7", Headline: "Markets rally", Image: "https://img/7.jpg", URL: "https://n/7"},
	}, articles)
}

func TestNew_UnreachableRedis(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Cache.RedisAddr = "127.0.0.1:1"

	_, err := app.New(t.Context(), cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis 127.0.0.1:1")
}
