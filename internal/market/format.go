package market

import "math"

// SearchResult is the display shape of one eligible search hit.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// NewSearchResult selects the search display fields of q.
func NewSearchResult(q EligibleQuote) SearchResult {
	r := Record(q)
	exchange := r.String("exchDisp")
	if exchange == "" {
		exchange = exchangeName(r.String("exchange"))
	}
	return SearchResult{
		Symbol:   r.String("symbol"),
		Name:     r.String("shortname"),
		Exchange: exchange,
	}
}

// TrendingQuote is the display shape of one eligible trending symbol.
type TrendingQuote struct {
	Symbol        string  `json:"symbol"`
	QuoteType     string  `json:"quoteType"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Exchange      string  `json:"exchange"`
}

// NewTrendingQuote selects the trending display fields of q. Prices are
// rounded to cents; changePercent is taken as already expressed in percent.
func NewTrendingQuote(q EligibleQuote) TrendingQuote {
	r := Record(q)
	price, _ := r.Float("regularMarketPrice")
	change, _ := r.Float("regularMarketChange")
	pct, _ := r.Float("regularMarketChangePercent")
	return TrendingQuote{
		Symbol:        r.String("symbol"),
		QuoteType:     r.String("quoteType"),
		Price:         Round2(price),
		Change:        Round2(change),
		ChangePercent: Round2(pct),
		Exchange:      r.String("exchange"),
	}
}

// MarketSummary is the display shape of one market summary entry, usually
// an index or future.
type MarketSummary struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// NewMarketSummary selects the summary display fields of r.
func NewMarketSummary(r Record) MarketSummary {
	price, _ := r.Float("regularMarketPrice")
	change, _ := r.Float("regularMarketChange")
	pct, _ := r.Float("regularMarketChangePercent")
	return MarketSummary{
		Name:          r.String("shortName"),
		Price:         price,
		Change:        Round2(change),
		ChangePercent: Round2(pct),
	}
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
