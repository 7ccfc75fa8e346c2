package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// OptionContract is one call or put as Yahoo reports it. Times are unix
// seconds.
type OptionContract struct {
	ContractSymbol    string   `json:"contractSymbol"`
	Strike            *float64 `json:"strike"`
	Currency          string   `json:"currency"`
	LastPrice         *float64 `json:"lastPrice"`
	Change            *float64 `json:"change"`
	PercentChange     *float64 `json:"percentChange"`
	Volume            *float64 `json:"volume"`
	OpenInterest      *float64 `json:"openInterest"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	ContractSize      string   `json:"contractSize"`
	Expiration        int64    `json:"expiration"`
	LastTradeDate     int64    `json:"lastTradeDate"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
	InTheMoney        bool     `json:"inTheMoney"`
}

// OptionExpiry holds the contracts of one expiration date.
type OptionExpiry struct {
	ExpirationDate int64            `json:"expirationDate"`
	Calls          []OptionContract `json:"calls"`
	Puts           []OptionContract `json:"puts"`
}

// OptionChain is one page of a symbol's options: every listed expiration
// date, plus the contracts of the requested one.
type OptionChain struct {
	UnderlyingSymbol string         `json:"underlyingSymbol"`
	ExpirationDates  []int64        `json:"expirationDates"`
	Options          []OptionExpiry `json:"options"`
}

type optionsResponse struct {
	OptionChain struct {
		Result []OptionChain `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"optionChain"`
}

// GetOptions fetches the option chain of symbol for one expiration date,
// given in unix seconds. expiration 0 means the nearest one.
func (c *Client) GetOptions(ctx context.Context, symbol string, expiration int64) (*OptionChain, error) {
	var payload optionsResponse
	params := url.Values{}
	if expiration > 0 {
		params.Set("date", strconv.FormatInt(expiration, 10))
	}
	if err := c.get(ctx, "/v7/finance/options/"+url.PathEscape(symbol), params, &payload); err != nil {
		return nil, err
	}
	if err := payload.OptionChain.Error.err(); err != nil {
		return nil, err
	}
	if len(payload.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("options %s: %w", symbol, ErrNotFound)
	}
	return &payload.OptionChain.Result[0], nil
}
