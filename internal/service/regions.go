package service

import (
	"fmt"
	"strings"

	"quotegateway/internal/market"
)

// DefaultCountry is used when the caller names none.
const DefaultCountry = "united states"

// regions maps country names to Yahoo region codes.
var regions = map[string]string{
	"argentina":      "AR",
	"australia":      "AU",
	"brazil":         "BR",
	"canada":         "CA",
	"china":          "CN",
	"denmark":        "DK",
	"finland":        "FI",
	"france":         "FR",
	"germany":        "DE",
	"hong kong":      "HK",
	"india":          "IN",
	"israel":         "IL",
	"italy":          "IT",
	"malaysia":       "MY",
	"new zealand":    "NZ",
	"norway":         "NO",
	"portugal":       "PT",
	"qatar":          "QA",
	"russia":         "RU",
	"singapore":      "SG",
	"spain":          "ES",
	"sweden":         "SE",
	"taiwan":         "TW",
	"thailand":       "TH",
	"turkey":         "TR",
	"united kingdom": "GB",
	"united states":  "US",
	"vietnam":        "VN",
}

// Region resolves a country name, or a region code such as "GB", to the
// region code the provider expects. Empty input means DefaultCountry.
func Region(country string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(country))
	if c == "" {
		c = DefaultCountry
	}
	if code, ok := regions[c]; ok {
		return code, nil
	}
	upper := strings.ToUpper(c)
	for _, code := range regions {
		if code == upper {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported country %q", market.ErrInvalidInput, country)
}
