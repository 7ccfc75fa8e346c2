package market

// recognizedExchanges is the exchange whitelist, keyed by provider exchange
// code, valued by display name.
var recognizedExchanges = map[string]string{
	"NMS": "NASDAQ",
	"NYQ": "NYSE",
}

const equityQuoteType = "EQUITY"

// EligibleQuote is a record known to describe an equity listed on a
// recognized exchange. It is never built from a sentinel.
type EligibleQuote Record

// Symbol returns the quote's ticker.
func (q EligibleQuote) Symbol() Symbol { return Record(q).String("symbol") }

// Value wraps q back into a Value, e.g. to re-run it through the projector.
func (q EligibleQuote) Value() Value { return RecordValue(Record(q)) }

// RecognizedExchange reports whether code is on the whitelist.
func RecognizedExchange(code string) bool {
	_, ok := recognizedExchanges[code]
	return ok
}

// exchangeName returns the display name for a whitelisted exchange code, or
// the code itself.
func exchangeName(code string) string {
	if name, ok := recognizedExchanges[code]; ok {
		return name
	}
	return code
}

// Eligible is the one place that decides whether an upstream value is a
// tradable equity. Sentinels are never eligible; missing fields read as "".
func Eligible(v Value) (EligibleQuote, bool) {
	rec, ok := v.Record()
	if !ok {
		return nil, false
	}
	if !RecognizedExchange(rec.String("exchange")) || rec.String("quoteType") != equityQuoteType {
		return nil, false
	}
	return EligibleQuote(rec), true
}

// Project returns the eligible values of a batch in batch order. Symbols
// absent from values and ineligible entries are dropped, not replaced.
func Project(batch SymbolBatch, values map[Symbol]Value) []EligibleQuote {
	out := make([]EligibleQuote, 0, len(batch))
	for _, s := range batch {
		v, ok := values[s]
		if !ok {
			continue
		}
		if q, ok := Eligible(v); ok {
			out = append(out, q)
		}
	}
	return out
}

// ProjectValues is Project for positional input such as screener or search
// results.
func ProjectValues(values []Value) []EligibleQuote {
	out := make([]EligibleQuote, 0, len(values))
	for _, v := range values {
		if q, ok := Eligible(v); ok {
			out = append(out, q)
		}
	}
	return out
}
