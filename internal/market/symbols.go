package market

import (
	"fmt"
	"strings"
)

// MaxBatchSize caps the number of symbols accepted in one request.
const MaxBatchSize = 200

// Symbol is an upper-case ticker, the identity key across per-symbol collections.
type Symbol = string

// SymbolBatch is an ordered set of unique symbols, in first-occurrence order.
type SymbolBatch []Symbol

// Strings returns the batch as a plain string slice.
func (b SymbolBatch) Strings() []string { return []string(b) }

// ResolveSymbols turns "AAPL" or "AAPL, msft,AAPL" into a SymbolBatch.
// Tokens are trimmed and upper-cased, empty tokens dropped and duplicates
// collapsed. An empty result, an oversized batch or a token with characters
// no ticker carries fails with ErrInvalidInput.
func ResolveSymbols(input string) (SymbolBatch, error) {
	parts := strings.Split(input, ",")
	batch := make(SymbolBatch, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		s := normalizeSymbol(p)
		if s == "" {
			continue
		}
		if !validSymbol(s) {
			return nil, fmt.Errorf("%w: malformed symbol %q", ErrInvalidInput, s)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		batch = append(batch, s)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: no symbols given", ErrInvalidInput)
	}
	if len(batch) > MaxBatchSize {
		return nil, fmt.Errorf("%w: too many symbols (max %d)", ErrInvalidInput, MaxBatchSize)
	}
	return batch, nil
}

// CollectSymbols builds a batch from a provider-supplied symbol list, such as
// trending or recommended tickers. Unlike ResolveSymbols it never fails: a
// malformed token is skipped on its own, and symbols past MaxBatchSize are
// left out. The batch may be empty.
func CollectSymbols(symbols []string) SymbolBatch {
	batch := make(SymbolBatch, 0, min(len(symbols), MaxBatchSize))
	seen := make(map[string]struct{}, len(symbols))
	for _, p := range symbols {
		s := normalizeSymbol(p)
		if s == "" || !validSymbol(s) {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		if len(batch) == MaxBatchSize {
			break
		}
		seen[s] = struct{}{}
		batch = append(batch, s)
	}
	return batch
}

func normalizeSymbol(s string) Symbol {
	return strings.ToUpper(strings.TrimSpace(s))
}

// validSymbol accepts letters, digits and the punctuation Yahoo uses for
// share classes (BRK-B), foreign listings (SHOP.TO, M&M.NS), indices (^GSPC)
// and currencies (EURUSD=X).
func validSymbol(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '^', r == '=', r == '&':
		default:
			return false
		}
	}
	return true
}
