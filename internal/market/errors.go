package market

import "errors"

// Failure kinds returned by the pipeline. Callers match them with errors.Is;
// the message usually carries more context through %w wrapping.
var (
	// ErrInvalidInput marks a malformed or empty symbol set or parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingEntity marks a symbol for which the upstream has no record at all.
	ErrMissingEntity = errors.New("entity not found")

	// ErrIneligible marks a record that exists but is not a tradable equity
	// on a recognized exchange.
	ErrIneligible = errors.New("not a tradable equity on a recognized exchange")

	// ErrEmptyResult marks a statement or table query that returned zero rows.
	ErrEmptyResult = errors.New("empty result")

	// ErrUpstreamUnavailable marks a delegated fetch that failed or timed out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
