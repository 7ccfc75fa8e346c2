package market

import (
	"strconv"
	"strings"
)

// Record is a provider-native mapping of field name to value.
type Record map[string]any

// String returns the field as a string. Numbers are formatted without
// trailing zeros; missing or non-scalar fields yield "".
func (r Record) String(key string) string {
	switch v := unwrap(r[key]).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Float returns the field as a float64. Yahoo style {"raw": x, "fmt": "..."}
// wrappers are unwrapped. ok is false when the field is missing or not numeric.
func (r Record) Float(key string) (float64, bool) {
	switch v := unwrap(r[key]).(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func unwrap(v any) any {
	if m, ok := v.(map[string]any); ok {
		if raw, ok := m["raw"]; ok {
			return raw
		}
	}
	return v
}

// Value is what an upstream returns for one symbol: either a Record or a
// sentinel error message standing in for it.
type Value struct {
	record Record
	err    string
	isErr  bool
}

// RecordValue wraps a provider record.
func RecordValue(r Record) Value { return Value{record: r} }

// ErrorValue wraps a sentinel message returned in place of a record.
func ErrorValue(msg string) Value { return Value{err: msg, isErr: true} }

// Record returns the wrapped record. ok is false for sentinels and for
// values that carry no record at all.
func (v Value) Record() (Record, bool) {
	if v.isErr || v.record == nil {
		return nil, false
	}
	return v.record, true
}

// Err returns the sentinel message, if v is a sentinel.
func (v Value) Err() (string, bool) {
	return v.err, v.isErr
}

// IsSentinel reports whether v stands in for a missing record.
func (v Value) IsSentinel() bool { return v.isErr }
