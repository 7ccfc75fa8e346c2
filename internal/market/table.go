package market

import "fmt"

// Table is a provider's period-by-line-item grid: one row per reporting
// period, one column per line item. The period identifier lives on the row,
// not among Columns.
type Table struct {
	// PeriodKey names the field the period identifier is emitted under,
	// e.g. "asOfDate" or "date".
	PeriodKey string
	Columns   []string
	Rows      []Row
}

// Row is one period of a Table. Cells line up with Table.Columns; a short
// row reads as null for the trailing columns.
type Row struct {
	Period string
	Cells  []any
}

// PeriodRecord is one flattened row: every column of the row plus the
// period identifier under Table.PeriodKey.
type PeriodRecord = Record

// DefaultPeriodKey is used when a Table does not name its period field.
const DefaultPeriodKey = "period"

// Reshape flattens t into one PeriodRecord per row, keeping row order. It
// fails with ErrEmptyResult when t has no rows.
func Reshape(t Table) ([]PeriodRecord, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrEmptyResult)
	}
	key := t.PeriodKey
	if key == "" {
		key = DefaultPeriodKey
	}
	out := make([]PeriodRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(PeriodRecord, len(t.Columns)+1)
		for i, col := range t.Columns {
			var cell any
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			rec[col] = cell
		}
		// the period id wins over a same-named column
		rec[key] = row.Period
		out = append(out, rec)
	}
	return out, nil
}
