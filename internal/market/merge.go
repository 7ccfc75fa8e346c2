package market

import "fmt"

// Merge overlays sources onto an empty record in order, so on overlapping
// keys the source merged last wins. The first source is the base: when it is
// nil the upstream had no data for the entity and Merge fails with
// ErrMissingEntity. Later nil sources are skipped. No source is modified.
func Merge(sources ...Record) (Record, error) {
	if len(sources) == 0 || sources[0] == nil {
		return nil, fmt.Errorf("%w: no base record to merge onto", ErrMissingEntity)
	}
	size := 0
	for _, src := range sources {
		size += len(src)
	}
	out := make(Record, size)
	for _, src := range sources {
		for k, v := range src {
			out[k] = v
		}
	}
	return out, nil
}
