// Package reader fetches datasets from the backing spreadsheet, parses rows
// into typed records, and keeps the parsed slices in the row cache. Readers
// only observe; every mutation lives in the writer package. No reader
// constructs another reader: anything that joins across datasets is wired
// together in Aggregator.
package reader

import (
	"context"
	"fmt"
	"sort"

	"github.com/TFC433/sheetcrm/internal/cache"
	"github.com/TFC433/sheetcrm/internal/sheets"
)

// fetchCached loads a dataset through the row cache: on a miss it fetches the
// A1 range, drops the header row, maps each remaining row through parse (idx
// is the 1-based sheet row number), and optionally sorts. The parsed slice is
// shared between callers and must be treated as read-only.
func fetchCached[T any](ctx context.Context, store *cache.Store, src sheets.ValueSource, key, a1Range string, parse func(row []string, sheetRow int) T, less func(a, b T) bool) ([]T, error) {
	return cache.Fetch(ctx, store, key, func(ctx context.Context) ([]T, error) {
		rows, err := src.GetRange(ctx, a1Range)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", key, err)
		}
		if len(rows) > 0 {
			rows = rows[1:] // header
		}
		out := make([]T, len(rows))
		for i, row := range rows {
			out[i] = parse(row, i+2)
		}
		if less != nil {
			sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
		}
		return out, nil
	})
}

func cell(row []string, idx int) string {
	return sheets.Cell(row, idx)
}
