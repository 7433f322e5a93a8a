package helpsys

import "context"

// Collect scans every path in order and merges the results.
// Groups keep the order in which they were first seen, entries are never deduplicated.
func Collect(ctx context.Context, paths []string) Result {
	result := Result{
		Table:       NewTable(),
		Diagnostics: make([]Diagnostic, 0),
	}

	for _, path := range paths {
		partial := ScanFile(path)
		log(ctx).Debug().
			Str("path", path).
			Int("entries", partial.Table.Len()).
			Int("problems", len(partial.Diagnostics)).
			Msgf("Scanned %s", path)

		result.Table.Merge(partial.Table)
		result.Diagnostics = append(result.Diagnostics, partial.Diagnostics...)
	}

	return result
}
