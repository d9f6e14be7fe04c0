// Package library provides read access to the shared on-disk data library.
//
// Teams publish CSV time-series files under a common root directory:
//
//	<root>/<team>/raw_data/daily/<file>
//	<root>/<team>/raw_data/quarterly/<file>
//	<root>/<team>/processed_data/<file>
//
// The Loader resolves a requested file against those three candidate
// locations in that fixed order, first match wins, and parses the winner
// into a Table indexed by a parsed date column. The package also provides
// discovery helpers for listing team folders and the CSV files they hold.
//
// Example usage:
//
//	loader := library.NewLoader("/mnt/shared/data_library", slog.Default())
//
//	table, err := loader.Load(ctx, library.Request{
//		Team: "02_asset_pricing_factors",
//		File: "sp500_pricing_daily.csv",
//	})
//	if errors.Is(err, library.ErrNotFound) {
//		// none of the candidate locations hold the file
//	}
//
// All operations are read-only and safe for concurrent use.
package library
