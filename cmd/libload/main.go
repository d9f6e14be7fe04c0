package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"datalib/internal/config"
	"datalib/internal/infrastructure"
	"datalib/internal/library"
)

func main() {
	team := flag.String("team", "", "team folder to load from (e.g. 02_asset_pricing_factors)")
	file := flag.String("file", "", "exact name of the CSV file to load")
	dateColumn := flag.String("date-column", "", "column used as the date index (defaults to configured column)")
	flag.Parse()

	if *team == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "usage: libload -team <folder> -file <name.csv> [-date-column Date]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *dateColumn == "" {
		*dateColumn = cfg.Library.DateColumn
	}

	loader := library.NewLoader(cfg.Library.Root, logger)

	table, err := loader.Load(context.Background(), library.Request{
		Team:       *team,
		File:       *file,
		DateColumn: *dateColumn,
	})
	if err != nil {
		var parseErr *library.ParseError
		switch {
		case errors.Is(err, library.ErrNotFound):
			slog.Error("File not found in standard directories",
				"file", *file,
				"team", *team,
				"library_root", cfg.Library.Root)
		case errors.As(err, &parseErr):
			slog.Error("File could not be parsed",
				"path", parseErr.Path,
				"error", parseErr.Err.Error())
		default:
			slog.Error("Load failed", "error", err)
		}
		os.Exit(1)
	}

	earliest, latest := table.DateRange()
	fmt.Printf("Loaded %s/%s\n", *team, *file)
	fmt.Printf("  rows:       %d\n", table.Len())
	fmt.Printf("  columns:    %v\n", table.Columns)
	if table.Len() > 0 {
		fmt.Printf("  date range: %s to %s\n",
			earliest.Format("2006-01-02"), latest.Format("2006-01-02"))
	}
}
