// Package main provides the normalizer command-line tool for
// transforming a local ICTRP CSV export into canonical documents.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"trialsync/internal/config"
	"trialsync/internal/feed"
	"trialsync/internal/geo"
	"trialsync/internal/logger"
	"trialsync/internal/normalizer"
)

func main() {
	trialsPath := flag.String("trials", "", "Path to ICTRP CSV export (required)")
	countryPath := flag.String("countries", "", "Path to country reference CSV (required)")
	outputPath := flag.String("output", "trials.json", "Path to output JSON file")
	pretty := flag.Bool("pretty", false, "Pretty-print the output JSON")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	if *trialsPath == "" || *countryPath == "" {
		fmt.Println("Usage: normalizer -trials <export.csv> -countries <countries.csv> [-output <out.json>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(*logLevel)

	countryFile, err := os.Open(*countryPath)
	if err != nil {
		log.Error("failed to open country reference", "error", err)
		os.Exit(1)
	}

	countries, err := geo.Load(countryFile)
	countryFile.Close()

	if err != nil {
		log.Error("failed to load country reference", "error", err)
		os.Exit(1)
	}

	trialsFile, err := os.Open(*trialsPath)
	if err != nil {
		log.Error("failed to open trials export", "error", err)
		os.Exit(1)
	}

	rows, err := feed.ParseRows(trialsFile)
	trialsFile.Close()

	if err != nil {
		log.Error("failed to parse trials export", "error", err)
		os.Exit(1)
	}

	filtered := feed.FilterRegistry(rows, config.DefaultExcludedRegistry)

	norm := normalizer.New(countries, log)
	norm.Stats().RowsIn = len(rows)
	norm.Stats().Excluded = len(rows) - len(filtered)

	docs := norm.NormalizeAll(filtered)

	out, err := os.Create(*outputPath)
	if err != nil {
		log.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(docs); err != nil {
		log.Error("failed to encode documents", "error", err)
		os.Exit(1)
	}

	fmt.Println(norm.Stats().Render())
	log.Info("done", "documents", len(docs), "output", *outputPath)
}
