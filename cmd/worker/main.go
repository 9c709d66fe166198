// Package main provides the unified worker command that fetches the
// ICTRP export, normalizes it, and indexes the canonical documents.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"trialsync/internal/config"
	"trialsync/internal/feed"
	"trialsync/internal/geo"
	"trialsync/internal/index"
	"trialsync/internal/logger"
	"trialsync/internal/models"
	"trialsync/internal/normalizer"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	trialsFile := flag.String("trials-file", "", "Local ICTRP CSV file (overrides config)")
	countryFile := flag.String("country-file", "", "Local country reference CSV file (overrides config)")
	output := flag.String("output", "", "Output JSON file path (overrides config)")
	enableIndex := flag.Bool("index", false, "Index documents into OpenSearch (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")

	flag.Parse()

	cfg := config.DefaultConfig()

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *trialsFile != "" {
		cfg.Feed.TrialsFile = *trialsFile
	}

	if *countryFile != "" {
		cfg.Feed.CountryFile = *countryFile
	}

	if *output != "" {
		cfg.Output.Path = *output
	}

	if *enableIndex {
		cfg.Index.Enabled = true
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting trial worker pipeline")

	// Phase 1: Ingestion
	log.Info("Phase 1: Ingestion (fetching feeds)...")

	startTime := time.Now()

	client := feed.NewClientWithRetry(&cfg.Retry)

	countryData, err := client.Open(cfg.Feed.CountryFile, cfg.Feed.CountryURL)
	if err != nil {
		log.Error("❌ Country reference fetch failed", "error", err)
		os.Exit(1)
	}

	countries, err := geo.Load(bytes.NewReader(countryData))
	if err != nil {
		log.Error("❌ Country reference load failed", "error", err)
		os.Exit(1)
	}

	trialsData, err := client.Open(cfg.Feed.TrialsFile, cfg.Feed.TrialsURL)
	if err != nil {
		log.Error("❌ Trials feed fetch failed", "error", err)
		os.Exit(1)
	}

	rows, err := feed.ParseRows(bytes.NewReader(trialsData))
	if err != nil {
		log.Error("❌ Trials feed parse failed", "error", err)
		os.Exit(1)
	}

	filtered := feed.FilterRegistry(rows, cfg.Feed.ExcludedRegistry)

	log.Info(fmt.Sprintf("✅ Fetched %d rows (%d after registry filter, %d countries) in %v",
		len(rows), len(filtered), countries.Len(), time.Since(startTime)))

	// Phase 2: Normalization
	log.Info("Phase 2: Normalization...")

	processStart := time.Now()

	norm := normalizer.New(countries, log)
	norm.Stats().RowsIn = len(rows)
	norm.Stats().Excluded = len(rows) - len(filtered)

	docs := norm.NormalizeAll(filtered)

	log.Info(fmt.Sprintf("✅ Normalized %d documents in %v", len(docs), time.Since(processStart)))

	fmt.Println(norm.Stats().Render())

	if err := writeDocuments(cfg.Output, docs); err != nil {
		log.Error("❌ Output write failed", "error", err)
		os.Exit(1)
	}

	log.Info("✅ Documents written", "path", cfg.Output.Path)

	// Phase 3: Synchronization
	if !cfg.Index.Enabled {
		log.Info("Indexing disabled; done")
		return
	}

	log.Info("Phase 3: Synchronization (indexing)...")

	osClient, err := index.NewClient(cfg.Index, log)
	if err != nil {
		log.Error("❌ Index client failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := osClient.Ping(ctx); err != nil {
		log.Error("❌ Index ping failed", "error", err)
		os.Exit(1)
	}

	mappingData, err := client.Fetch(cfg.Index.MappingURL)
	if err != nil {
		log.Error("❌ Mapping fetch failed", "error", err)
		os.Exit(1)
	}

	mapping, err := index.FilterMapping(mappingData)
	if err != nil {
		log.Error("❌ Mapping filter failed", "error", err)
		os.Exit(1)
	}

	indexer := index.NewIndexer(osClient, cfg.Index, log)

	if err := indexer.EnsureIndex(ctx, mapping); err != nil {
		log.Error("❌ Index creation failed", "error", err)
		os.Exit(1)
	}

	indexed, err := indexer.BulkIndex(ctx, docs)
	if err != nil {
		log.Error("❌ Bulk indexing failed", "indexed", indexed, "error", err)
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Indexed %d documents into %s", indexed, cfg.Index.Name))
}

// writeDocuments writes the document set as a JSON array or as JSON lines.
func writeDocuments(out config.OutputConfig, docs []*models.ClinicalTrial) error {
	f, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if out.PrettyPrint {
		enc.SetIndent("", "  ")
	}

	if out.Format == "jsonl" {
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
			}
		}

		return nil
	}

	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}

	return nil
}
