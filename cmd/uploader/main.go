// Package main provides the uploader command-line tool for indexing a
// canonical-document JSON file into OpenSearch.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"trialsync/internal/config"
	"trialsync/internal/feed"
	"trialsync/internal/index"
	"trialsync/internal/logger"
	"trialsync/internal/models"
)

func main() {
	inputFile := flag.String("input", "", "Path to canonical-document JSON file (required)")
	addresses := flag.String("addresses", "http://localhost:9200", "Comma-separated OpenSearch addresses")
	indexName := flag.String("index", "clinical-trials", "Target index name")
	username := flag.String("username", os.Getenv("OPENSEARCH_USERNAME"), "OpenSearch username")
	password := flag.String("password", os.Getenv("OPENSEARCH_PASSWORD"), "OpenSearch password")
	mappingURL := flag.String("mapping-url", config.DefaultMappingURL, "Field-mapping document URL")
	batchSize := flag.Int("batch", 500, "Bulk batch size")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Usage: uploader -input <trials.json> [-addresses <url,...>] [-index <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(*logLevel)

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Error("failed to read input file", "error", err)
		os.Exit(1)
	}

	var docs []*models.ClinicalTrial
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Error("failed to parse input file", "error", err)
		os.Exit(1)
	}

	cfg := config.IndexConfig{
		Enabled:       true,
		Addresses:     strings.Split(*addresses, ","),
		Username:      *username,
		Password:      *password,
		Name:          *indexName,
		MappingURL:    *mappingURL,
		BulkBatchSize: *batchSize,
	}

	client, err := index.NewClient(cfg, log)
	if err != nil {
		log.Error("failed to create index client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := client.Ping(ctx); err != nil {
		log.Error("index ping failed", "error", err)
		os.Exit(1)
	}

	mappingData, err := feed.NewClient().Fetch(cfg.MappingURL)
	if err != nil {
		log.Error("mapping fetch failed", "error", err)
		os.Exit(1)
	}

	mapping, err := index.FilterMapping(mappingData)
	if err != nil {
		log.Error("mapping filter failed", "error", err)
		os.Exit(1)
	}

	indexer := index.NewIndexer(client, cfg, log)

	if err := indexer.EnsureIndex(ctx, mapping); err != nil {
		log.Error("index creation failed", "error", err)
		os.Exit(1)
	}

	indexed, err := indexer.BulkIndex(ctx, docs)
	if err != nil {
		log.Error("bulk indexing failed", "indexed", indexed, "error", err)
		os.Exit(1)
	}

	log.Info("upload complete", "documents", indexed, "index", cfg.Name)
}
