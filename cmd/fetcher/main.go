// Package main provides the fetcher command-line tool for downloading
// the ICTRP export and the country reference file to disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"trialsync/internal/config"
	"trialsync/internal/feed"
	"trialsync/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	trialsOut := flag.String("trials-out", "trials.csv", "Destination for the ICTRP CSV export")
	countryOut := flag.String("country-out", "countries.csv", "Destination for the country reference CSV")
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

	log := logger.NewLogger(cfg.Logging.Level)
	client := feed.NewClientWithRetry(&cfg.Retry)

	downloads := []struct {
		url  string
		dest string
	}{
		{cfg.Feed.TrialsURL, *trialsOut},
		{cfg.Feed.CountryURL, *countryOut},
	}

	for _, d := range downloads {
		log.Info("fetching", "url", d.url)

		data, err := client.Fetch(d.url)
		if err != nil {
			log.Error("fetch failed", "url", d.url, "error", err)
			os.Exit(1)
		}

		if err := os.WriteFile(d.dest, data, 0644); err != nil {
			log.Error("write failed", "dest", d.dest, "error", err)
			os.Exit(1)
		}

		log.Info("saved", "dest", d.dest, "bytes", len(data))
	}
}
