package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"comm-metrics-go/internal/config"
	"comm-metrics-go/internal/dataset"
	"comm-metrics-go/internal/logger"
	"comm-metrics-go/internal/visualize"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New().WithField("service", "comm-metrics-visualize")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	csvPath := cfg.Visualize.CSV
	if p := os.Getenv("SEGMENTS_CSV"); p != "" {
		csvPath = p
	}
	if csvPath == "" {
		log.Fatal("no segments csv configured (visualize.csv or SEGMENTS_CSV)")
	}
	log = log.WithField("csv", csvPath)

	rows, err := dataset.LoadSegments(csvPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load segments csv")
	}
	log.WithField("rows", len(rows)).Info("segments loaded")

	buckets, err := visualize.BucketWordCounts(rows, cfg.Visualize.BucketSec)
	if err != nil {
		log.WithError(err).Fatal("failed to bucket word counts")
	}
	tallies, err := visualize.TallySentiments(rows)
	if err != nil {
		log.WithError(err).Fatal("failed to tally sentiments")
	}

	if err := os.MkdirAll(cfg.Paths.Outputs, 0o755); err != nil {
		log.WithError(err).Fatal("failed to create output dir")
	}
	histPath := filepath.Join(cfg.Paths.Outputs, "word_count_histogram.png")
	if err := visualize.RenderHistogram(histPath, buckets); err != nil {
		log.WithError(err).Fatal("failed to render histogram")
	}
	distPath := filepath.Join(cfg.Paths.Outputs, "sentiment_distribution.png")
	if err := visualize.RenderSentimentBars(distPath, tallies); err != nil {
		log.WithError(err).Fatal("failed to render sentiment distribution")
	}

	log.WithField("histogram", histPath).WithField("distribution", distPath).Info("charts written")
}
