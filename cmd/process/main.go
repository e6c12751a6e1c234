package main

import (
	"context"

	"github.com/joho/godotenv"

	"comm-metrics-go/internal/config"
	"comm-metrics-go/internal/logger"
	"comm-metrics-go/internal/pipeline"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	run := log.WithRun().WithField("service", "comm-metrics-process")
	run.Info("starting extraction run")

	cfg, err := config.Load()
	if err != nil {
		run.WithError(err).Fatal("failed to load config")
	}
	run.WithField("videos", cfg.Paths.Videos).WithField("outputs", cfg.Paths.Outputs).Info("config loaded")

	p := pipeline.New(cfg, run)
	res, err := p.Run(context.Background())
	if err != nil {
		run.WithError(err).Fatal("extraction run failed")
	}
	run.WithField("processed", res.Processed).
		WithField("skipped", res.Skipped).
		WithField("metrics_csv", res.MetricsPath).
		Info("extraction run complete")
}
