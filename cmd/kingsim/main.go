package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/king-engine/king/sim"
)

func main() {
	_ = godotenv.Load()

	cfg := sim.ConfigFromEnv()
	games := flag.Int("games", cfg.Games, "number of sessions to play")
	workers := flag.Int("workers", cfg.Workers, "concurrent sessions (0 = GOMAXPROCS)")
	seed := flag.Uint64("seed", cfg.Seed, "batch seed for reproducible runs")
	verbose := flag.Bool("v", false, "log each finished session")
	flag.Parse()
	cfg.Games = *games
	cfg.Workers = *workers
	cfg.Seed = *seed

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	log.WithFields(logrus.Fields{
		"games":    cfg.Games,
		"mc_seats": cfg.MonteCarloSeats,
		"seed":     cfg.Seed,
	}).Info("starting simulation batch")

	report, err := sim.Run(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Error("simulation batch failed")
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"games":          report.Games,
		"mean_points":    report.MeanPoints(),
		"wins":           report.Wins,
		"trial_failures": report.TrialFailures,
	}).Info("simulation batch finished")
}
