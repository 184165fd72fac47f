package sim

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config controls a simulation batch.
type Config struct {
	// Games is the number of full ten-round sessions to play.
	Games int
	// Workers bounds concurrent sessions. 0 means GOMAXPROCS.
	Workers int
	// Seed makes the batch reproducible. 0 derives per-game seeds from
	// the game index alone.
	Seed uint64
	// MonteCarloSeats marks which seats use the Monte Carlo chooser;
	// the rest play the plain heuristic.
	MonteCarloSeats [4]bool
}

// DefaultConfig pits one Monte Carlo seat against three heuristics.
func DefaultConfig() Config {
	return Config{
		Games:           100,
		MonteCarloSeats: [4]bool{true, false, false, false},
	}
}

// ConfigFromEnv overlays environment variables onto the defaults:
// KINGSIM_GAMES, KINGSIM_WORKERS, KINGSIM_SEED, and KINGSIM_MC_SEATS as a
// comma-separated list of seat numbers.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("KINGSIM_GAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Games = n
		}
	}
	if v := os.Getenv("KINGSIM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("KINGSIM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("KINGSIM_MC_SEATS"); v != "" {
		cfg.MonteCarloSeats = [4]bool{}
		for _, tok := range strings.Split(v, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil && n >= 0 && n < 4 {
				cfg.MonteCarloSeats[n] = true
			}
		}
	}
	return cfg
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
