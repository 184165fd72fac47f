// Package sim runs batches of King self-play sessions, pitting Monte
// Carlo seats against heuristic seats across a worker pool and
// aggregating per-seat results.
package sim

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/king-engine/king/agent"
	"github.com/king-engine/king/engine"
	"github.com/king-engine/king/game"
)

// GameResult is the outcome of one full session.
type GameResult struct {
	ID            uuid.UUID
	Totals        [engine.NumSeats]int
	TrialFailures int
}

// Report aggregates a batch.
type Report struct {
	Games         int
	TotalPoints   [engine.NumSeats]int64
	Wins          [engine.NumSeats]int
	TrialFailures int
}

// MeanPoints returns the average session score per seat.
func (r *Report) MeanPoints() [engine.NumSeats]float64 {
	var out [engine.NumSeats]float64
	if r.Games == 0 {
		return out
	}
	for seat := range out {
		out[seat] = float64(r.TotalPoints[seat]) / float64(r.Games)
	}
	return out
}

// Run plays cfg.Games sessions across the worker pool and aggregates the
// results. Each game gets its own deterministic PRNG derived from the
// batch seed and the game index.
func Run(ctx context.Context, cfg Config, log *logrus.Logger) (*Report, error) {
	report := &Report{}
	var mu sync.Mutex

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.workers())

	for i := 0; i < cfg.Games; i++ {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := cfg.Seed + uint64(i)
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			res, err := PlayGame(rng, cfg.MonteCarloSeats)
			if err != nil {
				return err
			}

			mu.Lock()
			report.Games++
			best := 0
			for seat, pts := range res.Totals {
				report.TotalPoints[seat] += int64(pts)
				if pts > res.Totals[best] {
					best = seat
				}
			}
			report.Wins[best]++
			report.TrialFailures += res.TrialFailures
			mu.Unlock()

			log.WithFields(logrus.Fields{
				"game":   res.ID,
				"totals": res.Totals,
			}).Debug("session finished")
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// PlayGame plays one full ten-round session. Seats flagged in mcSeats use
// the Monte Carlo chooser; the rest use the heuristic.
func PlayGame(rng *rand.Rand, mcSeats [engine.NumSeats]bool) (GameResult, error) {
	g := game.NewGame()

	var choosers [engine.NumSeats]agent.Chooser
	var mcs []*agent.MonteCarlo
	for seat := uint8(0); seat < engine.NumSeats; seat++ {
		if mcSeats[seat] {
			mc := agent.NewMonteCarlo(seat, rng)
			choosers[seat] = mc
			mcs = append(mcs, mc)
		} else {
			choosers[seat] = agent.NewHeuristic()
		}
	}

	for !g.Finished() {
		t, err := g.NextRoundType()
		if err != nil {
			return GameResult{}, err
		}
		if t.IsFesta() {
			choice := game.FestaChoice{
				Leader: uint8(rng.IntN(engine.NumSeats)),
				Nulos:  rng.IntN(2) == 0,
				Trump:  engine.NoSuit,
			}
			if !choice.Nulos {
				choice.Trump = uint8(rng.IntN(4))
			}
			if err := g.SetFestaChoice(t, choice); err != nil {
				return GameResult{}, err
			}
		}
		cfg, err := g.NextConfig()
		if err != nil {
			return GameResult{}, err
		}
		r, err := engine.NewDealtRound(cfg, rng)
		if err != nil {
			return GameResult{}, err
		}
		for _, mc := range mcs {
			mc.StartRound(r)
		}
		if err := playRound(r, choosers, mcs); err != nil {
			return GameResult{}, err
		}
		if err := g.RecordRound(r); err != nil {
			return GameResult{}, err
		}
	}

	res := GameResult{ID: g.ID, Totals: g.Totals()}
	for _, mc := range mcs {
		res.TrialFailures += mc.TrialFailures
	}
	return res, nil
}

// playRound drives one round to completion, feeding every play to the
// Monte Carlo observers. Rounds whose penalty cards are all captured end
// early; the remaining tricks cannot move any score.
func playRound(r *engine.Round, choosers [engine.NumSeats]agent.Chooser, mcs []*agent.MonteCarlo) error {
	for !r.IsOver() {
		if err := r.StartTrick(); err != nil {
			return err
		}
		for !r.Current.Complete() {
			seat, err := r.ExpectedSeat()
			if err != nil {
				return err
			}
			mainSuit := engine.NoSuit
			if r.Current.NumPlays > 0 {
				mainSuit = r.Current.MainSuit
			}
			c, err := choosers[seat].Choose(r, seat, r.LegalPlays(seat))
			if err != nil {
				return err
			}
			if err := r.Play(seat, c); err != nil {
				return err
			}
			for _, mc := range mcs {
				mc.Observe(seat, c, mainSuit)
			}
		}
		if _, err := r.ResolveTrick(); err != nil {
			return err
		}
		if r.PenaltyExhausted() {
			break
		}
	}
	return nil
}
