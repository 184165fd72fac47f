package game

import "github.com/king-engine/king/engine"

// Entry records one seat's outcome for one round.
type Entry struct {
	Type   engine.RoundType
	Nulos  bool // meaningful only for festa entries
	Count  int  // tricks or penalty cards, per the round type
	Points int
}

// Ledger accumulates per-seat round outcomes across a session. The engine
// only reports counts; the ledger applies the points table and keeps the
// running totals.
type Ledger struct {
	Entries [engine.NumSeats][]Entry
}

// Record appends a finished round's counts for every seat.
func (l *Ledger) Record(r *engine.Round) {
	for seat := uint8(0); seat < engine.NumSeats; seat++ {
		count := r.PenaltyCount(seat)
		l.Entries[seat] = append(l.Entries[seat], Entry{
			Type:   r.Config.Type,
			Nulos:  r.Config.Nulos,
			Count:  count,
			Points: engine.RoundPoints(r.Config, count),
		})
	}
}

// RecordSkipped appends a zero entry for a round that was not played.
func (l *Ledger) RecordSkipped(cfg engine.RoundConfig) {
	for seat := uint8(0); seat < engine.NumSeats; seat++ {
		l.Entries[seat] = append(l.Entries[seat], Entry{Type: cfg.Type, Nulos: cfg.Nulos})
	}
}

// Total returns the seat's cumulative points.
func (l *Ledger) Total(seat uint8) int {
	sum := 0
	for _, e := range l.Entries[seat] {
		sum += e.Points
	}
	return sum
}

// Totals returns cumulative points for every seat.
func (l *Ledger) Totals() [engine.NumSeats]int {
	var out [engine.NumSeats]int
	for seat := uint8(0); seat < engine.NumSeats; seat++ {
		out[seat] = l.Total(seat)
	}
	return out
}
