package engine

// Points per penalty unit, by round type.
const (
	PointsPerVaza    = -20
	PointsPerCopa    = -20
	PointsPerHomem   = -30
	PointsPerMulher  = -50
	PointsKing       = -160
	PointsPerLast    = -90
	PointsNulosBase  = 325
	PointsPerNulos   = -75
	PointsPerPositiv = 25
)

// RoundPoints converts a per-seat count into points for the round type.
// The count's meaning depends on the type: tricks won for vazas, last and
// festa rounds, penalty cards captured for copas, homens, mulheres and
// king.
func RoundPoints(cfg RoundConfig, count int) int {
	switch cfg.Type {
	case RoundVazas:
		return count * PointsPerVaza
	case RoundCopas:
		return count * PointsPerCopa
	case RoundHomens:
		return count * PointsPerHomem
	case RoundMulheres:
		return count * PointsPerMulher
	case RoundKing:
		return count * PointsKing
	case RoundLast:
		return count * PointsPerLast
	default: // festa
		if cfg.Nulos {
			return PointsNulosBase + count*PointsPerNulos
		}
		return count * PointsPerPositiv
	}
}

// PenaltyCount returns the seat's penalty-relevant count so far: captured
// penalty cards for card-based rounds, tricks won for vazas and festa
// rounds, and wins of the final two tricks for the last round.
func (r *Round) PenaltyCount(seat uint8) int {
	switch r.Config.Type {
	case RoundCopas, RoundHomens, RoundMulheres, RoundKing:
		return r.WonCards[seat].Filter(r.Config.Type.Policy().PenaltyCard).Len()
	case RoundLast:
		n := 0
		for _, idx := range [2]uint8{11, 12} {
			if idx < r.NumTricks && r.History[idx].Winner == int8(seat) {
				n++
			}
		}
		return n
	default:
		return int(r.TricksWon[seat])
	}
}

// Scores returns each seat's points for the round as played so far.
// Penalty rounds produce zero or negative values, festa positivos
// non-negative, festa nulos positive for seats that avoided tricks.
func (r *Round) Scores() [NumSeats]int {
	var out [NumSeats]int
	for seat := uint8(0); seat < NumSeats; seat++ {
		out[seat] = RoundPoints(r.Config, r.PenaltyCount(seat))
	}
	return out
}

// Utility returns the seat's score under the single maximize convention:
// higher is always better, for every round type.
func (r *Round) Utility(seat uint8) int {
	return RoundPoints(r.Config, r.PenaltyCount(seat))
}
