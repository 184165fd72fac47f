package engine

// LegalPlays returns the set of cards the seat may lay into the current
// trick. Returns the empty set when no trick is in progress.
func (r *Round) LegalPlays(seat uint8) CardSet {
	if !r.InTrick {
		return 0
	}
	return legalPlays(r.Hands[seat], &r.Current, r.Config.Type)
}

// legalPlays applies the suit-following rules to an arbitrary hand. It is
// a free function so simulation can query legality for sampled hands
// without mutating a round.
//
// Rules, in order:
//  1. Leading: any card.
//  2. Holding the main suit: must follow it.
//  3. Off the main suit in a forced-discard round (copas, homens,
//     mulheres) while holding a matching card: must discard one.
//  4. Otherwise: any card.
func legalPlays(hand CardSet, t *Trick, rt RoundType) CardSet {
	if hand.IsEmpty() {
		return 0
	}
	if t.NumPlays == 0 {
		return hand
	}
	if follow := hand.OfSuit(t.MainSuit); !follow.IsEmpty() {
		return follow
	}
	if pred := rt.Policy().ForcedDiscard; pred != nil {
		if forced := hand.Filter(pred); !forced.IsEmpty() {
			return forced
		}
	}
	return hand
}
