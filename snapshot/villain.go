package snapshot

import (
	"sort"

	"solvermatch/hand"
	"solvermatch/replay"
)

// SelectVillain chooses the single opposing seat the hand's postflop spots
// are modeled heads-up against. It runs once per hand, seeded by the first
// postflop decision point, and the result is held fixed afterwards.
//
// Preference order with several live villains: the most recent aggressor on
// the current street, else the first active seat after the hero in seat
// order (wrapping).
func SelectVillain(first replay.DecisionPoint, heroIdx int) (int, bool) {
	var candidates []int
	for _, ss := range first.State.Seats {
		if ss.Folded || ss.Index == heroIdx {
			continue
		}
		candidates = append(candidates, ss.Index)
	}

	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	}

	active := make(map[int]bool, len(candidates))
	for _, idx := range candidates {
		active[idx] = true
	}

	// Most recent bet/raise on the current street by a live non-hero seat.
	street := first.State.Street
	for i := len(first.Prior) - 1; i >= 0; i-- {
		a := first.Prior[i]
		if a.Street != street {
			break
		}
		if a.Seat == heroIdx {
			continue
		}
		if (a.Type == hand.ActionBet || a.Type == hand.ActionRaise) && active[a.Seat] {
			return a.Seat, true
		}
	}

	// Positional fallback: first active seat past the hero, wrapping.
	sort.Ints(candidates)
	for _, idx := range candidates {
		if idx > heroIdx {
			return idx, true
		}
	}
	return candidates[0], true
}
