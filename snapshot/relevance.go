package snapshot

import (
	"solvermatch/hand"
	"solvermatch/replay"
)

// Relevant reports whether the fixed villain can still model the decision
// point heads-up. The check only inspects the current street's actions;
// earlier-street aggression by a third seat is deliberately ignored.
func Relevant(dp replay.DecisionPoint, heroIdx, villainIdx int) bool {
	if !dp.State.Street.Postflop() {
		return false
	}
	if v, ok := dp.State.Seat(villainIdx); !ok || v.Folded {
		return false
	}

	// A third seat betting or raising on this street means the fixed
	// villain is no longer the street's sole aggressor.
	for i := len(dp.Prior) - 1; i >= 0; i-- {
		a := dp.Prior[i]
		if a.Street != dp.State.Street {
			break
		}
		if a.Seat == heroIdx || a.Seat == villainIdx {
			continue
		}
		if a.Type == hand.ActionBet || a.Type == hand.ActionRaise {
			return false
		}
	}
	return true
}
