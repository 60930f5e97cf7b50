package snapshot

import (
	"fmt"

	"solvermatch/card"
	"solvermatch/hand"
	"solvermatch/replay"
)

// Assemble combines a decision point with the chosen villain into a
// canonical Input. The action history accumulates every postflop action
// taken by the hero or the villain before this point, canonicalized with
// the pot as it stood when each action was made; preflop is always pruned,
// and so is the current-street villain wager the hero is facing.
func Assemble(t *replay.Tracker, dp replay.DecisionPoint, heroIdx, villainIdx int) (Input, error) {
	h := t.Hand()
	hero, ok := h.SeatByIndex(heroIdx)
	if !ok {
		return Input{}, fmt.Errorf("hero seat %d not found", heroIdx)
	}
	villain, ok := h.SeatByIndex(villainIdx)
	if !ok {
		return Input{}, fmt.Errorf("villain seat %d not found", villainIdx)
	}

	heroState, ok := dp.State.Seat(heroIdx)
	if !ok {
		return Input{}, fmt.Errorf("hero seat %d missing from state", heroIdx)
	}
	villainState, ok := dp.State.Seat(villainIdx)
	if !ok {
		return Input{}, fmt.Errorf("villain seat %d missing from state", villainIdx)
	}

	bb := h.Table.BigBlind
	eff := heroState.Stack
	if villainState.Stack < eff {
		eff = villainState.Stack
	}

	heroIP, heroPos, villainPos := resolveSeats(hero, villain)
	oopPos, ipPos := heroPos, villainPos
	if heroIP {
		oopPos, ipPos = villainPos, heroPos
	}

	type lineEntry struct {
		action hand.Action
		pot    int64
	}
	line := make([]lineEntry, 0, len(dp.Prior))
	for i, a := range dp.Prior {
		if !a.Street.Postflop() || !a.Type.Decision() {
			continue
		}
		if a.Seat != heroIdx && a.Seat != villainIdx {
			continue
		}
		line = append(line, lineEntry{action: a, pot: t.StateBefore(i).Pot})
	}
	// The wager the hero is facing right now is the question, not part of
	// the line taken so far.
	if n := len(line); n > 0 {
		last := line[n-1].action
		if last.Seat == villainIdx && last.Street == dp.State.Street && last.Type.IsWager() {
			line = line[:n-1]
		}
	}
	history := make([]Token, 0, len(line))
	for _, e := range line {
		history = append(history, Canonicalize(e.action, e.pot, bb))
	}

	hole, err := h.HeroHole()
	if err != nil {
		return Input{}, err
	}

	return Input{
		Street:      dp.State.Street,
		Board:       append([]card.Card{}, dp.State.Board...),
		PotBB:       roundBB(float64(dp.State.Pot) / float64(bb)),
		EffStackBB:  roundBB(float64(eff) / float64(bb)),
		GameType:    h.GameType,
		PotType:     potTypeFromPreflop(h.Actions),
		OOPPosition: oopPos,
		IPPosition:  ipPos,
		HeroIP:      heroIP,
		HeroHole:    hole,
		History:     history,
	}, nil
}
