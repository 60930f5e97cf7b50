package replay

import "solvermatch/hand"

// DecisionPoint captures one postflop hero decision: the state just before
// the hero acted, the action itself, and every action that preceded it.
type DecisionPoint struct {
	Index       int // ordinal among the hand's decision points
	ActionIndex int // position in the source action script
	State       GameState
	Action      hand.Action
	Prior       []hand.Action
}

// DecisionPoints walks the replay once and emits one point per postflop
// hero decision. Preflop hero actions update state but are never emitted;
// the solver corpus is postflop-only.
func DecisionPoints(t *Tracker) []DecisionPoint {
	hero, ok := t.src.HeroSeat()
	if !ok {
		return nil
	}

	var out []DecisionPoint
	for i, a := range t.src.Actions {
		if a.Seat != hero.Index || !a.Type.Decision() {
			continue
		}
		state := t.StateBefore(i)
		if !state.Street.Postflop() {
			continue
		}
		out = append(out, DecisionPoint{
			Index:       len(out),
			ActionIndex: i,
			State:       state,
			Action:      a,
			Prior:       append([]hand.Action{}, t.src.Actions[:i]...),
		})
	}
	return out
}
