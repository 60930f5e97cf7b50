package replay

import (
	"solvermatch/card"
	"solvermatch/hand"
)

// Tracker replays a hand's action script once and stores every intermediate
// state in an index-addressed arena. states[i] is the state just before
// Actions[i] is applied; states[len(Actions)] is the final state.
type Tracker struct {
	src    *hand.Hand
	board  []card.Card
	states []GameState
}

// NewTracker validates the hand and replays it fully.
func NewTracker(h *hand.Hand) (*Tracker, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	board, err := h.BoardCards()
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		src:    h,
		board:  board,
		states: make([]GameState, 0, len(h.Actions)+1),
	}

	cur := initialState(h)
	for _, a := range h.Actions {
		if a.Street > cur.Street {
			cur = advanceStreet(cur, a.Street, board)
		}
		t.states = append(t.states, cur)
		cur = applyAction(cur, a)
	}
	t.states = append(t.states, cur)
	return t, nil
}

// Hand returns the source record. Callers must treat it as read-only.
func (t *Tracker) Hand() *hand.Hand { return t.src }

// Board returns the full revealed board.
func (t *Tracker) Board() []card.Card {
	return append([]card.Card{}, t.board...)
}

// StateBefore returns the state as of just before action i was applied.
// The returned state is a copy; mutating it leaves the arena intact.
func (t *Tracker) StateBefore(i int) GameState {
	return t.states[i].clone()
}

// Final returns the state after the last action, as a copy.
func (t *Tracker) Final() GameState {
	return t.states[len(t.states)-1].clone()
}
