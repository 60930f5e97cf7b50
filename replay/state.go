package replay

import (
	"solvermatch/card"
	"solvermatch/hand"
)

// SeatState is one seat's view inside a GameState.
type SeatState struct {
	Index     int
	Stack     int64
	Committed int64 // chips committed on the current street
	Folded    bool
}

// GameState is an immutable view of the table between actions. Transitions
// never mutate a state in place; Apply returns a fresh value.
type GameState struct {
	Street hand.Street
	Board  []card.Card
	Pot    int64
	Seats  []SeatState
}

func (s GameState) clone() GameState {
	out := s
	out.Board = append([]card.Card{}, s.Board...)
	out.Seats = append([]SeatState{}, s.Seats...)
	return out
}

// Seat returns the state of the seat with the given index.
func (s GameState) Seat(idx int) (SeatState, bool) {
	for _, ss := range s.Seats {
		if ss.Index == idx {
			return ss, true
		}
	}
	return SeatState{}, false
}

// ActiveSeats returns the indices of seats that have not folded, ascending.
func (s GameState) ActiveSeats() []int {
	out := make([]int, 0, len(s.Seats))
	for _, ss := range s.Seats {
		if !ss.Folded {
			out = append(out, ss.Index)
		}
	}
	return out
}

// initialState seeds the replay: full starting stacks, pot primed with the
// blinds and antes. Blind posts arriving later in the script only move the
// seat's stack, never the pot, so the forced money is not counted twice.
func initialState(h *hand.Hand) GameState {
	st := GameState{
		Street: hand.StreetPreflop,
		Pot:    h.Table.SmallBlind + h.Table.BigBlind + h.Table.Ante*int64(len(h.Seats)),
		Seats:  make([]SeatState, 0, len(h.Seats)),
	}
	for _, s := range h.Seats {
		st.Seats = append(st.Seats, SeatState{Index: s.Index, Stack: s.Stack})
	}
	return st
}

// advanceStreet moves the state to the given street, revealing community
// cards from the full board and resetting per-street commitments.
// Streets only move forward.
func advanceStreet(s GameState, to hand.Street, fullBoard []card.Card) GameState {
	out := s.clone()
	for out.Street < to {
		out.Street++
		reveal := 0
		switch out.Street {
		case hand.StreetFlop:
			reveal = 3
		case hand.StreetTurn, hand.StreetRiver:
			reveal = 1
		}
		have := len(out.Board)
		for i := 0; i < reveal && have+i < len(fullBoard); i++ {
			out.Board = append(out.Board, fullBoard[have+i])
		}
		for i := range out.Seats {
			out.Seats[i].Committed = 0
		}
	}
	return out
}

// applyAction is the pure transition over one script entry. The action's
// Amount is the total street commitment it brings the seat to.
func applyAction(s GameState, a hand.Action) GameState {
	out := s.clone()
	for i := range out.Seats {
		if out.Seats[i].Index != a.Seat {
			continue
		}
		switch a.Type {
		case hand.ActionFold:
			out.Seats[i].Folded = true
		case hand.ActionCheck, hand.ActionNone:
			// no-op
		case hand.ActionPost:
			delta := a.Amount - out.Seats[i].Committed
			if delta > out.Seats[i].Stack {
				delta = out.Seats[i].Stack
			}
			if delta > 0 {
				out.Seats[i].Stack -= delta
				out.Seats[i].Committed += delta
			}
		case hand.ActionBet, hand.ActionCall, hand.ActionRaise:
			delta := a.Amount - out.Seats[i].Committed
			if delta > out.Seats[i].Stack {
				delta = out.Seats[i].Stack
			}
			if delta > 0 {
				out.Seats[i].Stack -= delta
				out.Seats[i].Committed += delta
				out.Pot += delta
			}
		}
		break
	}
	return out
}
