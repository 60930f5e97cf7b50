package replay

import (
	"testing"

	"solvermatch/hand"
)

// scenarioHand is the shared fixture: hero defends the big blind against a
// button open, check-calls the flop, checks the turn through, and folds the
// river to a second barrel.
func scenarioHand() *hand.Hand {
	return &hand.Hand{
		HandID:   "t1",
		GameType: hand.GameTypeCash,
		Table:    hand.Table{SmallBlind: 50, BigBlind: 100},
		Seats: []hand.Seat{
			{Index: 0, Stack: 10000, Position: "BTN"},
			{Index: 1, Stack: 10000, Position: "SB"},
			{Index: 2, Stack: 10000, Position: "BB", Hero: true, Hole: []string{"Ah", "Qd"}},
		},
		Board: hand.Board{
			Flop:  []string{"Ks", "7h", "2d"},
			Turn:  "5c",
			River: "Jh",
		},
		Actions: []hand.Action{
			{Street: hand.StreetPreflop, Seat: 1, Type: hand.ActionPost, Amount: 50},
			{Street: hand.StreetPreflop, Seat: 2, Type: hand.ActionPost, Amount: 100},
			{Street: hand.StreetPreflop, Seat: 0, Type: hand.ActionRaise, Amount: 400},
			{Street: hand.StreetPreflop, Seat: 1, Type: hand.ActionFold},
			{Street: hand.StreetPreflop, Seat: 2, Type: hand.ActionCall, Amount: 400},
			{Street: hand.StreetFlop, Seat: 2, Type: hand.ActionCheck},
			{Street: hand.StreetFlop, Seat: 0, Type: hand.ActionBet, Amount: 400},
			{Street: hand.StreetFlop, Seat: 2, Type: hand.ActionCall, Amount: 400},
			{Street: hand.StreetTurn, Seat: 2, Type: hand.ActionCheck},
			{Street: hand.StreetTurn, Seat: 0, Type: hand.ActionCheck},
			{Street: hand.StreetRiver, Seat: 0, Type: hand.ActionBet, Amount: 1200},
			{Street: hand.StreetRiver, Seat: 2, Type: hand.ActionFold},
		},
	}
}

func TestTrackerPotAndStreets(t *testing.T) {
	tr, err := NewTracker(scenarioHand())
	if err != nil {
		t.Fatalf("NewTracker err: %v", err)
	}

	init := tr.StateBefore(0)
	if init.Pot != 150 {
		t.Fatalf("initial pot = %d, want 150 (blinds)", init.Pot)
	}
	if init.Street != hand.StreetPreflop {
		t.Fatalf("initial street = %s, want preflop", init.Street)
	}

	// State before the hero's flop check: flop revealed, preflop money in.
	flop := tr.StateBefore(5)
	if flop.Street != hand.StreetFlop {
		t.Fatalf("street = %s, want flop", flop.Street)
	}
	if len(flop.Board) != 3 {
		t.Fatalf("flop board has %d cards, want 3", len(flop.Board))
	}
	if flop.Pot != 850 {
		t.Fatalf("flop pot = %d, want 850", flop.Pot)
	}

	// State before the hero's river fold: both barrels' streets revealed.
	river := tr.StateBefore(11)
	if river.Street != hand.StreetRiver {
		t.Fatalf("street = %s, want river", river.Street)
	}
	if len(river.Board) != 5 {
		t.Fatalf("river board has %d cards, want 5", len(river.Board))
	}
	if river.Pot != 850+800+1200 {
		t.Fatalf("river pot = %d, want %d", river.Pot, 850+800+1200)
	}

	sb, _ := river.Seat(1)
	if !sb.Folded {
		t.Fatalf("small blind should be folded by the river")
	}
	hero, _ := river.Seat(2)
	if hero.Stack != 10000-400-400 {
		t.Fatalf("hero stack = %d, want %d", hero.Stack, 10000-400-400)
	}
}

func TestTrackerStatesAreIndependent(t *testing.T) {
	tr, err := NewTracker(scenarioHand())
	if err != nil {
		t.Fatalf("NewTracker err: %v", err)
	}

	a := tr.StateBefore(6)
	b := tr.StateBefore(6)
	a.Seats[0].Stack = -1
	a.Board[0] = 0
	if b.Seats[0].Stack == -1 || b.Board[0] == 0 {
		t.Fatalf("mutating one captured state leaked into the arena")
	}

	f := tr.Final()
	f.Seats[0].Stack = -1
	f.Board[0] = 0
	g := tr.Final()
	if g.Seats[0].Stack == -1 || g.Board[0] == 0 {
		t.Fatalf("mutating the final state leaked into the arena")
	}
}

func TestTrackerDeterminism(t *testing.T) {
	h := scenarioHand()
	t1, err := NewTracker(h)
	if err != nil {
		t.Fatalf("NewTracker err: %v", err)
	}
	t2, err := NewTracker(h)
	if err != nil {
		t.Fatalf("NewTracker err: %v", err)
	}
	for i := range t1.states {
		s1, s2 := t1.states[i], t2.states[i]
		if s1.Pot != s2.Pot || s1.Street != s2.Street || len(s1.Board) != len(s2.Board) {
			t.Fatalf("state %d differs across identical replays", i)
		}
	}
}

func TestTrackerRejectsInvalidHand(t *testing.T) {
	h := scenarioHand()
	h.Seats[2].Hero = false
	if _, err := NewTracker(h); err == nil {
		t.Fatalf("expected validation error for hand without hero")
	}

	h2 := scenarioHand()
	h2.Actions = append(h2.Actions, hand.Action{Street: hand.StreetFlop, Seat: 0, Type: hand.ActionCheck})
	if _, err := NewTracker(h2); err == nil {
		t.Fatalf("expected validation error for backwards street order")
	}
}
