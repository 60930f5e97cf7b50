package node

import (
	"solvermatch/card"
	"solvermatch/hand"
)

// ActionDesc is one entry of a seat's action menu at the solved node.
// SizePct is the wager size as a percentage of the pot; zero for
// check/fold/call.
type ActionDesc struct {
	Type    hand.ActionType
	SizePct uint16
}

// SeatTables holds one seat's solved strategy: the range the solution was
// computed for plus per-combo action frequencies and EVs. All tables are
// indexed by card.ComboIndex.
type SeatTables struct {
	Actions []ActionDesc
	Range   []float32   // len card.ComboCount, combo weight in [0,1]
	Freq    [][]float32 // [combo][action], rows sum to <= 1
	EV      [][]float32 // [combo][action], big blinds
}

// SolverNode is a fully decoded precomputed solution for one spot.
type SolverNode struct {
	Board      []card.Card
	PotBB      float32
	EffStackBB float32
	OOP        SeatTables
	IP         SeatTables
}

// SeatFor returns the tables for the hero's relative seat.
func (n *SolverNode) SeatFor(heroIP bool) *SeatTables {
	if heroIP {
		return &n.IP
	}
	return &n.OOP
}

// VillainFor returns the tables for the seat opposing the hero.
func (n *SolverNode) VillainFor(heroIP bool) *SeatTables {
	if heroIP {
		return &n.OOP
	}
	return &n.IP
}
