package snapshot

import (
	"fmt"

	"solvermatch/card"
	"solvermatch/hand"
)

// PotType classifies how the pot was built preflop.
type PotType byte

const (
	PotTypeUnknown  PotType = 0
	PotTypeLimped   PotType = 1
	PotTypeSingle   PotType = 2 // single-raised
	PotTypeThreeBet PotType = 3
	PotTypeFourBet  PotType = 4 // four-bet or more
)

var PotTypeDictionary = map[PotType]string{
	PotTypeUnknown:  "unknown",
	PotTypeLimped:   "limped",
	PotTypeSingle:   "srp",
	PotTypeThreeBet: "3bet",
	PotTypeFourBet:  "4bet",
}

func (p PotType) String() string {
	if name, ok := PotTypeDictionary[p]; ok {
		return name
	}
	return "unknown"
}

// Token is one canonicalized action in a snapshot's history. Display keeps
// the big-blind amount; Compact is the pot-bucketed form used for hashing
// and index lookups.
type Token struct {
	Type     hand.ActionType
	AmountBB float64
	Compact  string
}

func (t Token) String() string {
	switch t.Type {
	case hand.ActionCheck:
		return "Check"
	case hand.ActionFold:
		return "Fold"
	case hand.ActionCall:
		return "Call"
	case hand.ActionBet:
		return fmt.Sprintf("Bet %.2f", t.AmountBB)
	case hand.ActionRaise:
		return fmt.Sprintf("Raise %.2f", t.AmountBB)
	}
	return "Unknown"
}

// Input is the canonical description of one postflop hero decision, the
// unit the retrieval layer matches against the solver corpus.
type Input struct {
	Street      hand.Street
	Board       []card.Card
	PotBB       float64
	EffStackBB  float64
	GameType    hand.GameType
	PotType     PotType
	OOPPosition string
	IPPosition  string
	HeroIP      bool
	HeroHole    []card.Card
	History     []Token
	Tags        []string
}

// HistoryStrings renders the display form of the action history.
func (in Input) HistoryStrings() []string {
	out := make([]string, len(in.History))
	for i, t := range in.History {
		out[i] = t.String()
	}
	return out
}

// CompactHistory renders the pot-bucketed form, one token per action.
func (in Input) CompactHistory() string {
	s := ""
	for i, t := range in.History {
		if i > 0 {
			s += "-"
		}
		s += t.Compact
	}
	return s
}

// VillainPosition is the primary villain's normalized position name.
func (in Input) VillainPosition() string {
	if in.HeroIP {
		return in.OOPPosition
	}
	return in.IPPosition
}

// HeroPosition returns the hero's named position.
func (in Input) HeroPosition() string {
	if in.HeroIP {
		return in.IPPosition
	}
	return in.OOPPosition
}
