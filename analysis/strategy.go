package analysis

import (
	"fmt"
	"sort"

	"solvermatch/card"
	"solvermatch/hand"
	"solvermatch/node"
)

// Confidence labels how concentrated the solver's frequency distribution is
// for one combo.
type Confidence byte

const (
	ConfidenceMixed     Confidence = 1
	ConfidenceLeaning   Confidence = 2
	ConfidenceCommitted Confidence = 3
)

var ConfidenceDictionary = map[Confidence]string{
	ConfidenceMixed:     "mixed",
	ConfidenceLeaning:   "leaning",
	ConfidenceCommitted: "committed",
}

func (c Confidence) String() string {
	if name, ok := ConfidenceDictionary[c]; ok {
		return name
	}
	return "unknown"
}

const (
	committedFreq = 0.80
	leaningFreq   = 0.60
)

// StrategyAction is one solver-recommended action for the hero combo.
type StrategyAction struct {
	Label string  // "Check", "Bet 75%", "Raise 250%"
	Freq  float64 // solver frequency in [0,1]
	EVBB  float64
}

// ComboStrategy is the solver's play for hero's literal combo: top two
// actions by frequency, plus the combo's weight in the solved range.
type ComboStrategy struct {
	Combo       string
	RangeWeight float64
	Actions     []StrategyAction
	Confidence  Confidence
}

// ComputeComboStrategy reduces the hero seat's tables to the top actions
// for hero's combo.
func ComputeComboStrategy(hole []card.Card, seat *node.SeatTables) (ComboStrategy, error) {
	idx := card.ComboIndex(hole[0], hole[1])
	if idx < 0 || idx >= len(seat.Freq) {
		return ComboStrategy{}, fmt.Errorf("combo index %d out of range", idx)
	}
	freqs := seat.Freq[idx]
	evs := seat.EV[idx]

	order := make([]int, len(seat.Actions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return freqs[order[a]] > freqs[order[b]]
	})

	cs := ComboStrategy{
		Combo:       card.ComboAt(idx).String(),
		RangeWeight: float64(seat.Range[idx]),
	}
	for _, ai := range order {
		if len(cs.Actions) == 2 {
			break
		}
		if freqs[ai] <= 0 && len(cs.Actions) > 0 {
			break
		}
		cs.Actions = append(cs.Actions, StrategyAction{
			Label: actionLabel(seat.Actions[ai]),
			Freq:  float64(freqs[ai]),
			EVBB:  float64(evs[ai]),
		})
	}

	top := 0.0
	if len(cs.Actions) > 0 {
		top = cs.Actions[0].Freq
	}
	switch {
	case top >= committedFreq:
		cs.Confidence = ConfidenceCommitted
	case top >= leaningFreq:
		cs.Confidence = ConfidenceLeaning
	default:
		cs.Confidence = ConfidenceMixed
	}
	return cs, nil
}

func actionLabel(a node.ActionDesc) string {
	switch a.Type {
	case hand.ActionCheck:
		return "Check"
	case hand.ActionFold:
		return "Fold"
	case hand.ActionCall:
		return "Call"
	case hand.ActionBet:
		return fmt.Sprintf("Bet %d%%", a.SizePct)
	case hand.ActionRaise:
		return fmt.Sprintf("Raise %d%%", a.SizePct)
	}
	return "Unknown"
}
