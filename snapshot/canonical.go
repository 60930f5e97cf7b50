package snapshot

import (
	"math"

	"solvermatch/hand"
)

// Pot-relative size buckets. A wager is bucketed by its size as a
// percentage of the pot before the wager; the fixed table absorbs sizing
// noise so near-identical spots hash identically.
var (
	bucketUpperPct = []float64{5, 15, 25, 33, 45, 55, 70, 85, 115, 150, 200, 250}
	bucketLabels   = []string{"5", "10", "20", "30", "40", "50", "60", "75", "100", "133", "175", "225"}
)

// sizeBucket maps a pot-relative percentage onto its bucket label.
func sizeBucket(pct float64) string {
	if pct <= 0 {
		return "0"
	}
	for i, upper := range bucketUpperPct {
		if pct <= upper {
			return bucketLabels[i]
		}
	}
	return "MAX"
}

// Canonicalize turns a raw action into a symbolic token independent of
// absolute chip size. potBefore is the pot before the wager, in chips.
func Canonicalize(a hand.Action, potBefore, bigBlind int64) Token {
	tok := Token{Type: a.Type}
	switch a.Type {
	case hand.ActionCheck:
		tok.Compact = "X"
	case hand.ActionFold:
		tok.Compact = "F"
	case hand.ActionCall:
		tok.Compact = "C"
	case hand.ActionBet, hand.ActionRaise:
		tok.AmountBB = roundBB(float64(a.Amount) / float64(bigBlind))
		pct := 0.0
		if potBefore > 0 {
			pct = 100 * float64(a.Amount) / float64(potBefore)
		}
		prefix := "B"
		if a.Type == hand.ActionRaise {
			prefix = "R"
		}
		tok.Compact = prefix + sizeBucket(pct)
	}
	return tok
}

func roundBB(v float64) float64 {
	return math.Round(v*100) / 100
}

// potTypeFromPreflop derives the pot classification from the number of
// preflop raises.
func potTypeFromPreflop(actions []hand.Action) PotType {
	raises := 0
	for _, a := range actions {
		if a.Street != hand.StreetPreflop {
			break
		}
		if a.Type == hand.ActionBet || a.Type == hand.ActionRaise {
			raises++
		}
	}
	switch {
	case raises == 0:
		return PotTypeLimped
	case raises == 1:
		return PotTypeSingle
	case raises == 2:
		return PotTypeThreeBet
	default:
		return PotTypeFourBet
	}
}
