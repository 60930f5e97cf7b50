package analysis

import (
	"solvermatch/card"
	"solvermatch/feature"
)

// BoardAnalysis is the human-facing texture description of the snapshot
// board.
type BoardAnalysis struct {
	Texture feature.Texture
	Suits   string // "monotone", "two_tone", "rainbow"
	Paired  bool
	Trips   bool
	Tags    []string
}

// AnalyzeBoardContext describes the board for the solver block.
func AnalyzeBoardContext(board []card.Card) BoardAnalysis {
	tx := feature.AnalyzeBoard(board)
	ba := BoardAnalysis{Texture: tx, Paired: tx.Paired}

	switch {
	case tx.Monotone:
		ba.Suits = "monotone"
	case tx.TwoTone:
		ba.Suits = "two_tone"
	default:
		ba.Suits = "rainbow"
	}

	rankCount := map[byte]int{}
	for _, c := range board {
		rankCount[c.Rank()]++
	}
	for _, n := range rankCount {
		if n >= 3 {
			ba.Trips = true
		}
	}

	ba.Tags = append(ba.Tags, ba.Suits)
	if tx.Paired {
		ba.Tags = append(ba.Tags, "paired")
	}
	if ba.Trips {
		ba.Tags = append(ba.Tags, "trips")
	}
	if tx.Connected {
		ba.Tags = append(ba.Tags, "connected")
	}
	if tx.AcePresent {
		ba.Tags = append(ba.Tags, "ace_high")
	}
	if tx.Secondary&feature.SecondaryWheel != 0 {
		ba.Tags = append(ba.Tags, "wheel")
	}
	if tx.Secondary&feature.SecondaryBroadway != 0 {
		ba.Tags = append(ba.Tags, "broadway")
	}
	return ba
}
