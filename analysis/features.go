package analysis

import (
	"math"

	"solvermatch/card"
)

// CardSwing is the equity change one specific next card would cause.
type CardSwing struct {
	Card      card.Card
	EquityPct float64
	SwingPct  float64 // EquityPct minus current equity
}

// Sensitivity summarizes how volatile hero's equity is against the next
// card. Empty on the river.
type Sensitivity struct {
	Swings   []CardSwing
	Best     CardSwing
	Worst    CardSwing
	MeanAbs  float64
	Variance float64
}

// HandFeatures describes hero's literal holding against the villain range.
type HandFeatures struct {
	Tier        HandTier
	Draws       DrawFlags
	EquityPct   float64
	Sensitivity Sensitivity
}

// ComputeHandFeatures classifies hero's combo and measures its equity and
// one-card-forward sensitivity against the villain range.
func ComputeHandFeatures(hole []card.Card, board []card.Card, villainRange []float32) HandFeatures {
	hf := HandFeatures{
		Tier:  ClassifyHand(hole, board),
		Draws: ClassifyDraws(hole, board),
	}
	hf.EquityPct, _ = heroComboEquity(hole, board, villainRange)
	if len(board) < 5 {
		hf.Sensitivity = computeSensitivity(hole, board, villainRange, hf.EquityPct)
	}
	return hf
}

func computeSensitivity(hole []card.Card, board []card.Card, villainRange []float32, baseEquity float64) Sensitivity {
	used := boardMask(board) | cardBit(hole[0]) | cardBit(hole[1])

	var s Sensitivity
	next := make([]card.Card, 0, 5)
	for _, c := range card.Deck() {
		if used&cardBit(c) != 0 {
			continue
		}
		next = append(next[:0], board...)
		next = append(next, c)
		eq, live := heroComboEquity(hole, next, villainRange)
		if !live {
			// The card strips the villain range entirely; no matchup left.
			continue
		}
		s.Swings = append(s.Swings, CardSwing{Card: c, EquityPct: eq, SwingPct: eq - baseEquity})
	}
	if len(s.Swings) == 0 {
		return s
	}

	s.Best, s.Worst = s.Swings[0], s.Swings[0]
	var sumAbs, sum float64
	for _, sw := range s.Swings {
		if sw.SwingPct > s.Best.SwingPct {
			s.Best = sw
		}
		if sw.SwingPct < s.Worst.SwingPct {
			s.Worst = sw
		}
		sumAbs += math.Abs(sw.SwingPct)
		sum += sw.SwingPct
	}
	n := float64(len(s.Swings))
	s.MeanAbs = sumAbs / n

	mean := sum / n
	var sq float64
	for _, sw := range s.Swings {
		d := sw.SwingPct - mean
		sq += d * d
	}
	s.Variance = sq / n
	return s
}
