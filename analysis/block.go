// Package analysis derives the strategic summary a coaching layer consumes
// from a decoded solver node and the live hand context. Every sub-transform
// is pure; identical inputs give identical blocks.
package analysis

import (
	"fmt"

	"solvermatch/node"
	"solvermatch/snapshot"
)

// SolverBlock combines the node's solved strategy with hero's literal
// holding. Recomputed per request, never persisted.
type SolverBlock struct {
	Board    BoardAnalysis
	Equity   RangeEquity
	Blockers BlockerImpact
	Hand     HandFeatures
	Strategy ComboStrategy
}

// BuildSolverBlock derives the full block. The hero seat inside the node is
// picked by the snapshot's relative position.
func BuildSolverBlock(n *node.SolverNode, in snapshot.Input) (*SolverBlock, error) {
	if len(in.HeroHole) != 2 {
		return nil, fmt.Errorf("hero hole cards required, got %d", len(in.HeroHole))
	}
	board := in.Board
	if len(board) < 3 || len(board) > 5 {
		return nil, fmt.Errorf("invalid board size %d", len(board))
	}
	boardUsed := boardMask(board)
	for _, c := range in.HeroHole {
		if boardUsed&cardBit(c) != 0 {
			return nil, fmt.Errorf("hero card %s duplicated on board", c)
		}
	}

	heroSeat := n.SeatFor(in.HeroIP)
	villainSeat := n.VillainFor(in.HeroIP)

	duel := duelRanges(board, heroSeat.Range, villainSeat.Range)

	strategy, err := ComputeComboStrategy(in.HeroHole, heroSeat)
	if err != nil {
		return nil, err
	}

	return &SolverBlock{
		Board:    AnalyzeBoardContext(board),
		Equity:   summarizeDuel(duel),
		Blockers: ComputeBlockers(in.HeroHole, board, villainSeat.Range, duel),
		Hand:     ComputeHandFeatures(in.HeroHole, board, villainSeat.Range),
		Strategy: strategy,
	}, nil
}
