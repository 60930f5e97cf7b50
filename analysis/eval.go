package analysis

import (
	"hash/fnv"
	"math/rand"

	"github.com/paulhankin/poker"

	"solvermatch/card"
)

// scoreDead marks a combo that collides with the board or runout.
const scoreDead int16 = -32768

func evalCard(c card.Card) poker.Card {
	var suit poker.Suit
	switch c.Suit() {
	case card.Spade:
		suit = poker.Spade
	case card.Heart:
		suit = poker.Heart
	case card.Club:
		suit = poker.Club
	case card.Diamond:
		suit = poker.Diamond
	}
	pc, err := poker.MakeCard(suit, poker.Rank(c.Rank()))
	if err != nil {
		// Unreachable for cards that passed card.Parse.
		panic(err)
	}
	return pc
}

// comboScores ranks every hole-card combo on a complete 5-card board.
// Combos sharing a card with the board come back as scoreDead.
func comboScores(board []card.Card) [card.ComboCount]int16 {
	var scores [card.ComboCount]int16
	var seven [7]poker.Card
	used := boardMask(board)
	for i, c := range board {
		seven[i] = evalCard(c)
	}
	for idx := 0; idx < card.ComboCount; idx++ {
		if used&comboMasks[idx] != 0 {
			scores[idx] = scoreDead
			continue
		}
		cb := card.ComboAt(idx)
		seven[5] = evalCard(cb.Lo)
		seven[6] = evalCard(cb.Hi)
		scores[idx] = poker.Eval7(&seven)
	}
	return scores
}

func cardBit(c card.Card) uint64 {
	return 1 << uint(c.Ordinal())
}

var comboMasks = func() [card.ComboCount]uint64 {
	var m [card.ComboCount]uint64
	for i := range m {
		cb := card.ComboAt(i)
		m[i] = cardBit(cb.Lo) | cardBit(cb.Hi)
	}
	return m
}()

func boardMask(cards []card.Card) uint64 {
	var m uint64
	for _, c := range cards {
		m |= cardBit(c)
	}
	return m
}

// runouts lists the board completions used for equity. River boards are
// already complete; turn boards enumerate every river exactly; flop boards
// use a fixed-size sample drawn from a board-seeded generator so repeated
// runs agree.
const flopSampleRunouts = 64

func runouts(board []card.Card) [][]card.Card {
	switch len(board) {
	case 5:
		return [][]card.Card{nil}
	case 4:
		used := boardMask(board)
		var outs [][]card.Card
		for _, c := range card.Deck() {
			if used&cardBit(c) == 0 {
				outs = append(outs, []card.Card{c})
			}
		}
		return outs
	case 3:
		used := boardMask(board)
		var live []card.Card
		for _, c := range card.Deck() {
			if used&cardBit(c) == 0 {
				live = append(live, c)
			}
		}
		rng := rand.New(rand.NewSource(boardSeed(board)))
		outs := make([][]card.Card, 0, flopSampleRunouts)
		for len(outs) < flopSampleRunouts {
			a := rng.Intn(len(live))
			b := rng.Intn(len(live))
			if a == b {
				continue
			}
			outs = append(outs, []card.Card{live[a], live[b]})
		}
		return outs
	default:
		return nil
	}
}

func boardSeed(board []card.Card) int64 {
	h := fnv.New64a()
	for _, c := range board {
		h.Write([]byte{byte(c)})
	}
	return int64(h.Sum64())
}
