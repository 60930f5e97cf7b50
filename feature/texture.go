package feature

import "solvermatch/card"

// Texture is the fixed set of board-texture bytes carried in the feature
// vector (dims 31-38) and denormalized into node metadata for filtering.
type Texture struct {
	Paired        bool
	Monotone      bool
	TwoTone       bool
	Connected     bool
	RankArchetype byte // coarse high/mid/low composition of the flop, 0..27
	Secondary     byte // bit0: gapped, bit1: wheel cards, bit2: broadway heavy
	AcePresent    bool
	MaxRank       byte // highest rank, ace-high scale (2..14)
}

const (
	SecondaryGap      = 1 << 0
	SecondaryWheel    = 1 << 1
	SecondaryBroadway = 1 << 2
)

// rankArchetypeMax bounds the archetype code for normalization.
const rankArchetypeMax = 27

// AnalyzeBoard derives the texture of a revealed board (3 to 5 cards).
func AnalyzeBoard(board []card.Card) Texture {
	var t Texture
	if len(board) == 0 {
		return t
	}

	suitCounts := map[card.Suit]int{}
	rankCounts := map[byte]int{}
	var rankMask uint32
	for _, c := range board {
		suitCounts[c.Suit()]++
		rankCounts[c.Rank()]++
		rankMask |= 1 << uint(c.HighValue())
		if c.IsAce() {
			t.AcePresent = true
			rankMask |= 1 << 1 // ace also plays low for straights
		}
		if byte(c.HighValue()) > t.MaxRank {
			t.MaxRank = byte(c.HighValue())
		}
	}

	for _, n := range rankCounts {
		if n >= 2 {
			t.Paired = true
			break
		}
	}

	maxSuit := 0
	for _, n := range suitCounts {
		if n > maxSuit {
			maxSuit = n
		}
	}
	t.Monotone = (maxSuit == len(board) && len(board) >= 3) || maxSuit >= 4
	t.TwoTone = len(suitCounts) == 2

	t.Connected = hasWindow(rankMask, 5, 3)
	if hasWindow(rankMask, 5, 3) && !hasWindow(rankMask, 3, 3) {
		t.Secondary |= SecondaryGap
	}
	if t.AcePresent && hasLowCard(board) {
		t.Secondary |= SecondaryWheel
	}
	if broadwayCount(board) >= 2 {
		t.Secondary |= SecondaryBroadway
	}

	t.RankArchetype = rankArchetype(board)
	return t
}

// hasWindow reports whether any span of `window` consecutive ranks holds at
// least `need` distinct board ranks.
func hasWindow(mask uint32, window, need int) bool {
	for lo := 1; lo+window-1 <= 14; lo++ {
		count := 0
		for r := lo; r < lo+window; r++ {
			if mask&(1<<uint(r)) != 0 {
				count++
			}
		}
		if count >= need {
			return true
		}
	}
	return false
}

func hasLowCard(board []card.Card) bool {
	for _, c := range board {
		if hv := c.HighValue(); hv >= 2 && hv <= 5 {
			return true
		}
	}
	return false
}

func broadwayCount(board []card.Card) int {
	n := 0
	for _, c := range board {
		if c.HighValue() >= 10 {
			n++
		}
	}
	return n
}

// rankArchetype encodes the flop's high/mid/low rank mix as
// high*9 + mid*3 + low over the first three board cards.
func rankArchetype(board []card.Card) byte {
	n := len(board)
	if n > 3 {
		n = 3
	}
	var high, mid, low byte
	for _, c := range board[:n] {
		switch hv := c.HighValue(); {
		case hv >= 10:
			high++
		case hv >= 6:
			mid++
		default:
			low++
		}
	}
	return high*9 + mid*3 + low
}
