package analysis

import (
	"math/bits"

	"solvermatch/card"
)

// HandTier is the made-hand class of a combo on a board.
type HandTier byte

const (
	TierHighCard      HandTier = 1
	TierPair          HandTier = 2
	TierTwoPair       HandTier = 3
	TierTrips         HandTier = 4
	TierStraight      HandTier = 5
	TierFlush         HandTier = 6
	TierFullHouse     HandTier = 7
	TierQuads         HandTier = 8
	TierStraightFlush HandTier = 9
)

var HandTierDictionary = map[HandTier]string{
	TierHighCard:      "high_card",
	TierPair:          "pair",
	TierTwoPair:       "two_pair",
	TierTrips:         "trips",
	TierStraight:      "straight",
	TierFlush:         "flush",
	TierFullHouse:     "full_house",
	TierQuads:         "quads",
	TierStraightFlush: "straight_flush",
}

func (t HandTier) String() string {
	if name, ok := HandTierDictionary[t]; ok {
		return name
	}
	return "unknown"
}

// DrawFlags marks the live one-card draws a combo has on an incomplete
// board. Always zero on the river.
type DrawFlags struct {
	FlushDraw bool
	OpenEnded bool
	Gutshot   bool
}

// ClassifyHand determines the made-hand tier of hole+board.
func ClassifyHand(hole []card.Card, board []card.Card) HandTier {
	all := append(append([]card.Card{}, hole...), board...)

	rankCount := map[byte]int{}
	suitRanks := map[card.Suit]uint16{}
	var rankMask uint16
	for _, c := range all {
		rankCount[c.Rank()]++
		bit := rankBit(c)
		suitRanks[c.Suit()] |= bit
		rankMask |= bit
	}

	flushSuit, hasFlush := card.Suit(0), false
	for s, m := range suitRanks {
		if bits.OnesCount16(m) >= 5 {
			flushSuit, hasFlush = s, true
		}
	}
	if hasFlush && hasStraight(suitRanks[flushSuit]) {
		return TierStraightFlush
	}

	trips, pairs := 0, 0
	for _, n := range rankCount {
		switch {
		case n >= 4:
			return TierQuads
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}
	if trips >= 2 || (trips == 1 && pairs >= 1) {
		return TierFullHouse
	}
	if hasFlush {
		return TierFlush
	}
	if hasStraight(rankMask) {
		return TierStraight
	}
	if trips == 1 {
		return TierTrips
	}
	if pairs >= 2 {
		return TierTwoPair
	}
	if pairs == 1 {
		return TierPair
	}
	return TierHighCard
}

// ClassifyDraws reports one-card draws for hole+board. A flush draw needs a
// hole card in the four-flush; straight draws count the distinct ranks that
// would complete a straight (two or more is open-ended or better).
func ClassifyDraws(hole []card.Card, board []card.Card) DrawFlags {
	var flags DrawFlags
	if len(board) >= 5 {
		return flags
	}

	suitCount := map[card.Suit]int{}
	holeSuit := map[card.Suit]bool{}
	var rankMask uint16
	for _, c := range board {
		suitCount[c.Suit()]++
		rankMask |= rankBit(c)
	}
	for _, c := range hole {
		suitCount[c.Suit()]++
		holeSuit[c.Suit()] = true
		rankMask |= rankBit(c)
	}
	for s, n := range suitCount {
		if n == 4 && holeSuit[s] {
			flags.FlushDraw = true
		}
	}

	if hasStraight(rankMask) {
		return flags
	}
	completing := 0
	for hv := 2; hv <= 14; hv++ {
		bit := uint16(1) << uint(hv)
		if rankMask&bit != 0 {
			continue
		}
		withCard := rankMask | bit
		if hv == 14 {
			withCard |= 1 << 1 // ace plays low too
		}
		if hasStraight(withCard) {
			completing++
		}
	}
	switch {
	case completing >= 2:
		flags.OpenEnded = true
	case completing == 1:
		flags.Gutshot = true
	}
	return flags
}

// rankBit maps a card onto a high-value bitmask; aces set both ends so
// wheel straights fall out of the same window scan.
func rankBit(c card.Card) uint16 {
	hv := c.HighValue()
	bit := uint16(1) << uint(hv)
	if c.IsAce() {
		bit |= 1 << 1
	}
	return bit
}

func hasStraight(mask uint16) bool {
	const run = uint16(0x1F) // five consecutive bits
	for shift := 1; shift <= 10; shift++ {
		if mask>>uint(shift)&run == run {
			return true
		}
	}
	return false
}
