package card

import (
	"fmt"
	"strings"
)

// Card is a single playing card.
//
// Encoding:
// - high 4 bits: suit (0:Spade, 1:Heart, 2:Club, 3:Diamond)
// - low 4 bits: rank (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K)
type Card byte

func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}

	rank := c & 0x0F
	rankStr := ""
	switch rank {
	case 1:
		rankStr = "A"
	case 10:
		rankStr = "T"
	case 11:
		rankStr = "J"
	case 12:
		rankStr = "Q"
	case 13:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", rank)
	}

	return fmt.Sprintf("%s%s", rankStr, c.Suit().Letter())
}

// Rank returns the face value 1-13 (A=1, K=13).
func (c Card) Rank() byte {
	if c == CardInvalid {
		return 0
	}
	return byte(c & 0x0F)
}

// Suit returns the suit (0:Spade, 1:Heart, 2:Club, 3:Diamond).
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// HighValue returns the rank used for comparisons: A counts as 14,
// everything else keeps its face value.
func (c Card) HighValue() int {
	r := int(c & 0x0F)
	if r == 1 {
		return 14
	}
	return r
}

// RankIndex maps the rank onto 0..12 with deuce lowest and ace highest.
func (c Card) RankIndex() int {
	r := int(c.Rank())
	if r == 1 {
		return 12
	}
	return r - 2
}

// Ordinal maps the card onto 0..51 in a fixed deck order
// (suits in encoding order, deuce-to-ace within each suit).
func (c Card) Ordinal() int {
	return int(c.Suit())*13 + c.RankIndex()
}

// FromOrdinal is the inverse of Ordinal.
func FromOrdinal(ord int) Card {
	suit := Card(ord/13) << 4
	ri := ord % 13
	if ri == 12 {
		return suit | 0x01
	}
	return suit | Card(ri+2)
}

// Parse converts a card string such as "As", "Td" or "10h" into a Card.
func Parse(cardStr string) (Card, error) {
	if len(cardStr) < 2 {
		return 0, fmt.Errorf("invalid card string: %s", cardStr)
	}

	suitChar := cardStr[len(cardStr)-1]
	var suitBase Card

	switch suitChar {
	case 's', 'S':
		suitBase = 0x00
	case 'h', 'H':
		suitBase = 0x10
	case 'c', 'C':
		suitBase = 0x20
	case 'd', 'D':
		suitBase = 0x30
	default:
		return 0, fmt.Errorf("invalid suit: %c", suitChar)
	}

	rankStr := cardStr[:len(cardStr)-1]
	var rankVal Card

	switch strings.ToUpper(rankStr) {
	case "A":
		rankVal = 0x01
	case "2":
		rankVal = 0x02
	case "3":
		rankVal = 0x03
	case "4":
		rankVal = 0x04
	case "5":
		rankVal = 0x05
	case "6":
		rankVal = 0x06
	case "7":
		rankVal = 0x07
	case "8":
		rankVal = 0x08
	case "9":
		rankVal = 0x09
	case "T", "10":
		rankVal = 0x0A
	case "J":
		rankVal = 0x0B
	case "Q":
		rankVal = 0x0C
	case "K":
		rankVal = 0x0D
	default:
		return 0, fmt.Errorf("invalid rank: %s", rankStr)
	}

	return suitBase + rankVal, nil
}

// ParseList converts a list of card strings, rejecting duplicates.
func ParseList(strs []string) ([]Card, error) {
	out := make([]Card, 0, len(strs))
	seen := make(map[Card]struct{}, len(strs))
	for i, s := range strs {
		c, err := Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("card[%d]: %w", i, err)
		}
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("card[%d]: duplicate card %s", i, c)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}
