package snapshot

import (
	"strings"

	"solvermatch/hand"
)

// PositionOrder is the canonical postflop acting order, earliest to act
// first. Whichever of hero/villain sits later in this list is in position.
var PositionOrder = []string{
	"BB", "SB", "UTG", "UTG+1", "UTG+2", "LJ", "MP", "MP+1", "HJ", "CO", "BTN",
}

// PositionEmpty and PositionOther pad the one-hot vocabulary used by the
// feature encoder.
const (
	PositionEmpty    = ""
	PositionStraddle = "STRADDLE"
	PositionOther    = "OTHER"
)

// PositionSlots is the full one-hot vocabulary, 14 entries.
var PositionSlots = append(append([]string{PositionEmpty}, PositionOrder...), PositionStraddle, PositionOther)

var positionAliases = map[string]string{
	"BIG_BLIND":   "BB",
	"BIGBLIND":    "BB",
	"SMALL_BLIND": "SB",
	"SMALLBLIND":  "SB",
	"UTG1":        "UTG+1",
	"UTG2":        "UTG+2",
	"MP1":         "MP+1",
	"BUTTON":      "BTN",
	"CUTOFF":      "CO",
	"HIJACK":      "HJ",
	"LOJACK":      "LJ",
	"STRADDLE":    "STRADDLE",
}

// NormalizePosition maps a raw position name onto the canonical vocabulary.
// Unrecognized names return PositionOther and ok=false.
func NormalizePosition(raw string) (string, bool) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, p := range PositionOrder {
		if name == p {
			return p, true
		}
	}
	if alias, ok := positionAliases[name]; ok {
		return alias, true
	}
	if name == "" {
		return PositionEmpty, false
	}
	return PositionOther, false
}

func positionOrderIndex(name string) (int, bool) {
	for i, p := range PositionOrder {
		if p == name {
			return i, true
		}
	}
	return -1, false
}

// resolveSeats decides who is in position. Both positions recognized:
// later in the canonical order acts later and is IP. Otherwise fall back
// to raw seat indices (higher index acts later).
func resolveSeats(hero, villain hand.Seat) (heroIP bool, heroPos, villainPos string) {
	heroPos, heroOK := NormalizePosition(hero.Position)
	villainPos, villainOK := NormalizePosition(villain.Position)

	if heroOK && villainOK {
		hi, hok := positionOrderIndex(heroPos)
		vi, vok := positionOrderIndex(villainPos)
		if hok && vok {
			return hi > vi, heroPos, villainPos
		}
	}
	return hero.Index > villain.Index, heroPos, villainPos
}
