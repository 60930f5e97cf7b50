package hand

import (
	"fmt"

	"solvermatch/card"
)

// Hand is the structured record of one recorded hand, produced by an
// upstream importer. It is read-only input for the whole pipeline.
type Hand struct {
	HandID   string   `json:"hand_id,omitempty"`
	GameType GameType `json:"game_type"`
	Table    Table    `json:"table"`
	Seats    []Seat   `json:"seats"`
	Board    Board    `json:"board"`
	Actions  []Action `json:"actions"`
}

type Table struct {
	SmallBlind int64 `json:"sb"`
	BigBlind   int64 `json:"bb"`
	Ante       int64 `json:"ante"`
}

type Seat struct {
	Index    int    `json:"index"`
	Stack    int64  `json:"stack"`
	Position string `json:"position,omitempty"`
	Hero     bool   `json:"is_hero,omitempty"`
	// Hole cards are only known for the hero in most imports.
	Hole []string `json:"hole,omitempty"`
}

type Board struct {
	Flop  []string `json:"flop,omitempty"`
	Turn  string   `json:"turn,omitempty"`
	River string   `json:"river,omitempty"`
}

type Action struct {
	Street Street     `json:"street"`
	Seat   int        `json:"seat"`
	Type   ActionType `json:"type"`
	// Amount is the chip amount the action brings the seat's street
	// commitment to. Zero for check and fold.
	Amount int64 `json:"amount"`
}

// HeroSeat returns the seat flagged as hero.
func (h *Hand) HeroSeat() (Seat, bool) {
	for _, s := range h.Seats {
		if s.Hero {
			return s, true
		}
	}
	return Seat{}, false
}

// SeatByIndex returns the seat with the given index.
func (h *Hand) SeatByIndex(idx int) (Seat, bool) {
	for _, s := range h.Seats {
		if s.Index == idx {
			return s, true
		}
	}
	return Seat{}, false
}

// BoardCards parses the revealed community cards in street order.
func (h *Hand) BoardCards() ([]card.Card, error) {
	strs := make([]string, 0, 5)
	if len(h.Board.Flop) > 0 {
		if len(h.Board.Flop) != 3 {
			return nil, &ValidationError{Field: "board.flop", Reason: "invalid_board", Message: "flop must be either empty or 3 cards"}
		}
		strs = append(strs, h.Board.Flop...)
	}
	if h.Board.Turn != "" {
		strs = append(strs, h.Board.Turn)
	}
	if h.Board.River != "" {
		strs = append(strs, h.Board.River)
	}
	cards, err := card.ParseList(strs)
	if err != nil {
		return nil, &ValidationError{Field: "board", Reason: "invalid_board_card", Message: err.Error()}
	}
	return cards, nil
}

// HeroHole parses the hero's hole cards, when present.
func (h *Hand) HeroHole() ([]card.Card, error) {
	hero, ok := h.HeroSeat()
	if !ok {
		return nil, &ValidationError{Field: "seats", Reason: "no_hero", Message: "no seat flagged as hero"}
	}
	if len(hero.Hole) == 0 {
		return nil, nil
	}
	if len(hero.Hole) != 2 {
		return nil, &ValidationError{Field: "seats.hole", Reason: "invalid_hole_cards", Message: "hole cards must contain exactly 2 cards"}
	}
	cards, err := card.ParseList(hero.Hole)
	if err != nil {
		return nil, &ValidationError{Field: "seats.hole", Reason: "invalid_hole_cards", Message: err.Error()}
	}
	return cards, nil
}

// Validate checks the structural invariants the pipeline relies on.
// A failure here is fatal for the hand.
func (h *Hand) Validate() error {
	if h.Table.BigBlind <= 0 || h.Table.SmallBlind < 0 || h.Table.SmallBlind > h.Table.BigBlind {
		return &ValidationError{Field: "table", Reason: "invalid_blinds", Message: "invalid blinds configuration"}
	}
	if h.Table.Ante < 0 {
		return &ValidationError{Field: "table", Reason: "invalid_ante", Message: "ante must be >= 0"}
	}
	if len(h.Seats) < 2 {
		return &ValidationError{Field: "seats", Reason: "invalid_seats", Message: "at least 2 seats are required"}
	}

	heroCount := 0
	seen := make(map[int]struct{}, len(h.Seats))
	for i, s := range h.Seats {
		if s.Index < 0 {
			return &ValidationError{Field: "seats", Reason: "invalid_seat", Message: fmt.Sprintf("seat %d index must be >= 0", i)}
		}
		if _, dup := seen[s.Index]; dup {
			return &ValidationError{Field: "seats", Reason: "duplicate_seat", Message: fmt.Sprintf("duplicate seat index %d", s.Index)}
		}
		seen[s.Index] = struct{}{}
		if s.Stack < 0 {
			return &ValidationError{Field: "seats", Reason: "invalid_stack", Message: fmt.Sprintf("seat %d stack must be >= 0", s.Index)}
		}
		if s.Hero {
			heroCount++
		}
	}
	if heroCount == 0 {
		return &ValidationError{Field: "seats", Reason: "no_hero", Message: "no seat flagged as hero"}
	}
	if heroCount > 1 {
		return &ValidationError{Field: "seats", Reason: "invalid_hero", Message: "multiple seats flagged as hero"}
	}

	if _, err := h.BoardCards(); err != nil {
		return err
	}
	if _, err := h.HeroHole(); err != nil {
		return err
	}

	prev := StreetPreflop
	for i, a := range h.Actions {
		if _, ok := StreetDictionary[a.Street]; !ok {
			return &ValidationError{Field: "actions", Reason: "invalid_street", Message: fmt.Sprintf("action %d has unknown street", i)}
		}
		if a.Street < prev {
			return &ValidationError{Field: "actions", Reason: "street_order", Message: fmt.Sprintf("action %d moves backwards from %s to %s", i, prev, a.Street)}
		}
		prev = a.Street
		if _, ok := seen[a.Seat]; !ok {
			return &ValidationError{Field: "actions", Reason: "invalid_action_seat", Message: fmt.Sprintf("action %d references unseated seat %d", i, a.Seat)}
		}
		if _, ok := ActionTypeDictionary[a.Type]; !ok || a.Type == ActionNone {
			return &ValidationError{Field: "actions", Reason: "invalid_action", Message: fmt.Sprintf("action %d has unknown type", i)}
		}
		if a.Amount < 0 {
			return &ValidationError{Field: "actions", Reason: "invalid_amount", Message: fmt.Sprintf("action %d amount must be >= 0", i)}
		}
		if (a.Type == ActionBet || a.Type == ActionRaise) && a.Amount == 0 {
			return &ValidationError{Field: "actions", Reason: "invalid_amount", Message: fmt.Sprintf("action %d: %s requires a positive amount", i, a.Type)}
		}
	}
	return nil
}
