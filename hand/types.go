package hand

// Street is a betting round.
type Street byte

const (
	StreetPreflop Street = 1
	StreetFlop    Street = 2
	StreetTurn    Street = 3
	StreetRiver   Street = 4
)

var StreetDictionary = map[Street]string{
	StreetPreflop: "preflop",
	StreetFlop:    "flop",
	StreetTurn:    "turn",
	StreetRiver:   "river",
}

func (s Street) String() string {
	if name, ok := StreetDictionary[s]; ok {
		return name
	}
	return "unknown"
}

// Postflop reports whether the street is flop or later.
func (s Street) Postflop() bool {
	return s >= StreetFlop
}

// ActionType is a player action kind.
type ActionType byte

const (
	ActionNone  ActionType = 0
	ActionCheck ActionType = 1
	ActionBet   ActionType = 2
	ActionCall  ActionType = 3
	ActionRaise ActionType = 4
	ActionFold  ActionType = 5
	ActionPost  ActionType = 6
)

var ActionTypeDictionary = map[ActionType]string{
	ActionNone:  "NONE",
	ActionCheck: "CHECK",
	ActionBet:   "BET",
	ActionCall:  "CALL",
	ActionRaise: "RAISE",
	ActionFold:  "FOLD",
	ActionPost:  "POST",
}

func (a ActionType) String() string {
	if name, ok := ActionTypeDictionary[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsWager reports whether the action moves chips into the pot.
func (a ActionType) IsWager() bool {
	return a == ActionBet || a == ActionCall || a == ActionRaise || a == ActionPost
}

// Decision reports whether the action is a genuine decision
// (the kinds that can anchor a solver lookup).
func (a ActionType) Decision() bool {
	switch a {
	case ActionCheck, ActionBet, ActionCall, ActionRaise, ActionFold:
		return true
	}
	return false
}

// GameType classifies the game the hand was recorded in.
type GameType byte

const (
	GameTypeUnknown GameType = 0
	GameTypeCash    GameType = 1
	GameTypeMTT     GameType = 2
	GameTypeSNG     GameType = 3
	GameTypeHeadsUp GameType = 4
)

var GameTypeDictionary = map[GameType]string{
	GameTypeUnknown: "unknown",
	GameTypeCash:    "cash",
	GameTypeMTT:     "mtt",
	GameTypeSNG:     "sng",
	GameTypeHeadsUp: "hu",
}

func (g GameType) String() string {
	if name, ok := GameTypeDictionary[g]; ok {
		return name
	}
	return "unknown"
}
