package analysis

import (
	"math"
	"testing"

	"solvermatch/card"
	"solvermatch/hand"
	"solvermatch/node"
	"solvermatch/snapshot"
)

func cards(t *testing.T, strs ...string) []card.Card {
	t.Helper()
	out, err := card.ParseList(strs)
	if err != nil {
		t.Fatalf("parse cards %v: %v", strs, err)
	}
	return out
}

func comboRange(t *testing.T, combos ...[2]string) []float32 {
	t.Helper()
	r := make([]float32, card.ComboCount)
	for _, cb := range combos {
		pair := cards(t, cb[0], cb[1])
		r[card.ComboIndex(pair[0], pair[1])] = 1
	}
	return r
}

func TestClassifyHandTiers(t *testing.T) {
	cases := []struct {
		hole  []string
		board []string
		want  HandTier
	}{
		{[]string{"Ah", "Qd"}, []string{"Ks", "7h", "2d", "5c", "Jh"}, TierHighCard},
		{[]string{"Ah", "Qd"}, []string{"As", "7h", "2d"}, TierPair},
		{[]string{"Ah", "7d"}, []string{"As", "7h", "2d"}, TierTwoPair},
		{[]string{"Kd", "Kc"}, []string{"Ks", "7h", "2d"}, TierTrips},
		{[]string{"6s", "5d"}, []string{"4h", "3c", "2d"}, TierStraight},
		{[]string{"Ah", "5h"}, []string{"Kh", "7h", "2h"}, TierFlush},
		{[]string{"Kd", "Kc"}, []string{"Ks", "Qh", "Qd"}, TierFullHouse},
		{[]string{"Kd", "Kc"}, []string{"Ks", "Kh", "2d"}, TierQuads},
		{[]string{"6h", "5h"}, []string{"4h", "3h", "2h"}, TierStraightFlush},
		{[]string{"Ah", "2d"}, []string{"3s", "4h", "5d"}, TierStraight}, // wheel
	}
	for _, tc := range cases {
		got := ClassifyHand(cards(t, tc.hole...), cards(t, tc.board...))
		if got != tc.want {
			t.Fatalf("ClassifyHand(%v on %v) = %s, want %s", tc.hole, tc.board, got, tc.want)
		}
	}
}

func TestClassifyDraws(t *testing.T) {
	flush := ClassifyDraws(cards(t, "Ah", "5h"), cards(t, "Kh", "7h", "2d"))
	if !flush.FlushDraw {
		t.Fatalf("four hearts with a hole heart must be a flush draw: %+v", flush)
	}

	oesd := ClassifyDraws(cards(t, "9s", "8d"), cards(t, "7h", "6c", "2d"))
	if !oesd.OpenEnded || oesd.Gutshot {
		t.Fatalf("9876 must be open-ended: %+v", oesd)
	}

	gut := ClassifyDraws(cards(t, "9s", "8d"), cards(t, "6h", "5c", "Ad"))
	if !gut.Gutshot || gut.OpenEnded {
		t.Fatalf("9865 must be a gutshot: %+v", gut)
	}

	river := ClassifyDraws(cards(t, "9s", "8d"), cards(t, "7h", "6c", "2d", "2h", "3s"))
	if river.FlushDraw || river.OpenEnded || river.Gutshot {
		t.Fatalf("river holdings have no draws: %+v", river)
	}
}

func TestRangeEquityDominatedRiver(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d", "5c", "Jh")
	hero := comboRange(t, [2]string{"As", "Ah"})
	villain := comboRange(t, [2]string{"Qs", "Qh"})

	eq := ComputeRangeEquity(board, hero, villain)
	if eq.HeroPct != 100 || eq.VillainPct != 0 {
		t.Fatalf("aces vs queens on blank river = %v/%v, want 100/0", eq.HeroPct, eq.VillainPct)
	}
}

func TestRangeEquityChoppedRiver(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d", "5c", "Jh")
	hero := comboRange(t, [2]string{"As", "Ah"})
	villain := comboRange(t, [2]string{"Ac", "Ad"})

	eq := ComputeRangeEquity(board, hero, villain)
	if eq.HeroPct != 50 || eq.VillainPct != 50 {
		t.Fatalf("identical aces must chop: %v/%v", eq.HeroPct, eq.VillainPct)
	}
}

func TestRangeEquitySumsToHundred(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d", "5c")
	hero := comboRange(t, [2]string{"As", "Ah"}, [2]string{"9c", "9d"}, [2]string{"Th", "9h"})
	villain := comboRange(t, [2]string{"Kc", "Qc"}, [2]string{"7c", "6c"}, [2]string{"Jd", "Jc"})

	eq := ComputeRangeEquity(board, hero, villain)
	if sum := eq.HeroPct + eq.VillainPct; math.Abs(sum-100) > 0.5 {
		t.Fatalf("equities sum to %v, want ~100", sum)
	}
	if eq.HeroPct < 0 || eq.HeroPct > 100 {
		t.Fatalf("hero equity out of range: %v", eq.HeroPct)
	}
}

func TestRangeEquityDeterministicOnFlop(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d")
	hero := comboRange(t, [2]string{"As", "Ah"}, [2]string{"8c", "8d"})
	villain := comboRange(t, [2]string{"Kc", "Qc"}, [2]string{"6s", "5s"})

	a := ComputeRangeEquity(board, hero, villain)
	b := ComputeRangeEquity(board, hero, villain)
	if a != b {
		t.Fatalf("flop equity must be deterministic: %+v vs %+v", a, b)
	}
}

func TestComputeBlockers(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d", "5c", "Jh")
	hole := cards(t, "As", "Ad")
	villain := comboRange(t, [2]string{"As", "Kc"}, [2]string{"Qs", "Qh"}, [2]string{"4c", "3c"})
	hero := comboRange(t, [2]string{"As", "Ad"})

	duel := duelRanges(board, hero, villain)
	impact := ComputeBlockers(hole, board, villain, duel)

	if math.Abs(impact.CombosBlockedPct-100.0/3) > 0.01 {
		t.Fatalf("one of three combos blocked, got %v%%", impact.CombosBlockedPct)
	}
	if len(impact.Examples) != 1 || impact.Examples[0] != "AsKc" {
		t.Fatalf("blocked example = %v, want [AsKc]", impact.Examples)
	}
	for _, pct := range []float64{impact.CombosBlockedPct, impact.ValueBlockedPct, impact.BluffsUnblockedPct} {
		if pct < 0 || pct > 100 {
			t.Fatalf("blocker percentage out of [0,100]: %v", pct)
		}
	}
}

func TestHandFeaturesRiver(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d", "5c", "Jh")
	hole := cards(t, "Ah", "Qd")
	villain := comboRange(t, [2]string{"Kc", "Qc"}, [2]string{"4c", "3c"})

	hf := ComputeHandFeatures(hole, board, villain)
	if hf.Tier != TierHighCard {
		t.Fatalf("AhQd on K72 5 J = %s, want high_card", hf.Tier)
	}
	// Ace high beats 43, loses to KQ.
	if math.Abs(hf.EquityPct-50) > 0.01 {
		t.Fatalf("hero equity = %v, want 50", hf.EquityPct)
	}
	if len(hf.Sensitivity.Swings) != 0 {
		t.Fatalf("river must have no next-card swings")
	}
}

func TestHandFeaturesTurnSensitivity(t *testing.T) {
	board := cards(t, "Ks", "7h", "2d", "5c")
	hole := cards(t, "Ah", "Qd")
	villain := comboRange(t, [2]string{"Kc", "Qc"})

	hf := ComputeHandFeatures(hole, board, villain)
	if len(hf.Sensitivity.Swings) != 44 {
		t.Fatalf("44 river cards expected, got %d", len(hf.Sensitivity.Swings))
	}
	// An ace river gives hero top pair and the win.
	var aceSwing *CardSwing
	for i := range hf.Sensitivity.Swings {
		if hf.Sensitivity.Swings[i].Card == card.CardDiamondA {
			aceSwing = &hf.Sensitivity.Swings[i]
		}
	}
	if aceSwing == nil || aceSwing.EquityPct != 100 {
		t.Fatalf("ace river should be 100%% equity, got %+v", aceSwing)
	}
	if hf.Sensitivity.Best.SwingPct < hf.Sensitivity.Worst.SwingPct {
		t.Fatalf("best swing below worst swing")
	}
	if hf.Sensitivity.Variance < 0 {
		t.Fatalf("variance must be non-negative")
	}
}

func strategySeat(t *testing.T, hole []card.Card, freqs []float32, evs []float32) *node.SeatTables {
	t.Helper()
	seat := &node.SeatTables{
		Actions: []node.ActionDesc{
			{Type: hand.ActionCheck},
			{Type: hand.ActionBet, SizePct: 75},
		},
		Range: make([]float32, card.ComboCount),
		Freq:  make([][]float32, card.ComboCount),
		EV:    make([][]float32, card.ComboCount),
	}
	for i := range seat.Freq {
		seat.Freq[i] = make([]float32, 2)
		seat.EV[i] = make([]float32, 2)
	}
	idx := card.ComboIndex(hole[0], hole[1])
	seat.Range[idx] = 0.9
	copy(seat.Freq[idx], freqs)
	copy(seat.EV[idx], evs)
	return seat
}

func TestComboStrategyConfidence(t *testing.T) {
	hole := cards(t, "Ah", "Qd")
	cases := []struct {
		freqs []float32
		want  Confidence
	}{
		{[]float32{0.9, 0.1}, ConfidenceCommitted},
		{[]float32{0.7, 0.3}, ConfidenceLeaning},
		{[]float32{0.55, 0.45}, ConfidenceMixed},
	}
	for _, tc := range cases {
		seat := strategySeat(t, hole, tc.freqs, []float32{0.5, 1.25})
		cs, err := ComputeComboStrategy(hole, seat)
		if err != nil {
			t.Fatalf("strategy: %v", err)
		}
		if cs.Confidence != tc.want {
			t.Fatalf("freqs %v => %s, want %s", tc.freqs, cs.Confidence, tc.want)
		}
		if len(cs.Actions) == 0 || cs.Actions[0].Freq != float64(tc.freqs[0]) {
			t.Fatalf("top action must carry the max frequency: %+v", cs.Actions)
		}
	}
}

func TestComboStrategyLabels(t *testing.T) {
	hole := cards(t, "Ah", "Qd")
	seat := strategySeat(t, hole, []float32{0.3, 0.7}, []float32{0.5, 1.25})
	cs, err := ComputeComboStrategy(hole, seat)
	if err != nil {
		t.Fatalf("strategy: %v", err)
	}
	if len(cs.Actions) != 2 {
		t.Fatalf("want top-2 actions, got %d", len(cs.Actions))
	}
	if cs.Actions[0].Label != "Bet 75%" || cs.Actions[1].Label != "Check" {
		t.Fatalf("labels = %q/%q", cs.Actions[0].Label, cs.Actions[1].Label)
	}
	if cs.Combo != "AhQd" && cs.Combo != "QdAh" {
		t.Fatalf("combo string = %q", cs.Combo)
	}
	if cs.RangeWeight != float64(float32(0.9)) {
		t.Fatalf("range weight = %v", cs.RangeWeight)
	}
}

func TestAnalyzeBoardContext(t *testing.T) {
	mono := AnalyzeBoardContext(cards(t, "Ah", "Kh", "2h"))
	if mono.Suits != "monotone" {
		t.Fatalf("suits = %q, want monotone", mono.Suits)
	}
	trips := AnalyzeBoardContext(cards(t, "9s", "9h", "9d"))
	if !trips.Trips || !trips.Paired {
		t.Fatalf("999 must be paired and trips: %+v", trips)
	}
	rainbow := AnalyzeBoardContext(cards(t, "Ks", "7h", "2d"))
	if rainbow.Suits != "rainbow" {
		t.Fatalf("suits = %q, want rainbow", rainbow.Suits)
	}
}

func solvedNode(t *testing.T) *node.SolverNode {
	t.Helper()
	mkSeat := func() node.SeatTables {
		s := node.SeatTables{
			Actions: []node.ActionDesc{
				{Type: hand.ActionCheck},
				{Type: hand.ActionBet, SizePct: 75},
			},
			Range: make([]float32, card.ComboCount),
			Freq:  make([][]float32, card.ComboCount),
			EV:    make([][]float32, card.ComboCount),
		}
		for i := range s.Freq {
			s.Range[i] = 0.5
			s.Freq[i] = []float32{0.65, 0.35}
			s.EV[i] = []float32{0.2, 0.4}
		}
		return s
	}
	return &node.SolverNode{
		Board:      cards(t, "Ks", "7h", "2d", "5c", "Jh"),
		PotBB:      28.5,
		EffStackBB: 92,
		OOP:        mkSeat(),
		IP:         mkSeat(),
	}
}

func TestBuildSolverBlock(t *testing.T) {
	n := solvedNode(t)
	in := snapshot.Input{
		Street:   hand.StreetRiver,
		Board:    n.Board,
		HeroIP:   false,
		HeroHole: cards(t, "Ah", "Qd"),
	}

	block, err := BuildSolverBlock(n, in)
	if err != nil {
		t.Fatalf("build block: %v", err)
	}
	if sum := block.Equity.HeroPct + block.Equity.VillainPct; math.Abs(sum-100) > 0.5 {
		t.Fatalf("range equities sum to %v", sum)
	}
	if block.Strategy.Confidence != ConfidenceLeaning {
		t.Fatalf("0.65 top frequency = %s, want leaning", block.Strategy.Confidence)
	}
	if block.Hand.Tier != TierHighCard {
		t.Fatalf("hand tier = %s", block.Hand.Tier)
	}
	if block.Blockers.CombosBlockedPct <= 0 {
		t.Fatalf("uniform villain range must have blocked combos")
	}

	again, err := BuildSolverBlock(n, in)
	if err != nil {
		t.Fatalf("rebuild block: %v", err)
	}
	if again.Equity != block.Equity {
		t.Fatalf("solver block must be deterministic")
	}
}

func TestBuildSolverBlockRejectsBadInput(t *testing.T) {
	n := solvedNode(t)
	in := snapshot.Input{Board: n.Board, HeroHole: cards(t, "Ks", "Qd")}
	if _, err := BuildSolverBlock(n, in); err == nil {
		t.Fatalf("hero card on board must be rejected")
	}
	in = snapshot.Input{Board: n.Board, HeroHole: cards(t, "Ah")}
	if _, err := BuildSolverBlock(n, in); err == nil {
		t.Fatalf("single hole card must be rejected")
	}
}
