package analysis

import (
	"solvermatch/card"
)

// valueEquityPct is the per-combo equity above which a combo counts as a
// value hand for the advantage and blocker breakdowns.
const valueEquityPct = 66.0

// bluffEquityPct is the ceiling below which a combo counts as a bluff
// candidate.
const bluffEquityPct = 33.0

// RangeEquity is the head-to-head result of hero range vs villain range on
// the snapshot board. HeroPct and VillainPct sum to ~100.
type RangeEquity struct {
	HeroPct       float64
	VillainPct    float64
	HeroValuePct  float64 // share of hero range with combo equity >= valueEquityPct
	VillValuePct  float64
	ValueDeltaPct float64 // HeroValuePct - VillValuePct
}

// rangeDuel carries the per-combo equities both the range summary and the
// blocker analysis are built from.
type rangeDuel struct {
	heroEquity    [card.ComboCount]float64 // percent, vs villain range
	villainEquity [card.ComboCount]float64 // percent, vs hero range
	heroWeight    [card.ComboCount]float64 // live weight after card removal
	villainWeight [card.ComboCount]float64
}

// duelRanges runs hero range vs villain range over the board's runouts.
// Combos blocked by the board are dropped; combos of one range sharing a
// card with the other range's combo never meet.
func duelRanges(board []card.Card, heroRange, villainRange []float32) *rangeDuel {
	d := &rangeDuel{}
	outs := runouts(board)

	heroWin := make([]float64, card.ComboCount)
	heroTotal := make([]float64, card.ComboCount)
	villWin := make([]float64, card.ComboCount)
	villTotal := make([]float64, card.ComboCount)

	full := make([]card.Card, 0, 5)
	for _, out := range outs {
		full = append(full[:0], board...)
		full = append(full, out...)
		scores := comboScores(full)

		for hi := 0; hi < card.ComboCount; hi++ {
			hw := float64(heroRange[hi])
			if hw == 0 || scores[hi] == scoreDead {
				continue
			}
			for vi := 0; vi < card.ComboCount; vi++ {
				vw := float64(villainRange[vi])
				if vw == 0 || scores[vi] == scoreDead {
					continue
				}
				if comboMasks[hi]&comboMasks[vi] != 0 {
					continue
				}
				w := hw * vw
				win := duelResult(scores[hi], scores[vi])
				heroWin[hi] += w * win
				heroTotal[hi] += w
				villWin[vi] += w * (1 - win)
				villTotal[vi] += w
			}
		}
	}

	for i := 0; i < card.ComboCount; i++ {
		if heroTotal[i] > 0 {
			d.heroEquity[i] = 100 * heroWin[i] / heroTotal[i]
			d.heroWeight[i] = heroTotal[i]
		}
		if villTotal[i] > 0 {
			d.villainEquity[i] = 100 * villWin[i] / villTotal[i]
			d.villainWeight[i] = villTotal[i]
		}
	}
	return d
}

func duelResult(hero, villain int16) float64 {
	switch {
	case hero > villain:
		return 1
	case hero < villain:
		return 0
	default:
		return 0.5
	}
}

// ComputeRangeEquity summarizes hero range vs villain range.
func ComputeRangeEquity(board []card.Card, heroRange, villainRange []float32) RangeEquity {
	d := duelRanges(board, heroRange, villainRange)
	return summarizeDuel(d)
}

func summarizeDuel(d *rangeDuel) RangeEquity {
	var eq RangeEquity
	var heroW, heroWE, heroValue float64
	var villW, villWE, villValue float64
	for i := 0; i < card.ComboCount; i++ {
		if w := d.heroWeight[i]; w > 0 {
			heroW += w
			heroWE += w * d.heroEquity[i]
			if d.heroEquity[i] >= valueEquityPct {
				heroValue += w
			}
		}
		if w := d.villainWeight[i]; w > 0 {
			villW += w
			villWE += w * d.villainEquity[i]
			if d.villainEquity[i] >= valueEquityPct {
				villValue += w
			}
		}
	}
	if heroW > 0 {
		eq.HeroPct = heroWE / heroW
		eq.HeroValuePct = 100 * heroValue / heroW
	}
	if villW > 0 {
		eq.VillainPct = villWE / villW
		eq.VillValuePct = 100 * villValue / villW
	}
	eq.ValueDeltaPct = eq.HeroValuePct - eq.VillValuePct
	return eq
}

// heroComboEquity is hero's literal combo vs the villain range, in percent.
// Villain combos colliding with the hero cards or the board are excluded;
// the second result is false when nothing in the villain range is live.
func heroComboEquity(hole []card.Card, board []card.Card, villainRange []float32) (float64, bool) {
	heroRange := singleComboRange(hole)
	d := duelRanges(board, heroRange, villainRange)
	idx := card.ComboIndex(hole[0], hole[1])
	return d.heroEquity[idx], d.heroWeight[idx] > 0
}

func singleComboRange(hole []card.Card) []float32 {
	r := make([]float32, card.ComboCount)
	r[card.ComboIndex(hole[0], hole[1])] = 1
	return r
}
