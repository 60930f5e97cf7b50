package analysis

import (
	"sort"

	"solvermatch/card"
)

// BlockerImpact quantifies the card-removal effect of hero's hole cards on
// the villain range. All percentages are in [0,100].
type BlockerImpact struct {
	CombosBlockedPct   float64
	ValueBlockedPct    float64
	BluffsUnblockedPct float64

	// ByCategory is the blocked share of each made-hand tier villain
	// holds on this board. Tiers absent from the range are omitted.
	ByCategory map[HandTier]float64

	// Examples lists up to three blocked villain combos, heaviest range
	// weight first.
	Examples []string
}

// ComputeBlockers analyzes how hero's hole cards hit the villain range on
// the board. The duel supplies villain combo equities (vs the hero range)
// so value and bluff shares use the same numbers the equity summary does.
func ComputeBlockers(hole []card.Card, board []card.Card, villainRange []float32, d *rangeDuel) BlockerImpact {
	impact := BlockerImpact{ByCategory: map[HandTier]float64{}}
	heroMask := cardBit(hole[0]) | cardBit(hole[1])
	boardUsed := boardMask(board)

	type blocked struct {
		idx    int
		weight float64
	}
	var blockedCombos []blocked

	catTotal := map[HandTier]float64{}
	catBlocked := map[HandTier]float64{}
	var total, totalBlocked float64
	var value, valueBlocked float64
	var bluffs, bluffsClear float64

	for i := 0; i < card.ComboCount; i++ {
		w := float64(villainRange[i])
		if w == 0 || comboMasks[i]&boardUsed != 0 {
			continue
		}
		cb := card.ComboAt(i)
		tier := ClassifyHand([]card.Card{cb.Lo, cb.Hi}, board)
		isBlocked := comboMasks[i]&heroMask != 0

		total += w
		catTotal[tier] += w
		if isBlocked {
			totalBlocked += w
			catBlocked[tier] += w
			blockedCombos = append(blockedCombos, blocked{idx: i, weight: w})
		}

		// Equity buckets come from the unblocked duel; a blocked combo
		// keeps the equity it would have had.
		eq := d.villainEquity[i]
		switch {
		case eq >= valueEquityPct:
			value += w
			if isBlocked {
				valueBlocked += w
			}
		case eq <= bluffEquityPct:
			bluffs += w
			if !isBlocked {
				bluffsClear += w
			}
		}
	}

	if total > 0 {
		impact.CombosBlockedPct = 100 * totalBlocked / total
	}
	if value > 0 {
		impact.ValueBlockedPct = 100 * valueBlocked / value
	}
	if bluffs > 0 {
		impact.BluffsUnblockedPct = 100 * bluffsClear / bluffs
	}
	for tier, tw := range catTotal {
		if tw > 0 {
			impact.ByCategory[tier] = 100 * catBlocked[tier] / tw
		}
	}

	sort.Slice(blockedCombos, func(i, j int) bool {
		if blockedCombos[i].weight != blockedCombos[j].weight {
			return blockedCombos[i].weight > blockedCombos[j].weight
		}
		return blockedCombos[i].idx < blockedCombos[j].idx
	})
	for i := 0; i < len(blockedCombos) && i < 3; i++ {
		impact.Examples = append(impact.Examples, card.ComboAt(blockedCombos[i].idx).String())
	}
	return impact
}
