package feature

import (
	"hash/fnv"

	"solvermatch/hand"
	"solvermatch/snapshot"
)

// VectorDim is the fixed similarity-search dimensionality. The layout is
// frozen: published corpus vectors were encoded with exactly this scheme,
// so any change here invalidates every stored node.
const VectorDim = 61

// Vector layout offsets.
const (
	dimStreet      = 0
	dimGameType    = 1
	dimPotType     = 2
	dimOOPPosBase  = 3  // 14 one-hot slots
	dimIPPosBase   = 17 // 14 one-hot slots
	dimTextureBase = 31 // 8 texture bytes
	dimHeroIP      = 39
	dimEffStack    = 40
	dimPot         = 41
	dimTagBase     = 42 // 16 one-hot slots
	dimHashBase    = 58 // 3 hash bytes
)

// Normalization caps. Stacks and pots beyond these clamp to 1.
const (
	maxStackBB = 400.0
	maxPotBB   = 400.0
)

// TagSlots is the fixed tag vocabulary for dims 42-57.
var TagSlots = []string{
	"aggressor", "caller", "probe", "donk",
	"check_raise", "overbet", "all_in", "multiway",
	"short_stack", "deep_stack", "straddle", "ante",
	"icm", "bounty", "anonymous", "reserved",
}

// Encode maps a SnapshotInput onto the fixed 61-float vector. The mapping
// is pure: the same input always yields a bit-identical vector.
func Encode(in snapshot.Input) [VectorDim]float32 {
	var v [VectorDim]float32

	v[dimStreet] = streetCode(in.Street)
	v[dimGameType] = float32(in.GameType) / 4
	v[dimPotType] = float32(in.PotType) / 4

	setOneHot(v[:], dimOOPPosBase, positionSlot(in.OOPPosition))
	setOneHot(v[:], dimIPPosBase, positionSlot(in.IPPosition))

	encodeTexture(v[:], AnalyzeBoard(in.Board))

	if in.HeroIP {
		v[dimHeroIP] = 1
	}
	v[dimEffStack] = clamp01(in.EffStackBB / maxStackBB)
	v[dimPot] = clamp01(in.PotBB / maxPotBB)

	for _, tag := range in.Tags {
		for i, slot := range TagSlots {
			if tag == slot {
				v[dimTagBase+i] = 1
				break
			}
		}
	}

	h := historyHash(in.CompactHistory())
	v[dimHashBase] = float32(h>>16&0xFF) / 255
	v[dimHashBase+1] = float32(h>>8&0xFF) / 255
	v[dimHashBase+2] = float32(h&0xFF) / 255

	return v
}

func streetCode(s hand.Street) float32 {
	switch s {
	case hand.StreetFlop:
		return 1.0 / 3
	case hand.StreetTurn:
		return 2.0 / 3
	case hand.StreetRiver:
		return 1
	}
	return 0
}

func positionSlot(name string) int {
	for i, p := range snapshot.PositionSlots {
		if p == name {
			return i
		}
	}
	// Unknown names share the OTHER slot.
	return len(snapshot.PositionSlots) - 1
}

func setOneHot(v []float32, base, slot int) {
	v[base+slot] = 1
}

func encodeTexture(v []float32, t Texture) {
	v[dimTextureBase+0] = boolBit(t.Paired)
	v[dimTextureBase+1] = boolBit(t.Monotone)
	v[dimTextureBase+2] = boolBit(t.TwoTone)
	v[dimTextureBase+3] = boolBit(t.Connected)
	v[dimTextureBase+4] = float32(t.RankArchetype) / rankArchetypeMax
	v[dimTextureBase+5] = float32(t.Secondary) / 7
	v[dimTextureBase+6] = boolBit(t.AcePresent)
	if t.MaxRank >= 2 {
		v[dimTextureBase+7] = float32(t.MaxRank-2) / 12
	}
}

func boolBit(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func clamp01(f float64) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return float32(f)
}

// historyHash is the stable 3-byte digest of the pot-bucketed action
// history (FNV-1a, low 24 bits).
func historyHash(compact string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(compact))
	return h.Sum32() & 0xFFFFFF
}
