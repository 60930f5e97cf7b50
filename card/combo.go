package card

// ComboCount is the number of distinct two-card starting hands.
const ComboCount = 1326

// Combo is an unordered pair of hole cards. Lo.Ordinal() < Hi.Ordinal().
type Combo struct {
	Lo Card
	Hi Card
}

func (cb Combo) String() string {
	// Display high card first, hand-history style.
	if cb.Hi.HighValue() >= cb.Lo.HighValue() {
		return cb.Hi.String() + cb.Lo.String()
	}
	return cb.Lo.String() + cb.Hi.String()
}

// Contains reports whether the combo includes c.
func (cb Combo) Contains(c Card) bool {
	return cb.Lo == c || cb.Hi == c
}

// ComboIndex maps an unordered pair of cards onto 0..1325.
// The layout is the upper triangle of the 52x52 ordinal matrix.
func ComboIndex(a, b Card) int {
	i, j := a.Ordinal(), b.Ordinal()
	if i > j {
		i, j = j, i
	}
	return i*52 - i*(i+1)/2 + (j - i - 1)
}

// ComboAt is the inverse of ComboIndex.
func ComboAt(idx int) Combo {
	i := 0
	for {
		rowLen := 51 - i
		if idx < rowLen {
			break
		}
		idx -= rowLen
		i++
	}
	j := i + 1 + idx
	return Combo{Lo: FromOrdinal(i), Hi: FromOrdinal(j)}
}
