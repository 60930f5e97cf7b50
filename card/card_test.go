package card

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want Card
		str  string
	}{
		{"As", CardSpadeA, "As"},
		{"10h", CardHeartT, "Th"},
		{"Td", CardDiamondT, "Td"},
		{"2c", CardClub2, "2c"},
		{"kh", CardHeartK, "Kh"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.str {
			t.Fatalf("String() = %q, want %q", got.String(), tc.str)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "A", "Ax", "1s", "14d", "ss"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
	}
}

func TestParseListRejectsDuplicates(t *testing.T) {
	if _, err := ParseList([]string{"As", "Kd", "As"}); err == nil {
		t.Fatalf("expected duplicate card error")
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	seen := make(map[Card]struct{}, 52)
	for ord := 0; ord < 52; ord++ {
		c := FromOrdinal(ord)
		if c.Ordinal() != ord {
			t.Fatalf("ordinal round trip failed: %d -> %v -> %d", ord, c, c.Ordinal())
		}
		if _, ok := seen[c]; ok {
			t.Fatalf("duplicate card for ordinal %d: %v", ord, c)
		}
		seen[c] = struct{}{}
	}
}

func TestHighValueAceHigh(t *testing.T) {
	if CardSpadeA.HighValue() != 14 {
		t.Fatalf("ace should compare as 14, got %d", CardSpadeA.HighValue())
	}
	if CardHeartK.HighValue() != 13 {
		t.Fatalf("king should compare as 13, got %d", CardHeartK.HighValue())
	}
}

func TestComboIndexRoundTrip(t *testing.T) {
	seen := make(map[int]struct{}, ComboCount)
	deck := Deck()
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			idx := ComboIndex(deck[i], deck[j])
			if idx < 0 || idx >= ComboCount {
				t.Fatalf("combo index out of range: %d", idx)
			}
			if _, ok := seen[idx]; ok {
				t.Fatalf("duplicate combo index %d", idx)
			}
			seen[idx] = struct{}{}

			cb := ComboAt(idx)
			if ComboIndex(cb.Lo, cb.Hi) != idx {
				t.Fatalf("ComboAt(%d) round trip failed: %v", idx, cb)
			}
			if ComboIndex(deck[j], deck[i]) != idx {
				t.Fatalf("combo index should ignore card order")
			}
		}
	}
	if len(seen) != ComboCount {
		t.Fatalf("expected %d combos, got %d", ComboCount, len(seen))
	}
}
