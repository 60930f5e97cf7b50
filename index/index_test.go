package index

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"solvermatch/hand"
	"solvermatch/snapshot"
)

func TestBuildQueryFilters(t *testing.T) {
	q := Query{
		Vector:      []float32{0.5, 0.25},
		Street:      hand.StreetRiver,
		GameType:    hand.GameTypeCash,
		PotType:     snapshot.PotTypeSingle,
		OOPPosition: "BB",
		IPPosition:  "BTN",
	}
	expr, err := buildQuery(q, 1)
	require.NoError(t, err)

	for _, want := range []string{
		"@street:{river}",
		"@game_type:{cash}",
		"@pot_type:{srp}",
		"@pos_oop:{BB}",
		"@pos_ip:{BTN}",
		"=>[KNN 1 @vec $vec AS dist]",
	} {
		require.Contains(t, expr, want)
	}

	wide, err := buildQuery(q, 8)
	require.NoError(t, err)
	require.Contains(t, wide, "KNN 8")
}

func TestBuildQueryWildcardWithoutFilters(t *testing.T) {
	expr, err := buildQuery(Query{Vector: []float32{1}}, 1)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(expr, "*=>"), "got %q", expr)

	_, err = buildQuery(Query{}, 1)
	require.Error(t, err)
}

func TestBuildQueryEscapesPositions(t *testing.T) {
	expr, err := buildQuery(Query{Vector: []float32{1}, OOPPosition: "UTG+1"}, 1)
	require.NoError(t, err)
	require.Contains(t, expr, `@pos_oop:{UTG\+1}`)
}

func TestVectorBlobLayout(t *testing.T) {
	blob := vectorBlob([]float32{1, 0.5})
	require.Len(t, blob, 8)
	require.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(blob[:4])))
	require.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(blob[4:])))
}

func TestParseMatch(t *testing.T) {
	fields := map[string]string{
		distanceAlias: "0.12",
		FieldBucket:   "solver-nodes",
		FieldKey:      "cash/river/pack-0007.bin",
		FieldOffset:   "1024",
		FieldLength:   "4096",
		FieldStreet:   "river",
		FieldGameType: "cash",
		FieldPotType:  "srp",
		FieldOOP:      "BB",
		FieldIP:       "BTN",
		FieldPotBB:    "28.5",
		FieldStackBB:  "92",
		FieldTags:     "aggressor,deep_stack",
	}

	m, err := parseMatch(fields)
	require.NoError(t, err)
	require.InDelta(t, 0.88, m.Similarity, 1e-9)
	require.Equal(t, "solver-nodes", m.Metadata.Bucket)
	require.Equal(t, int64(1024), m.Metadata.Offset)
	require.Equal(t, int64(4096), m.Metadata.Length)
	require.Equal(t, hand.StreetRiver, m.Metadata.Street)
	require.Equal(t, snapshot.PotTypeSingle, m.Metadata.PotType)
	require.Equal(t, []string{"aggressor", "deep_stack"}, m.Metadata.Tags)
}

func TestParseMatchClampsSimilarity(t *testing.T) {
	fields := map[string]string{
		distanceAlias: "1.7",
		FieldBucket:   "b",
		FieldKey:      "k",
		FieldOffset:   "0",
		FieldLength:   "1",
	}
	m, err := parseMatch(fields)
	require.NoError(t, err)
	require.Equal(t, 0.0, m.Similarity)
}

func TestParseMatchRejectsBrokenDocs(t *testing.T) {
	_, err := parseMatch(map[string]string{distanceAlias: "not-a-number"})
	require.Error(t, err)

	_, err = parseMatch(map[string]string{distanceAlias: "0.1"})
	require.Error(t, err, "missing blob location")
}
