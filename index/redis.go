package index

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"solvermatch/hand"
	"solvermatch/internal/logging"
	"solvermatch/node"
	"solvermatch/snapshot"
)

// Hash field names shared by the searcher and the loader in cmd/indexload.
const (
	FieldVector   = "vec"
	FieldStreet   = "street"
	FieldGameType = "game_type"
	FieldPotType  = "pot_type"
	FieldOOP      = "pos_oop"
	FieldIP       = "pos_ip"
	FieldBucket   = "bucket"
	FieldKey      = "blob_key"
	FieldOffset   = "blob_offset"
	FieldLength   = "blob_length"
	FieldPotBB    = "pot_bb"
	FieldStackBB  = "stack_bb"
	FieldTags     = "tags"
	distanceAlias = "dist"
	KeyPrefix     = "solvernode:"
)

// RedisSearcher runs KNN queries against a RediSearch vector index of node
// metadata.
type RedisSearcher struct {
	client    *redis.Client
	indexName string
	threshold float64
	knn       int
	logger    *slog.Logger
}

func NewRedisSearcher(client *redis.Client, indexName string, threshold float64, knn int, logger *slog.Logger) *RedisSearcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	if knn <= 0 {
		knn = 1
	}
	return &RedisSearcher{client: client, indexName: indexName, threshold: threshold, knn: knn, logger: logger}
}

func (s *RedisSearcher) Search(ctx context.Context, q Query) (Match, error) {
	expr, err := buildQuery(q, s.knn)
	if err != nil {
		return Match{}, err
	}

	res, err := s.client.FTSearchWithArgs(ctx, s.indexName, expr, &redis.FTSearchOptions{
		DialectVersion: 2,
		Params: map[string]interface{}{
			"vec": string(vectorBlob(q.Vector)),
		},
		SortBy:      []redis.FTSearchSortBy{{FieldName: distanceAlias, Asc: true}},
		LimitOffset: 0,
		Limit:       s.knn,
	}).Result()
	if err != nil {
		return Match{}, fmt.Errorf("index search: %w", err)
	}
	if len(res.Docs) == 0 {
		return Match{}, ErrNoMatch
	}

	m, err := parseMatch(res.Docs[0].Fields)
	if err != nil {
		return Match{}, fmt.Errorf("index document %s: %w", res.Docs[0].ID, err)
	}
	if m.Similarity < s.threshold {
		s.logger.Debug("nearest node below threshold",
			"node", m.Metadata.Identity(), "similarity", m.Similarity, "threshold", s.threshold)
		return Match{}, ErrNoMatch
	}
	return m, nil
}

// buildQuery renders the tag prefilters plus the KNN clause. Cosine
// distance comes back under the dist alias; results sort by it, so the
// first document is always the best of the knn candidates.
func buildQuery(q Query, knn int) (string, error) {
	if len(q.Vector) == 0 {
		return "", fmt.Errorf("query has empty vector")
	}
	if knn <= 0 {
		knn = 1
	}
	var filters []string
	if q.Street != 0 {
		filters = append(filters, fmt.Sprintf("@%s:{%s}", FieldStreet, q.Street))
	}
	if q.GameType != 0 {
		filters = append(filters, fmt.Sprintf("@%s:{%s}", FieldGameType, q.GameType))
	}
	if q.PotType != snapshot.PotTypeUnknown {
		filters = append(filters, fmt.Sprintf("@%s:{%s}", FieldPotType, q.PotType))
	}
	if q.OOPPosition != "" {
		filters = append(filters, fmt.Sprintf("@%s:{%s}", FieldOOP, escapeTag(q.OOPPosition)))
	}
	if q.IPPosition != "" {
		filters = append(filters, fmt.Sprintf("@%s:{%s}", FieldIP, escapeTag(q.IPPosition)))
	}

	prefix := "*"
	if len(filters) > 0 {
		prefix = "(" + strings.Join(filters, " ") + ")"
	}
	return fmt.Sprintf("%s=>[KNN %d @%s $vec AS %s]", prefix, knn, FieldVector, distanceAlias), nil
}

// escapeTag backslash-escapes the punctuation RediSearch treats as syntax
// inside tag values ("UTG+1" and friends).
func escapeTag(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r == '+' || r == '-' || r == '|' || r == '{' || r == '}' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// vectorBlob serializes the vector the way RediSearch expects FLOAT32
// params: raw little-endian bytes.
func vectorBlob(v []float32) []byte {
	out := make([]byte, 0, 4*len(v))
	for _, f := range v {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}

func parseMatch(fields map[string]string) (Match, error) {
	dist, err := strconv.ParseFloat(fields[distanceAlias], 64)
	if err != nil {
		return Match{}, fmt.Errorf("parse distance %q: %w", fields[distanceAlias], err)
	}

	md := node.Metadata{
		Bucket:      fields[FieldBucket],
		Key:         fields[FieldKey],
		OOPPosition: fields[FieldOOP],
		IPPosition:  fields[FieldIP],
	}
	if md.Bucket == "" || md.Key == "" {
		return Match{}, fmt.Errorf("document missing blob location")
	}
	if md.Offset, err = strconv.ParseInt(fields[FieldOffset], 10, 64); err != nil {
		return Match{}, fmt.Errorf("parse offset %q: %w", fields[FieldOffset], err)
	}
	if md.Length, err = strconv.ParseInt(fields[FieldLength], 10, 64); err != nil {
		return Match{}, fmt.Errorf("parse length %q: %w", fields[FieldLength], err)
	}
	md.Street = parseStreet(fields[FieldStreet])
	md.GameType = parseGameType(fields[FieldGameType])
	md.PotType = parsePotType(fields[FieldPotType])
	if v := fields[FieldPotBB]; v != "" {
		md.PotBB, _ = strconv.ParseFloat(v, 64)
	}
	if v := fields[FieldStackBB]; v != "" {
		md.EffStackBB, _ = strconv.ParseFloat(v, 64)
	}
	if v := fields[FieldTags]; v != "" {
		md.Tags = strings.Split(v, ",")
	}

	sim := 1 - dist
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return Match{Metadata: md, Similarity: sim}, nil
}

func parseStreet(v string) hand.Street {
	for s, name := range hand.StreetDictionary {
		if name == v {
			return s
		}
	}
	return 0
}

func parseGameType(v string) hand.GameType {
	for g, name := range hand.GameTypeDictionary {
		if name == v {
			return g
		}
	}
	return 0
}

func parsePotType(v string) snapshot.PotType {
	for p, name := range snapshot.PotTypeDictionary {
		if name == v {
			return p
		}
	}
	return snapshot.PotTypeUnknown
}
