package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"solvermatch/feature"
	"solvermatch/index"
)

// ManifestNode is one row of the publication manifest: where a node's blob
// lives plus the metadata and feature vector the search index needs.
type ManifestNode struct {
	Bucket   string
	Key      string
	Offset   int64
	Length   int64
	Street   string
	GameType string
	PotType  string
	PosOOP   string
	PosIP    string
	PotBB    float64
	StackBB  float64
	Tags     string
	Vector   []byte
}

func (n ManifestNode) validate() error {
	if n.Bucket == "" || n.Key == "" {
		return fmt.Errorf("missing blob location")
	}
	if n.Length <= 0 {
		return fmt.Errorf("non-positive blob length %d", n.Length)
	}
	if len(n.Vector) != 4*feature.VectorDim {
		return fmt.Errorf("vector is %d bytes, want %d", len(n.Vector), 4*feature.VectorDim)
	}
	return nil
}

// redisKey is the hash key the node is indexed under; the identity mirrors
// node.Metadata.Identity so reloads overwrite instead of duplicating.
func (n ManifestNode) redisKey() string {
	return fmt.Sprintf("%s%s|%s|%d|%d", index.KeyPrefix, n.Bucket, n.Key, n.Offset, n.Length)
}

func (n ManifestNode) hashFields() map[string]interface{} {
	return map[string]interface{}{
		index.FieldBucket:   n.Bucket,
		index.FieldKey:      n.Key,
		index.FieldOffset:   n.Offset,
		index.FieldLength:   n.Length,
		index.FieldStreet:   n.Street,
		index.FieldGameType: n.GameType,
		index.FieldPotType:  n.PotType,
		index.FieldOOP:      n.PosOOP,
		index.FieldIP:       n.PosIP,
		index.FieldPotBB:    n.PotBB,
		index.FieldStackBB:  n.StackBB,
		index.FieldTags:     n.Tags,
		index.FieldVector:   n.Vector,
	}
}

const manifestQuery = `
SELECT bucket, key, offset, length,
       street, game_type, pot_type, pos_oop, pos_ip,
       pot_bb, stack_bb, tags, vector
FROM nodes`

// readManifest streams every manifest row through fn.
func readManifest(ctx context.Context, db *sql.DB, fn func(ManifestNode) error) error {
	rows, err := db.QueryContext(ctx, manifestQuery)
	if err != nil {
		return fmt.Errorf("query manifest: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n ManifestNode
		if err := rows.Scan(
			&n.Bucket, &n.Key, &n.Offset, &n.Length,
			&n.Street, &n.GameType, &n.PotType, &n.PosOOP, &n.PosIP,
			&n.PotBB, &n.StackBB, &n.Tags, &n.Vector,
		); err != nil {
			return fmt.Errorf("scan manifest row: %w", err)
		}
		if err := fn(n); err != nil {
			return err
		}
	}
	return rows.Err()
}

// upsertNode writes one node's search hash.
func upsertNode(ctx context.Context, client *redis.Client, n ManifestNode) error {
	if err := n.validate(); err != nil {
		return fmt.Errorf("node %s/%s@%d: %w", n.Bucket, n.Key, n.Offset, err)
	}
	if err := client.HSet(ctx, n.redisKey(), n.hashFields()).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", n.redisKey(), err)
	}
	return nil
}
