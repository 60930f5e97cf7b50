package index

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"solvermatch/feature"
)

// EnsureIndex creates the node metadata index when it does not exist yet.
// The vector field is FLAT cosine over the 61-dim feature encoding; FLAT
// keeps recall exact, and node libraries are small enough that brute force
// stays fast.
func EnsureIndex(ctx context.Context, client *redis.Client, indexName string) error {
	if _, err := client.FTInfo(ctx, indexName).Result(); err == nil {
		return nil
	}

	err := client.FTCreate(ctx, indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []interface{}{KeyPrefix},
		},
		&redis.FieldSchema{FieldName: FieldStreet, FieldType: redis.SearchFieldTypeTag},
		&redis.FieldSchema{FieldName: FieldGameType, FieldType: redis.SearchFieldTypeTag},
		&redis.FieldSchema{FieldName: FieldPotType, FieldType: redis.SearchFieldTypeTag},
		&redis.FieldSchema{FieldName: FieldOOP, FieldType: redis.SearchFieldTypeTag},
		&redis.FieldSchema{FieldName: FieldIP, FieldType: redis.SearchFieldTypeTag},
		&redis.FieldSchema{FieldName: FieldPotBB, FieldType: redis.SearchFieldTypeNumeric},
		&redis.FieldSchema{FieldName: FieldStackBB, FieldType: redis.SearchFieldTypeNumeric},
		&redis.FieldSchema{
			FieldName: FieldVector,
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            feature.VectorDim,
					DistanceMetric: "COSINE",
				},
			},
		},
	).Err()
	if err != nil {
		return fmt.Errorf("create index %s: %w", indexName, err)
	}
	return nil
}
