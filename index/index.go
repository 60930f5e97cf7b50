// Package index matches encoded decision points against the library of
// precomputed solver nodes using a Redis vector index.
package index

import (
	"context"
	"errors"

	"solvermatch/hand"
	"solvermatch/node"
	"solvermatch/snapshot"
)

// ErrNoMatch reports that no indexed node passed the filters, or that the
// nearest one fell below the similarity threshold. Expected in normal
// operation: the library never covers every spot.
var ErrNoMatch = errors.New("no solver node matched")

// Query is one lookup against the node index. The categorical fields are
// hard prefilters; the vector ranks whatever survives them.
type Query struct {
	Vector      []float32
	Street      hand.Street
	GameType    hand.GameType
	PotType     snapshot.PotType
	OOPPosition string
	IPPosition  string
}

// Match is the best surviving node with its cosine similarity in [0,1].
type Match struct {
	Metadata   node.Metadata
	Similarity float64
}

// Searcher finds the nearest indexed node for a query.
type Searcher interface {
	Search(ctx context.Context, q Query) (Match, error)
}
