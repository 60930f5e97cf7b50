package node

import (
	"fmt"

	"solvermatch/hand"
	"solvermatch/snapshot"
)

// Metadata points into node storage and carries the denormalized fields the
// vector index filters and ranks on. A metadata value uniquely identifies
// one immutable published node.
type Metadata struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Offset int64  `json:"offset"`
	Length int64  `json:"length"`

	Street      hand.Street      `json:"street"`
	GameType    hand.GameType    `json:"game_type"`
	PotType     snapshot.PotType `json:"pot_type"`
	OOPPosition string           `json:"positions_oop"`
	IPPosition  string           `json:"positions_ip"`
	PotBB       float64          `json:"pot_bb"`
	EffStackBB  float64          `json:"stack_bb"`
	Tags        []string         `json:"tags,omitempty"`
}

// Identity is the cache key for the node the metadata points at. Published
// nodes are immutable, so identity never needs invalidation.
func (m Metadata) Identity() string {
	return fmt.Sprintf("%s|%s|%d|%d", m.Bucket, m.Key, m.Offset, m.Length)
}
