// Package pipeline turns one recorded hand into its ordered list of solver
// snapshots: replay, villain selection, canonicalization, vector match, and
// node decode with graceful per-snapshot degradation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"solvermatch/analysis"
	"solvermatch/feature"
	"solvermatch/hand"
	"solvermatch/index"
	"solvermatch/internal/logging"
	"solvermatch/node"
	"solvermatch/replay"
	"solvermatch/snapshot"
)

// NodeLoader yields decoded solver nodes for matched metadata.
type NodeLoader interface {
	Load(ctx context.Context, md node.Metadata) (*node.SolverNode, error)
}

// Snapshot is one decision point's full result. SolverBlock is nil whenever
// HasMatch is false or the node could not be decoded.
type Snapshot struct {
	Index                  int
	PrimaryVillain         int
	PrimaryVillainPosition string
	HeroAction             snapshot.Token
	Input                  snapshot.Input
	HasMatch               bool
	SimilarityScore        float64
	SolverBlock            *analysis.SolverBlock
}

// Generator runs the snapshot pipeline against injected collaborators.
type Generator struct {
	cfg      Config
	searcher index.Searcher
	loader   NodeLoader
	logger   *slog.Logger
}

func NewGenerator(cfg Config, searcher index.Searcher, loader NodeLoader, logger *slog.Logger) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{cfg: cfg, searcher: searcher, loader: loader, logger: logger}, nil
}

// NewFromConfig wires the production collaborators: a Redis vector index
// and an HTTP blob store behind an LRU node cache.
func NewFromConfig(cfg Config, logger *slog.Logger) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis_addr is required")
	}
	if cfg.StorageBaseURL == "" {
		return nil, fmt.Errorf("storage_base_url is required")
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	searcher := index.NewRedisSearcher(client, cfg.IndexName, cfg.SimilarityThreshold, cfg.SearchKNN, logger)

	codec, err := node.NewBinaryCodec()
	if err != nil {
		return nil, err
	}
	fetcher := node.NewHTTPFetcher(cfg.StorageBaseURL, cfg.FetchTimeout)
	loader, err := node.NewLoader(fetcher, codec, cfg.CacheSize, logger)
	if err != nil {
		return nil, err
	}
	return NewGenerator(cfg, searcher, loader, logger)
}

// GenerateSnapshots replays the hand and matches every relevant postflop
// hero decision against the solver library. The hand is never mutated;
// failures of the index or storage degrade only the affected snapshot.
func (g *Generator) GenerateSnapshots(ctx context.Context, h *hand.Hand) ([]Snapshot, error) {
	tracker, err := replay.NewTracker(h)
	if err != nil {
		return nil, err
	}
	points := replay.DecisionPoints(tracker)
	if len(points) == 0 {
		return nil, nil
	}

	hero, ok := h.HeroSeat()
	if !ok {
		return nil, &hand.ValidationError{Field: "seats", Reason: "no_hero", Message: "hand has no hero seat"}
	}
	villainIdx, ok := snapshot.SelectVillain(points[0], hero.Index)
	if !ok {
		g.logger.Debug("no villain candidate", "hand", h.HandID)
		return nil, nil
	}

	snaps := make([]Snapshot, 0, len(points))
	for _, dp := range points {
		if !snapshot.Relevant(dp, hero.Index, villainIdx) {
			continue
		}
		in, err := snapshot.Assemble(tracker, dp, hero.Index, villainIdx)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, Snapshot{
			Index:                  len(snaps),
			PrimaryVillain:         villainIdx,
			PrimaryVillainPosition: in.VillainPosition(),
			HeroAction:             snapshot.Canonicalize(dp.Action, dp.State.Pot, h.Table.BigBlind),
			Input:                  in,
		})
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.cfg.Fanout)
	for i := range snaps {
		i := i
		grp.Go(func() error {
			g.resolve(gctx, &snaps[i])
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return snaps, nil
}

// resolve runs search then fetch+decode for one snapshot. Every failure
// path leaves the snapshot usable: unmatched, or matched without solver
// data.
func (g *Generator) resolve(ctx context.Context, s *Snapshot) {
	vector := feature.Encode(s.Input)
	query := index.Query{
		Vector:      vector[:],
		Street:      s.Input.Street,
		GameType:    s.Input.GameType,
		PotType:     s.Input.PotType,
		OOPPosition: s.Input.OOPPosition,
		IPPosition:  s.Input.IPPosition,
	}

	var match index.Match
	err := g.withRetry(ctx, g.cfg.SearchTimeout, func(callCtx context.Context) error {
		var serr error
		match, serr = g.searcher.Search(callCtx, query)
		return serr
	})
	switch {
	case errors.Is(err, index.ErrNoMatch):
		return
	case err != nil:
		g.logger.Warn("index search failed", "snapshot", s.Index, "error", err)
		return
	}
	s.HasMatch = true
	s.SimilarityScore = match.Similarity

	var solved *node.SolverNode
	err = g.withRetry(ctx, g.cfg.FetchTimeout, func(callCtx context.Context) error {
		var lerr error
		solved, lerr = g.loader.Load(callCtx, match.Metadata)
		return lerr
	})
	if err != nil {
		g.logger.Warn("node load failed", "snapshot", s.Index,
			"node", match.Metadata.Identity(), "error", err)
		return
	}

	block, err := analysis.BuildSolverBlock(solved, s.Input)
	if err != nil {
		g.logger.Warn("solver block failed", "snapshot", s.Index, "error", err)
		return
	}
	s.SolverBlock = block
}

// withRetry runs fn under a per-call timeout with exponential backoff.
// Domain outcomes (no match, missing blob, corrupt blob) are final; only
// transport-level errors are retried.
func (g *Generator) withRetry(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	backoff := g.cfg.RetryBackoff
	var err error
	for attempt := 0; attempt <= g.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		err = fn(callCtx)
		cancel()
		if err == nil || !retryable(err) {
			return err
		}
	}
	return err
}

func retryable(err error) bool {
	if errors.Is(err, index.ErrNoMatch) || errors.Is(err, node.ErrNotFound) {
		return false
	}
	var derr *node.DecodeError
	return !errors.As(err, &derr)
}
