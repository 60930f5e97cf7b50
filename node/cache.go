package node

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"solvermatch/internal/logging"
)

// Loader is the read path for solver nodes: fetch, decode, and keep the
// decoded node in an LRU so repeated decision points in the same session
// don't refetch.
type Loader struct {
	fetcher Fetcher
	codec   Codec
	cache   *lru.Cache[string, *SolverNode]
	logger  *slog.Logger
}

func NewLoader(fetcher Fetcher, codec Codec, cacheSize int, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	cache, err := lru.New[string, *SolverNode](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Loader{fetcher: fetcher, codec: codec, cache: cache, logger: logger}, nil
}

// Load returns the decoded node for md, from cache when possible. Decoded
// nodes are shared between callers and must be treated as read-only.
func (l *Loader) Load(ctx context.Context, md Metadata) (*SolverNode, error) {
	key := md.Identity()
	if n, ok := l.cache.Get(key); ok {
		return n, nil
	}

	raw, err := l.fetcher.Fetch(ctx, md)
	if err != nil {
		return nil, err
	}
	n, err := l.codec.Decode(raw)
	if err != nil {
		l.logger.Warn("node decode failed", "node", key, "error", err)
		return nil, err
	}
	l.cache.Add(key, n)
	l.logger.Debug("node loaded", "node", key, "bytes", len(raw), "board_cards", len(n.Board))
	return n, nil
}
