// indexload publishes a solver-node manifest into the Redis vector index.
// It creates the index when missing and upserts one hash per node, so a
// corpus can be reloaded in place.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"solvermatch/index"
	"solvermatch/internal/logging"
)

func main() {
	manifestPath := flag.String("manifest", "", "path to the sqlite node manifest")
	redisAddr := flag.String("redis", "localhost:6379", "redis address")
	indexName := flag.String("index", "solvernode-idx", "search index name")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := logging.New(*logLevel)
	if *manifestPath == "" {
		logger.Error("missing -manifest")
		os.Exit(2)
	}

	if err := run(context.Background(), *manifestPath, *redisAddr, *indexName); err != nil {
		logger.Error("indexload failed", "error", err)
		os.Exit(1)
	}
	logger.Info("manifest loaded", "manifest", *manifestPath, "index", *indexName)
}

func run(ctx context.Context, manifestPath, redisAddr, indexName string) error {
	db, err := sql.Open("sqlite", manifestPath)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer client.Close()

	if err := index.EnsureIndex(ctx, client, indexName); err != nil {
		return err
	}

	loaded := 0
	err = readManifest(ctx, db, func(n ManifestNode) error {
		if err := upsertNode(ctx, client, n); err != nil {
			return err
		}
		loaded++
		return nil
	})
	if err != nil {
		return err
	}
	if loaded == 0 {
		return fmt.Errorf("manifest %s has no nodes", manifestPath)
	}
	return nil
}
