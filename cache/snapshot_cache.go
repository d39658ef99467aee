package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"library-management-system/db"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps the dashboard snapshot in Redis for a short TTL so the
// stats endpoint does not recompute the aggregates on every poll. Every write
// path (borrow, return, catalog and member edits) invalidates it.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func snapshotKey() string { return "library:stats:snapshot" }

func (c *SnapshotCache) Get(ctx context.Context) (*db.Snapshot, error) {
	b, err := c.rdb.Get(ctx, snapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var s db.Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *SnapshotCache) Set(ctx context.Context, s *db.Snapshot) error {
	b, _ := json.Marshal(s)
	return c.rdb.Set(ctx, snapshotKey(), b, c.ttl).Err()
}

func (c *SnapshotCache) Invalidate(ctx context.Context) {
	_ = c.rdb.Del(ctx, snapshotKey()).Err()
}
