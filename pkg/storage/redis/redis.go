package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/artem13815/mood/pkg/mood"
)

// NewClient creates and pings a Redis client.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// StatsCache implements mood.StatsCache. All statistics of one user live in
// a single hash whose fields are prefixed with the user's generation.
// Invalidate increments the generation and drops the hash, so a value
// computed before a write can only land under a field nobody reads.
type StatsCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *goredis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func statsKey(userID uuid.UUID) string {
	return "mood:stats:" + userID.String()
}

func generationKey(userID uuid.UUID) string {
	return "mood:stats:gen:" + userID.String()
}

func statsField(gen int64, key string) string {
	return strconv.FormatInt(gen, 10) + ":" + key
}

func (c *StatsCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *StatsCache) Get(ctx context.Context, userID uuid.UUID, gen int64, key string) (mood.Stats, bool, error) {
	raw, err := c.rdb.HGet(ctx, statsKey(userID), statsField(gen, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return mood.Stats{}, false, nil
	}
	if err != nil {
		return mood.Stats{}, false, err
	}
	var s mood.Stats
	if err := json.Unmarshal(raw, &s); err != nil {
		return mood.Stats{}, false, fmt.Errorf("decode cached stats: %w", err)
	}
	return s, true, nil
}

func (c *StatsCache) Set(ctx context.Context, userID uuid.UUID, gen int64, key string, s mood.Stats) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	hash := statsKey(userID)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, hash, statsField(gen, key), raw)
	if c.ttl > 0 {
		pipe.Expire(ctx, hash, c.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (c *StatsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, generationKey(userID))
	pipe.Del(ctx, statsKey(userID))
	_, err := pipe.Exec(ctx)
	return err
}
