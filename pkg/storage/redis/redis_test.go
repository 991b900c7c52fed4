package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/mood/pkg/mood"
)

func TestKeysArePerUserAndGeneration(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, "mood:stats:"+a.String(), statsKey(a))
	assert.NotEqual(t, statsKey(a), statsKey(b))
	assert.Equal(t, "mood:stats:gen:"+a.String(), generationKey(a))
	assert.NotEqual(t, statsKey(a), generationKey(a))
	assert.Equal(t, "3:week:2026-03-08", statsField(3, "week:2026-03-08"))
	assert.NotEqual(t, statsField(3, "week:2026-03-08"), statsField(4, "week:2026-03-08"))
}

func TestStatsCacheUnreachable(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewStatsCache(rdb, time.Minute)
	ctx := context.Background()
	id := uuid.New()

	_, err := c.Generation(ctx, id)
	assert.Error(t, err)
	_, ok, err := c.Get(ctx, id, 0, "month:2026-02-15")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, id, 0, "month:2026-02-15", mood.Aggregate(nil)))
	assert.Error(t, c.Invalidate(ctx, id))
}

func TestNewClientFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := NewClient(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
