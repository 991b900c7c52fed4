package checkers

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPostgresCheckerHasDeadline(t *testing.T) {
	c := NewPostgresChecker(pingFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		if !ok {
			return errors.New("no deadline")
		}
		return nil
	}))
	assert.Equal(t, "postgres", c.Name())
	assert.NoError(t, c.Check(context.Background()))
}

func TestRedisCheckerDown(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	c := NewRedisChecker(rdb)
	assert.Equal(t, "redis", c.Name())
	assert.Error(t, c.Check(context.Background()))
}
