package checkers

import (
	"context"
	"time"
)

// MinioChecker reports object storage availability.
type MinioChecker struct {
	store Pinger
}

func NewMinioChecker(store Pinger) *MinioChecker {
	return &MinioChecker{store: store}
}

func (c *MinioChecker) Name() string { return "minio" }

func (c *MinioChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.store.Ping(ctx)
}
