package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestReady(t *testing.T) {
	down := errors.New("connection refused")

	assert.NoError(t, NewService().Ready(context.Background()))
	assert.NoError(t, NewService(stubChecker{name: "postgres"}, nil).Ready(context.Background()))

	err := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: down}).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "redis: connection refused")
}
