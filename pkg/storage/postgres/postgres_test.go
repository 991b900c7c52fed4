package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"migrations/00001_users.sql", "migrations/00002_mood_entries.sql"}, names)

	for _, name := range names {
		raw, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "-- +goose Up", name)
		assert.Contains(t, string(raw), "-- +goose Down", name)
	}

	raw, err := fs.ReadFile(migrations, "migrations/00002_mood_entries.sql")
	require.NoError(t, err)
	sql := string(raw)
	assert.True(t, strings.Contains(sql, "UNIQUE (user_id, entry_date)"))
	assert.True(t, strings.Contains(sql, "ON DELETE CASCADE"))
}

func TestConnectRejectsBadDSN(t *testing.T) {
	_, err := Connect(context.Background(), "://not a dsn")
	assert.Error(t, err)
}
