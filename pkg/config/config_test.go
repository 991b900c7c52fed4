package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_FILE", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/mood")
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 1440, cfg.JWTTTLMinutes)
	assert.Equal(t, "public/uploads", cfg.UploadDir)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "mood.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
databaseUrl: postgres://file/mood
jwtIssuer: from-file
redis:
  addr: localhost:6379
minio:
  endpoint: localhost:9000
  useSSL: true
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("MINIO_USE_SSL", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://file/mood", cfg.DatabaseURL)
	assert.Equal(t, "from-file", cfg.JWTIssuer)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "localhost:9000", cfg.Minio.Endpoint)
	assert.False(t, cfg.Minio.UseSSL)
}
