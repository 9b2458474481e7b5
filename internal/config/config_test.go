package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "scheduler"
dbname = "scheduler"

[auth]
jwt_secret = "from-file"

[scheduling]
timezone = "Europe/Moscow"
apply_buffer_on_admission = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envDBHost, envDBPort, envJWTSecret, envHTTPPort, envTimezone} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Scheduling.ApplyBufferOnAdmission)

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432 user=scheduler")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envJWTSecret, "from-env")
	t.Setenv(envDBPort, "6543")

	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\ndbname = \"x\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\ndbname = \"x\"\n[auth]\njwt_secret = \"s\"\n[scheduling]\ntimezone = \"Mars/Olympus\"\n"))
		assert.ErrorIs(t, err, ErrUnknownTimezone)
	})
}
