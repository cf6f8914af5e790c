package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  location: UTC
  cors_origins:
    - http://localhost:3000
database:
  dsn: "file:/tmp/test.db"
  max_open_conns: 2
media:
  dir: /tmp/tubefeed-media
  max_size: 1024
  cleanup_interval: 30m
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o600)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.GetCORSOrigins())
		assert.Equal(t, time.UTC, cfg.GetLocation())
		assert.Equal(t, "file:/tmp/test.db", cfg.Database.DSN)
		assert.Equal(t, 2, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns, "default")
		assert.Equal(t, MediaConfig{Dir: "/tmp/tubefeed-media", MaxSize: 1024, CleanupInterval: 30 * time.Minute,
			CleanupAge: time.Hour}, cfg.GetMediaConfig())
	})

	t.Run("defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("server:\n  listen: \":8081\"\n"), 0o600)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "Local", cfg.Server.Location)
		assert.Equal(t, "file:tubefeed.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "media", cfg.Media.Dir)
		assert.Equal(t, int64(5*1024*1024), cfg.Media.MaxSize)
		assert.Equal(t, 6*time.Hour, cfg.Media.CleanupInterval)
		assert.Equal(t, time.Hour, cfg.Media.CleanupAge)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TUBEFEED_TEST_DSN", "file:env.db")
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("database:\n  dsn: ${TUBEFEED_TEST_DSN}\n"), 0o600)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "file:env.db", cfg.Database.DSN)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("server: [\n"), 0o600))
		_, err := Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("validation errors", func(t *testing.T) {
		tbl := []struct {
			name, content, errText string
		}{
			{"short timeout", "server:\n  timeout: 10ms\n", "timeout must be at least 1 second"},
			{"bad location", "server:\n  location: Mars/Base\n", "server.location"},
			{"bad origin", "server:\n  cors_origins: [localhost]\n", "invalid origin"},
			{"negative media size", "media:\n  max_size: -1\n", "media.max_size"},
			{"short cleanup interval", "media:\n  cleanup_interval: 10s\n", "media.cleanup_interval"},
			{"negative cleanup age", "media:\n  cleanup_age: -1h\n", "media.cleanup_age"},
		}
		for _, tt := range tbl {
			t.Run(tt.name, func(t *testing.T) {
				configPath := filepath.Join(t.TempDir(), "cfg.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0o600))
				_, err := Load(configPath)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			})
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := Default()
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	cfg.Media.Dir = ""
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media.dir is required")
}

func TestCheckKnownSections(t *testing.T) {
	schema := map[string]interface{}{"$defs": map[string]interface{}{
		"Config": map[string]interface{}{"properties": map[string]interface{}{"server": map[string]interface{}{}}},
	}}
	assert.NoError(t, checkKnownSections(schema, map[string]interface{}{"server": 1}))
	assert.Error(t, checkKnownSections(schema, map[string]interface{}{"llm": 1}))
	assert.Error(t, checkKnownSections(map[string]interface{}{}, map[string]interface{}{}))
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "cors_origins")
	assert.Contains(t, string(data), "MediaConfig")
}
