package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"moodlog"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "moodlog.db", cfg.DatabasePath)
	assert.False(t, cfg.Encrypt)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-f", "custom.db", "-e", "-l", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "custom.db", cfg.DatabasePath)
	assert.True(t, cfg.Encrypt)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"json.db","encrypt":true}`), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.True(t, cfg.Encrypt)
	// untouched by the sparse file
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsBeatJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"json.db"}`), 0o600))
	withArgs(t, "-c", path, "-f", "flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "flag.db", cfg.DatabasePath)
}
