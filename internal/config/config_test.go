package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigService(filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cs := NewConfigService("")

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[host]
listen = "127.0.0.1:7300"
allowed_origins = ["http://*.example.com"]
keywords_file = "keywords.json"

[ui]
case_sensitive = true
matches_limit = 0

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7300", cfg.Host.Listen)
	assert.Equal(t, []string{"http://*.example.com"}, cfg.Host.AllowedOrigins)
	assert.Equal(t, "keywords.json", cfg.Host.KeywordsFile)
	assert.Equal(t, "http://localhost:7300", cfg.Host.Origin)
	assert.True(t, cfg.UISettings.CaseSensitive)
	assert.True(t, cfg.UISettings.HighlightAll)
	assert.Equal(t, DefaultMatchesLimit, cfg.UISettings.MatchesLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Sink)
	assert.Equal(t, "en", cfg.L10n.Locale)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[host\nlisten ="), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Host.CallbackURL = "http://localhost:7300/callback"
	cfg.UISettings.EntireWord = true
	cfg.L10n.Locale = "de"
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, path, cs.Path())
}
