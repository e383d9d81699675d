package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "moneySmartKids", cfg.Storage.SlotKey)
	assert.Equal(t, 20, cfg.Game.AllowanceTotal)
	assert.Equal(t, cfg.Game.AllowanceTotal, cfg.Game.NeedsTarget+cfg.Game.WantsTarget+cfg.Game.SavingsTarget)
	assert.Equal(t, 180, cfg.Game.ShoppingTime)
	assert.Equal(t, 1, cfg.Game.TickInterval)
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "config.json")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "a default file is written for next time")
}

func TestLoadConfigReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	custom := DefaultConfig()
	custom.Server.Port = "9090"
	custom.Game.ShoppingTime = 60
	require.NoError(t, SaveConfig(custom, path))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Game.ShoppingTime)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}
