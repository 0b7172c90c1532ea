package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvCurrency, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "₹", cfg.General.CurrencySymbol)
	assert.Equal(t, "02/01/2006", cfg.General.DateLayout)
	assert.Equal(t, []string{"Food", "Travel", "Utilities", "Shopping", "Others"}, cfg.General.Categories)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvCurrency, "")

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "$"
	cfg.General.Categories = []string{"Rent", "Food"}
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvCurrency, "")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fintrack"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general]\ncurrency_symbol = \"€\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "€", cfg.General.CurrencySymbol)
	assert.Equal(t, "expenses.csv", cfg.General.ExportPath)
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTheme, "terminal")
	t.Setenv(EnvCurrency, "£")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "£", cfg.General.CurrencySymbol)
}

func TestRender(t *testing.T) {
	cfg := DefaultConfig()

	out, err := Render(cfg, "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[general]")

	out, err = Render(cfg, "yaml")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "currency_symbol: ₹"), out)

	_, err = Render(cfg, "xml")
	assert.Error(t, err)
}
