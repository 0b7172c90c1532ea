package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRuntimeFallsBackOnBrokenConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("FINTRACK_CURRENCY", "")
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "fintrack"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "fintrack", "config.toml"), []byte("[general\nbroken = "), 0o600))

	saved := flagEnvFile
	flagEnvFile = ""
	defer func() { flagEnvFile = saved }()

	var errOut bytes.Buffer
	configCmd.SetErr(&errOut)
	defer configCmd.SetErr(nil)

	require.NoError(t, initRuntime(configCmd, nil))
	assert.Contains(t, errOut.String(), "using defaults")

	cfg := loadConfig()
	assert.Equal(t, "₹", cfg.General.CurrencySymbol)
	assert.Equal(t, "expenses.csv", cfg.General.ExportPath)
}

func TestInitRuntimeLoadsEnvFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	// godotenv never overrides a variable that is already set, even to ""
	t.Setenv("FINTRACK_CURRENCY", "")
	require.NoError(t, os.Unsetenv("FINTRACK_CURRENCY"))
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINTRACK_CURRENCY=€\n"), 0o600))

	saved := flagEnvFile
	flagEnvFile = envFile
	defer func() { flagEnvFile = saved }()

	require.NoError(t, initRuntime(configCmd, nil))
	assert.Equal(t, "€", loadConfig().General.CurrencySymbol)
}
