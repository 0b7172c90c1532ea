package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWritesToFile(t *testing.T) {
	defer Set(zap.NewNop())

	path := filepath.Join(t.TempDir(), "logs", "fintrack.log")
	require.NoError(t, Init(path, false))

	Info("expense added", zap.String("category", "Food"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "expense added")
	assert.Contains(t, string(data), "\"category\":\"Food\"")
}

func TestInitEmptyPathIsNoop(t *testing.T) {
	require.NoError(t, Init("", true))
	Info("dropped")
}
