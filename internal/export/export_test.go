package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/fintrack/internal/ledger"
)

func sampleLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	adds := [][4]string{
		{"01/01/2024", "Food", "100", "lunch, with \"friends\""},
		{"02/01/2024", "Travel", "50.5", "bus\nnight line"},
		{"03/01/2024", "Shopping, misc", "-3.333", ""},
	}
	for _, a := range adds {
		_, err := l.Add(a[0], a[1], a[2], a[3])
		require.NoError(t, err)
	}
	return l
}

func TestCSVRoundTrip(t *testing.T) {
	l := sampleLedger(t)
	rows, err := l.ExportRows()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(), "Date,Category,Amount,Description\n"))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)

	want := l.Records()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].AmountString(), got[i].AmountString(), "row %d", i)
	}
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b,c,d\n1,2,3,4\n"))
	require.Error(t, err)
}

func TestReadCSVRejectsBadAmount(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Date,Category,Amount,Description\n01/01/2024,Food,abc,\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ledger.ErrFormat))
}

func TestToFileRefusesEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := ToFile(path, ledger.New())
	assert.True(t, errors.Is(err, ledger.ErrEmptyLedger))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be produced")
}

func TestToFileAddsDefaultExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "report")
	written, err := ToFile(base, sampleLedger(t))
	require.NoError(t, err)
	assert.Equal(t, base+".csv", written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"lunch, with \"\"friends\"\"\"")
}

func TestToFileSQLiteAndBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	l := sampleLedger(t)
	_, err := ToFile(path, l)
	require.NoError(t, err)

	loaded, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, l.Count(), loaded.Count())
	assert.Equal(t, "147.17", loaded.Summary().Total.StringFixed(2))
}

func TestFromFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	l := sampleLedger(t)
	_, err := ToFile(path, l)
	require.NoError(t, err)

	loaded, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Count())
	assert.Equal(t, "Shopping, misc", loaded.Records()[2].Category)
}

func TestToFileOtherExtensionWritesCSV(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jan.2024", "out.txt"} {
		path, err := ToFile(filepath.Join(dir, name), sampleLedger(t))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, name), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Date,Category,Amount,Description\n"), name)

		loaded, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.Count(), name)
	}
}

func TestFromFileRejectsForeignSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := FromFile(path)
	require.Error(t, err)
}

func TestCSVRoundTripCRLFDescription(t *testing.T) {
	l := ledger.New()
	_, err := l.Add("01/01/2024", "Food", "1", "line one\r\nline two")
	require.NoError(t, err)

	path, err := ToFile(filepath.Join(t.TempDir(), "crlf.csv"), l)
	require.NoError(t, err)
	loaded, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, l.Records()[0].Description, loaded.Records()[0].Description)
	assert.Equal(t, "line one\nline two", loaded.Records()[0].Description)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "", NormalizePath("  "))
	assert.Equal(t, "a.csv", NormalizePath(" a "))
	assert.Equal(t, "a.db", NormalizePath("a.db"))
}
