package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickmark-dev/tickmark/internal/model"
)

var testTime = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:   testTime,
		Company:     "Example Berhad",
		TotalChecks: 10,
		Passed:      8,
		Failed:      2,
		Exceptions:  2,
		High:        1,
		Medium:      0,
		Low:         1,
	}
}

func readAll(t *testing.T, path string) []Entry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	entries, err := Read(f)
	require.NoError(t, err)
	return entries
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runs.csv")
	require.NoError(t, Append(path, testEntry()))

	entries := readAll(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "Example Berhad", entries[0].Company)
	assert.Equal(t, 10, entries[0].TotalChecks)
}

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	require.NoError(t, Append(path, testEntry()))

	e2 := testEntry()
	e2.Company = "Second Sdn Bhd"
	require.NoError(t, Append(path, e2))

	entries := readAll(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "Example Berhad", entries[0].Company)
	assert.Equal(t, "Second Sdn Bhd", entries[1].Company)
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	e := testEntry()
	row := MarshalEntry(e)
	assert.Len(t, row, 9)
	assert.Equal(t, "2026-03-15T10:30:00Z", row[0])

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, e.Company, got.Company)
	assert.Equal(t, e.Exceptions, got.Exceptions)
	assert.Equal(t, e.High, got.High)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 9 fields")
}

func TestFromResult(t *testing.T) {
	res := model.VerificationResult{
		CompanyName: "Example Berhad",
		KPI: model.KPI{
			TotalChecks:     10,
			Passed:          8,
			Failed:          2,
			ExceptionsFound: 2,
			HighSeverity:    1,
			LowSeverity:     1,
		},
	}
	e := FromResult(testTime, res)
	assert.Equal(t, testEntry(), e)
}
