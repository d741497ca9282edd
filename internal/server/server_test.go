package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickmark-dev/tickmark/internal/report"
	"github.com/tickmark-dev/tickmark/internal/runlog"
	"github.com/tickmark-dev/tickmark/internal/verify"
)

const verifyBody = `{
  "companyName": "Example Berhad",
  "currency": "RM",
  "castingRelationships": [
    {
      "section": "Revenue",
      "totalLabel": "Total revenue",
      "totalAmount": 800,
      "componentLabels": ["Product", "Services"],
      "componentAmounts": [500, 290]
    }
  ]
}`

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(verify.New(), logger, opts...)
}

func TestHandleVerify_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(newTestService(t).Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/verify", "application/json", strings.NewReader(verifyBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var rep report.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Equal(t, "Example Berhad", rep.CompanyName)
	assert.Equal(t, 1, rep.KPI.TotalTests)
	assert.Equal(t, 1, rep.KPI.TestsFailed)
	require.Len(t, rep.Exceptions, 1)
	assert.Equal(t, "RM10.00", rep.Exceptions[0].Difference)
}

func TestHandleVerify_BadJSON(t *testing.T) {
	srv := httptest.NewServer(newTestService(t).Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/verify", "application/json", strings.NewReader(`{"companyName":`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleVerify_DefaultSymbolApplied(t *testing.T) {
	srv := httptest.NewServer(newTestService(t, WithDefaultSymbol("$")).Router())
	defer srv.Close()

	body := `{"castingRelationships":[{"section":"S","totalLabel":"T","totalAmount":10,"componentLabels":[],"componentAmounts":[]}]}`
	resp, err := http.Post(srv.URL+"/api/verify", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var rep report.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	require.Len(t, rep.Exceptions, 1)
	assert.Contains(t, rep.Exceptions[0].Description, "$10.00")
}

func TestHandleVerify_RunLogAppended(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "runs.csv")
	srv := httptest.NewServer(newTestService(t, WithRunLog(logPath)).Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/verify", "application/json", strings.NewReader(verifyBody))
	require.NoError(t, err)
	resp.Body.Close()

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()
	entries, err := runlog.Read(f)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Example Berhad", entries[0].Company)
	assert.Equal(t, 1, entries[0].Failed)
}

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(newTestService(t).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestID_HonorsCaller(t *testing.T) {
	srv := httptest.NewServer(newTestService(t).Router())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "corr-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "corr-123", resp.Header.Get("X-Request-ID"))
}
