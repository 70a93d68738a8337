package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/city-distance/internal/config"
	"github.com/couchcryptid/city-distance/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cityFixtures = map[string][2]string{
	"Vilnius, Lithuania": {"54.6872", "25.2797"},
	"Kaunas, Lithuania":  {"54.8985", "23.9036"},
}

// geocodeServer answers known cities with one result and everything else with
// an empty array, counting requests.
func geocodeServer(t *testing.T, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		w.Header().Set("Content-Type", "application/json")
		if coords, ok := cityFixtures[r.URL.Query().Get("q")]; ok {
			fmt.Fprintf(w, `[{"lat":%q,"lon":%q}]`, coords[0], coords[1])
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
}

func testConfig(baseURL, exportFile string, cities ...string) *config.Config {
	return &config.Config{
		Cities:         cities,
		UserAgent:      "citydist-test",
		NominatimURL:   baseURL,
		RequestTimeout: 5 * time.Second,
		RateLimitDelay: 0,
		ExportFile:     exportFile,
		ExportFormat:   "csv",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_SkipsMatrixWhenFewerThanTwoResolve(t *testing.T) {
	var requests int
	srv := geocodeServer(t, &requests)
	defer srv.Close()

	exportFile := filepath.Join(t.TempDir(), "matrix.csv")
	cfg := testConfig(srv.URL, exportFile, "Vilnius", "Atlantis", "Neverland")

	err := run(context.Background(), cfg, testLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	assert.Equal(t, 3, requests, "each place should be looked up exactly once")

	_, statErr := os.Stat(exportFile)
	assert.True(t, os.IsNotExist(statErr), "no matrix should be exported with fewer than 2 resolved places")
}

func TestRun_BuildsAndExportsMatrix(t *testing.T) {
	var requests int
	srv := geocodeServer(t, &requests)
	defer srv.Close()

	exportFile := filepath.Join(t.TempDir(), "matrix.csv")
	cfg := testConfig(srv.URL, exportFile, "vilnius", "KAUNAS")

	err := run(context.Background(), cfg, testLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	// The validation pass resolves each city once; the matrix build and the
	// closing miles printout are served from the cache.
	assert.Equal(t, 2, requests)

	f, err := os.Open(exportFile)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"", "Vilnius", "Kaunas"}, records[0])
	assert.Equal(t, "0.00", records[1][1])
	assert.Equal(t, "0.00", records[2][2])
	assert.Equal(t, records[1][2], records[2][1], "exported cross distances must be symmetric")
}
