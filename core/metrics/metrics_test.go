package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"basemedia/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.ManifestProcessed("graphics", "added")
	rec.ManifestProcessed("graphics", "added")
	rec.ManifestProcessed("graphics", "rejected")
	rec.SetCounts("graphics", 3, 1)
	rec.ActiveProblems("graphics", 2, 1)
	rec.Selection("sound", false)
	rec.ScanDuration("music", 50*time.Millisecond)

	count := func(t *testing.T, name string) int {
		n, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		return n
	}

	t.Run("Counters", func(t *testing.T) {
		assert.Equal(t, 2, count(t, "basemedia_basesets_manifests_total"))
		assert.Equal(t, 1, count(t, "basemedia_basesets_selections_total"))
	})

	t.Run("Gauges", func(t *testing.T) {
		assert.Equal(t, 2, count(t, "basemedia_basesets_sets"))
		assert.Equal(t, 1, count(t, "basemedia_basesets_active_missing_files"))
	})

	t.Run("Handler", func(t *testing.T) {
		app := fiber.New()
		app.Get("/metrics", rec.Handler())

		resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `basemedia_basesets_manifests_total{kind="graphics",outcome="added"} 2`)
		assert.Contains(t, string(body), "basemedia_basesets_scan_duration_seconds_count")
	})
}
