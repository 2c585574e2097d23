package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestBeginRecordsRequest(t *testing.T) {
	m := New()

	done := m.Begin("GET", "products")
	assert.Contains(t, scrape(t, m), "admin_console_api_inflight_requests 1")
	done(200)
	m.Begin("GET", "products")(0)

	out := scrape(t, m)
	assert.Contains(t, out, "admin_console_api_inflight_requests 0")
	assert.Contains(t, out, `admin_console_api_requests_total{method="GET",resource="products",status="200"} 1`)
	assert.Contains(t, out, `admin_console_api_requests_total{method="GET",resource="products",status="error"} 1`)
	assert.Contains(t, out, `admin_console_api_request_duration_seconds_count{method="GET",resource="products"} 2`)
}

func TestFailure(t *testing.T) {
	m := New()
	m.Failure("orders", "UNAUTHORIZED")
	m.Failure("orders", "UNAUTHORIZED")

	assert.Contains(t, scrape(t, m), `admin_console_api_failures_total{code="UNAUTHORIZED",resource="orders"} 2`)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Begin("GET", "products")(200)
		m.Failure("products", "INTERNAL_ERROR")
	})
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Begin("DELETE", "banners")(204)

	assert.Contains(t, scrape(t, a), `status="204"`)
	assert.NotContains(t, scrape(t, b), `status="204"`)
}
