package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"fingenius/src/api"
	"fingenius/src/api/controllers"
	"fingenius/src/config"
	"fingenius/src/repositories"
	"fingenius/src/schemas"
	"fingenius/src/services"
	"fingenius/src/utils/render"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg, err := config.LoadConfig("../../settings", "testing")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	renderer, err := render.NewRenderer(render.WithWkhtmltopdfPath(filepath.Join(t.TempDir(), "missing-wkhtmltopdf")))
	require.NoError(t, err)

	svc, err := services.NewDashboardService(repositories.NewMockDashboardRepository(), cfg.Dashboard, logger,
		services.WithMarkdownRenderer(renderer))
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	server := api.NewServer(cfg, controllers.NewController(svc, renderer), logger)
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	res, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestAliveAndHealth(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/alive")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "alive", body)

	res, body = get(t, ts, "/health")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	health := decode[schemas.HealthResponse](t, body)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "fingenius-api", health.Service)
	assert.Equal(t, "1.0.0", health.Version)
	assert.Greater(t, health.Timestamp, 0.0)
}

func TestResponseHeaders(t *testing.T) {
	ts := newTestServer(t)

	res, _ := get(t, ts, "/health")
	assert.Equal(t, "DENY", res.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "origin-when-cross-origin", res.Header.Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", res.Header.Get("Permissions-Policy"))
	assert.NotEmpty(t, res.Header.Get("X-Process-Time"))
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
}

func TestGetDashboard(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/api/v1/dashboard")
	require.Equal(t, http.StatusOK, res.StatusCode)
	view := decode[schemas.DashboardView](t, body)
	assert.Equal(t, "$1,250,000.00", view.Wealth.TotalValue)
	assert.Len(t, view.Activity.Activities, 3)

	res, body = get(t, ts, "/api/v1/dashboard/wealth")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "$75,000.00", decode[schemas.WealthView](t, body).CashBalance)
}

func TestGetHoldings(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/api/v1/dashboard/holdings")
	require.Equal(t, http.StatusOK, res.StatusCode)
	holdings := decode[[]schemas.HoldingView](t, body)
	require.Len(t, holdings, 4)

	values := make(map[string]string)
	for _, h := range holdings {
		values[h.Symbol] = h.CurrentValue
	}
	assert.Equal(t, "$15,025.00", values["AAPL"])
	assert.Equal(t, "$49,100.00", values["VTI"])
}

func TestGetHoldingsCSV(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/api/v1/dashboard/holdings.csv")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/csv", res.Header.Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "symbol")
	assert.Contains(t, body, "AAPL")
}

func TestGetActivities(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/api/v1/dashboard/activities?limit=2")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decode[[]schemas.ActivityView](t, body), 2)

	res, body = get(t, ts, "/api/v1/dashboard/activities")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decode[[]schemas.ActivityView](t, body), 3)

	res, _ = get(t, ts, "/api/v1/dashboard/activities?limit=abc")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetInsights(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/api/v1/dashboard/insights")
	require.Equal(t, http.StatusOK, res.StatusCode)
	insights := decode[schemas.InsightsView](t, body)
	assert.Len(t, insights.Insights, 4)
	assert.Contains(t, insights.SummaryHTML, "<strong>")
}

func TestRefreshDashboard(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 5; i++ {
		res, err := http.Post(ts.URL+"/api/v1/dashboard/refresh", "application/json", strings.NewReader(`{"reason":"test"}`))
		require.NoError(t, err)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()

		assert.Equal(t, http.StatusAccepted, res.StatusCode)
		refresh := decode[schemas.RefreshResponse](t, string(body))
		assert.Len(t, refresh.RefreshID, 9)
		assert.True(t, refresh.Pending)
	}

	res, err := http.Post(ts.URL+"/api/v1/dashboard/refresh", "application/json", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusAccepted, res.StatusCode)

	res, err = http.Post(ts.URL+"/api/v1/dashboard/refresh", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSubscribe(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/v1/subscribe", "application/json", strings.NewReader(`{"email":"user@example.com"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, decode[schemas.SubscribeResponse](t, string(body)).Subscribed)

	res, err = http.Post(ts.URL+"/api/v1/subscribe", "application/json", strings.NewReader(`{"email":"not-an-email"}`))
	require.NoError(t, err)
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, "invalid email address", decode[map[string]string](t, string(body))["error"])

	res, err = http.PostForm(ts.URL+"/api/v1/subscribe", url.Values{"email": {"form@example.com"}})
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestFormat(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		result string
	}{
		{"currency", "/api/v1/format/currency?value=-1234.5&currency=usd", http.StatusOK, "-$1,234.50"},
		{"currency default", "/api/v1/format/currency?value=1234.5", http.StatusOK, "$1,234.50"},
		{"unknown currency", "/api/v1/format/currency?value=1&currency=XYZ", http.StatusUnprocessableEntity, ""},
		{"not finite", "/api/v1/format/currency?value=NaN", http.StatusUnprocessableEntity, ""},
		{"not a number", "/api/v1/format/number?value=abc", http.StatusBadRequest, ""},
		{"percentage tie", "/api/v1/format/percentage?value=1.005&decimals=2", http.StatusOK, "1.01%"},
		{"percentage default decimals", "/api/v1/format/percentage?value=12.5", http.StatusOK, "12.50%"},
		{"bad decimals", "/api/v1/format/percentage?value=1&decimals=-1", http.StatusUnprocessableEntity, ""},
		{"number", "/api/v1/format/number?value=1500000", http.StatusOK, "1.5M"},
		{"change", "/api/v1/format/change?value=-3", http.StatusOK, "negative-change"},
		{"truncate", "/api/v1/format/truncate?text=hello+world&max=5", http.StatusOK, "hello..."},
		{"capitalize", "/api/v1/format/capitalize?text=pending", http.StatusOK, "Pending"},
		{"email", "/api/v1/format/email?value=a@b.co", http.StatusOK, "true"},
		{"unknown kind", "/api/v1/format/roman?value=4", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := get(t, ts, tt.path)
			require.Equal(t, tt.status, res.StatusCode, body)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.result, decode[schemas.FormatResponse](t, body).Result)
			} else {
				assert.NotEmpty(t, decode[map[string]string](t, body)["error"])
			}
		})
	}
}

func TestPages(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Contains(t, body, "Why Choose FinGenius?")

	res, body = get(t, ts, "/about")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Our Mission")

	res, body = get(t, ts, "/dashboard")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "$1,250,000.00")
	assert.Contains(t, body, "Vanguard Total Stock")

	res, body = get(t, ts, "/dashboard/allocation")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Sector Allocation")
}

func TestExportPDFWithoutBinary(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, "/dashboard/export.pdf")
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Contains(t, body, "unavailable")
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	get(t, ts, "/alive")
	res, body := get(t, ts, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "fingenius_http_requests_total")
	assert.Contains(t, body, `route="/alive"`)
}
