package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/api/blog/posts", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/api/blog/posts/:post_id", func(c *fiber.Ctx) error {
		if c.Params("post_id") == "404" {
			return fiber.NewError(fiber.StatusNotFound, "missing")
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/api/contact", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, m, reg
}

func TestPrometheusMiddleware_Counts(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	requests := []struct{ method, target string }{
		{"GET", "/api/blog/posts?lang=en"},
		{"GET", "/api/blog/posts"},
		{"POST", "/api/contact"},
		{"GET", "/api/blog/posts/3"},
		{"GET", "/api/blog/posts/404"},
	}
	for _, r := range requests {
		_, err := app.Test(httptest.NewRequest(r.method, r.target, nil))
		require.NoError(t, err)
	}

	tests := []struct {
		method, path, status string
		want                 float64
	}{
		{"GET", "/api/blog/posts", "200", 2},
		{"POST", "/api/contact", "200", 1},
		// Route pattern, not the concrete id
		{"GET", "/api/blog/posts/:post_id", "200", 1},
		{"GET", "/api/blog/posts/:post_id", "404", 1},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(m.requestCount.WithLabelValues(tt.method, tt.path, tt.status))
		assert.Equal(t, tt.want, got, "%s %s %s", tt.method, tt.path, tt.status)
	}

	assert.Equal(t, 3, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_UnmatchedRoutesShareOneLabel(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	for _, target := range []string{"/wp-admin", "/random/1", "/random/2"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", UnmatchedPathLabel, "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestCount))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		assert.Empty(t, mf.GetMetric(), mf.GetName())
	}
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
