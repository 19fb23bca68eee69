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

func newTestPrometheus(t *testing.T) *PrometheusMiddleware {
	t.Helper()
	// Fresh registry per test avoids duplicate registration.
	m, err := NewPrometheusMiddleware(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestPrometheusMiddleware(t *testing.T) {
	promMiddleware := newTestPrometheus(t)

	app := fiber.New()
	app.Use(promMiddleware.Handler())

	app.Post("/process-lead", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "missing field")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/process-lead", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("POST", "/process-lead", "200"))
	assert.Equal(t, float64(1), count)

	_, err = app.Test(httptest.NewRequest("GET", "/error", nil))
	require.NoError(t, err)

	countErr := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/error", "422"))
	assert.Equal(t, float64(1), countErr)

	assert.Equal(t, 2, testutil.CollectAndCount(promMiddleware.requestDuration))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.CollectAndCount(promMiddleware.requestCount))
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	promMiddleware := newTestPrometheus(t)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	app.Get("/leads/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/leads/123", nil))
	require.NoError(t, err)

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/leads/:id", "200"))
	assert.Equal(t, float64(1), count)
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
