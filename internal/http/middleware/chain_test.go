package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestChain_PanicIsLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	promMiddleware := newTestPrometheus(t)

	app := fiber.New()
	for _, h := range Chain(zap.New(core), promMiddleware) {
		app.Use(h)
	}
	app.Post("/process-lead", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/process-lead", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.EqualValues(t, fiber.StatusInternalServerError, entries[0].ContextMap()["status"])

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("POST", "/process-lead", "500"))
	assert.Equal(t, float64(1), count)
}
