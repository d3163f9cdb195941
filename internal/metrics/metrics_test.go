package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"poker-stack-go/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	first := metrics.NewMetrics()
	second := metrics.NewMetrics()

	first.RecordTransactionRecorded("win")

	assert.Equal(t, 1.0, testutil.ToFloat64(first.TransactionsRecorded.WithLabelValues("win")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.TransactionsRecorded.WithLabelValues("win")))
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics()
	app := fiber.New()
	app.Use(metrics.HTTPMetricsMiddleware(m, zap.NewNop()))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "400")))

	m.RecordPlayerCreated()
	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "pokerstack_players_created_total 1"))
}
