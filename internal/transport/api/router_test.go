package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/groph-receipts/internal/metrics"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	router := newTestRouter(testRouterArgs{})

	res := testutils.MakeRequest(testutils.RequestArgs{Router: router, Method: http.MethodGet, URL: HealthRoute})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, testutils.ReadBody(res))
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	router := newTestRouter(testRouterArgs{metrics: m})

	res := testutils.MakeRequest(testutils.RequestArgs{Router: router, Method: http.MethodGet, URL: HealthRoute})
	require.NoError(t, res.Body.Close())

	res = testutils.MakeRequest(testutils.RequestArgs{Router: router, Method: http.MethodGet, URL: MetricsRoute})
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := testutils.ReadBody(res)
	assert.Contains(t, body, `receipts_http_requests_total{method="GET",route="/",status="200"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(testRouterArgs{})

	res := testutils.MakeRequest(testutils.RequestArgs{Router: router, Method: http.MethodGet, URL: "/nope"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	require.NoError(t, res.Body.Close())
}
