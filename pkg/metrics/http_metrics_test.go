package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics("tourney", reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/getTournament", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/api/getTournaments", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/getTournaments", "/api/getTournaments", "/api/getTournament", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("tourney", "GET", "/api/getTournaments", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("tourney", "GET", "/api/getTournament", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("tourney", "GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusCategory.WithLabelValues("tourney", "4xx", "GET", "/api/getTournament")))
}

func TestHandlerExposesGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewStoreGauges("tourney", reg)
	g.Tournaments.Set(3)
	g.Players.Set(7)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tournaments_total{service="tourney"} 3`)
	assert.Contains(t, string(body), `players_total{service="tourney"} 7`)
}

func TestStatusCategory(t *testing.T) {
	assert.Equal(t, "2xx", statusCategory(201))
	assert.Equal(t, "4xx", statusCategory(405))
	assert.Equal(t, "5xx", statusCategory(500))
	assert.Equal(t, "", statusCategory(101))
}
