package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRemote(t *testing.T) {
	m := New()
	m.ObserveRemote("orders", "create", 200, 10*time.Millisecond)
	m.ObserveRemote("orders", "create", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.remoteCalls.WithLabelValues("orders", "create", "200")))
}

func TestHandlerExposesCommands(t *testing.T) {
	m := New()
	m.ObserveCommand("checkout", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `maison_commands_total{command="checkout",outcome="ok"} 1`))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRemote("auth", "login", 0, time.Second)
		m.ObserveCommand("login", "error")
	})
}
