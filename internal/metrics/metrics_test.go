package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.BetsPlaced.Inc()
	m.Unlocks.WithLabelValues(UnlockPayPal).Inc()
	m.Unlocks.WithLabelValues(UnlockPayPal).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BetsPlaced))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Unlocks.WithLabelValues(UnlockPayPal)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Unlocks.WithLabelValues(UnlockSimulated)))
}

func TestNewIsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestServer(t *testing.T) {
	m := New()
	m.SlipsSettled.Inc()

	tests := []struct {
		name         string
		path         string
		health       HealthFunc
		expectedCode int
		expectedBody string
	}{
		{
			name:         "metrics exposed",
			path:         "/metrics",
			health:       func(context.Context) error { return nil },
			expectedCode: http.StatusOK,
			expectedBody: "tipsters_slips_settled_total 1",
		},
		{
			name:         "healthy",
			path:         "/healthz",
			health:       func(context.Context) error { return nil },
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
		{
			name:         "unhealthy",
			path:         "/healthz",
			health:       func(context.Context) error { return errors.New("pool closed") },
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "unhealthy: pool closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer("localhost:0", m, tt.health)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			srv.Handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedCode, rr.Code)
			assert.True(t, strings.Contains(rr.Body.String(), tt.expectedBody), rr.Body.String())
		})
	}
}
