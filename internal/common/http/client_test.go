package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobmarket-client/internal/common/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		route      string
		wantStatus string
	}{
		{name: "success", status: http.StatusOK, route: "/test/ok", wantStatus: "200"},
		{name: "rejected", status: http.StatusNotFound, route: "/test/missing", wantStatus: "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(0, nil)
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req, tt.route)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, tt.route, tt.wantStatus)))
		})
	}
}

func TestClient_DoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(time.Second, nil)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	_, err = client.Do(req, "/test/down")
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/test/down", "error")))
}
