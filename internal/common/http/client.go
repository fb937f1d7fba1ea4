// internal/common/http/client.go
package http

import (
	"net/http"
	"strconv"
	"time"

	"jobmarket-client/internal/common/metrics"
	"jobmarket-client/internal/common/observability"
)

// Client is the instrumented transport used by the API client. Every request
// is counted and timed under its route pattern, never the concrete path.
type Client struct {
	httpClient *http.Client
	obs        *observability.Observability
}

// NewClient builds a client. A zero timeout keeps the transport default.
func NewClient(timeout time.Duration, obs *observability.Observability) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		obs: obs,
	}
}

// Do sends req and records its outcome. route is the request's pattern, e.g. "/jobs/{id}".
func (c *Client) Do(req *http.Request, route string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	status := "error"
	outcome := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			outcome = "success"
		} else {
			outcome = "rejected"
		}
	}

	metrics.APIRequestsTotal.WithLabelValues(req.Method, route, status).Inc()
	metrics.APIRequestDuration.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())
	c.obs.RecordRequest(req.Context(), route, outcome, elapsed)

	return resp, err
}
