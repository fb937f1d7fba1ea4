package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"jobmarket-client/internal/models"
)

// ListJobs fetches one page of all jobs.
func (c *Client) ListJobs(ctx context.Context, p ListParams) (*models.Page[models.Job], error) {
	return listPage[models.Job](ctx, c, "/jobs", "/jobs", p)
}

// ListBestMatchedJobs fetches one page of jobs the server matched to the
// signed-in seeker's stored preference.
func (c *Client) ListBestMatchedJobs(ctx context.Context, p ListParams) (*models.Page[models.Job], error) {
	return listPage[models.Job](ctx, c, "/jobs/best-matched", "/jobs/best-matched", p)
}

func (c *Client) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var out models.Job
	err := c.do(ctx, call{method: http.MethodGet, route: "/jobs/{id}", path: "/jobs/" + url.PathEscape(id)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApplyToJob(ctx context.Context, jobID string, req models.ApplicationRequest) (*models.Application, error) {
	var out models.Application
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/jobs/{id}/apply",
		path:   "/jobs/" + url.PathEscape(jobID) + "/apply",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListApplications(ctx context.Context, p ListParams) (*models.Page[models.Application], error) {
	return listPage[models.Application](ctx, c, "/applications", "/applications", p)
}

// rawPage holds the page envelope with its items still undecoded.
type rawPage struct {
	Data       []json.RawMessage `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// listPage decodes items one by one. An item that cannot be decoded is
// skipped and logged; the rest of the page is kept.
func listPage[T any](ctx context.Context, c *Client, route, path string, p ListParams) (*models.Page[T], error) {
	var raw rawPage
	err := c.do(ctx, call{method: http.MethodGet, route: route, path: path, query: p.query()}, &raw)
	if err != nil {
		return nil, err
	}

	out := &models.Page[T]{Data: make([]T, 0, len(raw.Data)), Pagination: raw.Pagination}
	for i, item := range raw.Data {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			c.logger.Warn("skipping undecodable list item", map[string]interface{}{
				"route": route,
				"index": i,
				"error": err.Error(),
			})
			continue
		}
		out.Data = append(out.Data, v)
	}
	return out, nil
}
