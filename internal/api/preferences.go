package api

import (
	"context"
	"net/http"

	"jobmarket-client/internal/models"
)

func (c *Client) GetPreferences(ctx context.Context) (*models.JobPreference, error) {
	var out models.JobPreference
	if err := c.do(ctx, call{method: http.MethodGet, route: "/job-preferences", path: "/job-preferences"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePreferences(ctx context.Context, pref models.JobPreference) (*models.JobPreference, error) {
	var out models.JobPreference
	err := c.do(ctx, call{method: http.MethodPut, route: "/job-preferences", path: "/job-preferences", body: pref}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
