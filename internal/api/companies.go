package api

import (
	"context"
	"net/http"
	"net/url"

	"jobmarket-client/internal/models"
)

func (c *Client) ListCompanies(ctx context.Context, p ListParams) (*models.Page[models.Company], error) {
	return listPage[models.Company](ctx, c, "/companies", "/companies", p)
}

func (c *Client) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	var out models.Company
	err := c.do(ctx, call{method: http.MethodGet, route: "/companies/{id}", path: "/companies/" + url.PathEscape(id)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPlans returns every subscription plan. The server wraps them in the list envelope.
func (c *Client) ListPlans(ctx context.Context) ([]models.Plan, error) {
	page, err := listPage[models.Plan](ctx, c, "/plans", "/plans", ListParams{})
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (c *Client) Subscribe(ctx context.Context, req models.SubscriptionRequest) (*models.Subscription, error) {
	var out models.Subscription
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/companies/subscription",
		path:   "/companies/subscription",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
