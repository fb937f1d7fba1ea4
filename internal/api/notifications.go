package api

import (
	"context"
	"net/http"
	"net/url"

	"jobmarket-client/internal/models"
)

func (c *Client) ListNotifications(ctx context.Context, p ListParams) (*models.Page[models.Notification], error) {
	return listPage[models.Notification](ctx, c, "/notifications", "/notifications", p)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error) {
	var out models.Notification
	err := c.do(ctx, call{
		method: http.MethodPatch,
		route:  "/notifications/{id}/read",
		path:   "/notifications/" + url.PathEscape(id) + "/read",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
