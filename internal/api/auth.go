package api

import (
	"context"
	"net/http"

	"jobmarket-client/internal/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{method: http.MethodPost, route: "/auth/login", path: "/auth/login", body: creds}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{method: http.MethodPost, route: "/auth/register", path: "/auth/register", body: req}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodPost, route: "/auth/logout", path: "/auth/logout"}, nil)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	body := models.RefreshRequest{RefreshToken: refreshToken}
	err := c.do(ctx, call{method: http.MethodPost, route: "/auth/refresh", path: "/auth/refresh", body: body}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
