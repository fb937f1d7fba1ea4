package api

import (
	"context"
	"net/http"

	"jobmarket-client/internal/models"
)

func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, call{method: http.MethodGet, route: "/profile", path: "/profile"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, p models.Profile) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, call{method: http.MethodPut, route: "/profile", path: "/profile", body: p}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadResume sends the file as the "resume" multipart part.
func (c *Client) UploadResume(ctx context.Context, f models.Upload) (*models.UploadResult, error) {
	return c.uploadFile(ctx, "/profile/resume", "resume", f)
}

// UploadAvatar sends the file as the "avatar" multipart part.
func (c *Client) UploadAvatar(ctx context.Context, f models.Upload) (*models.UploadResult, error) {
	return c.uploadFile(ctx, "/profile/avatar", "avatar", f)
}

func (c *Client) uploadFile(ctx context.Context, path, field string, f models.Upload) (*models.UploadResult, error) {
	var out models.UploadResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  path,
		path:   path,
		upload: &upload{field: field, file: f},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
