package api

import (
	"context"
	"net/http"
	"net/url"

	"jobmarket-client/internal/models"
)

func (c *Client) ListConversations(ctx context.Context, p ListParams) (*models.Page[models.Conversation], error) {
	return listPage[models.Conversation](ctx, c, "/conversations", "/conversations", p)
}

func (c *Client) ListMessages(ctx context.Context, conversationID string, p ListParams) (*models.Page[models.Message], error) {
	path := "/conversations/" + url.PathEscape(conversationID) + "/messages"
	return listPage[models.Message](ctx, c, "/conversations/{id}/messages", path, p)
}

func (c *Client) SendMessage(ctx context.Context, conversationID string, req models.MessageRequest) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/conversations/{id}/messages",
		path:   "/conversations/" + url.PathEscape(conversationID) + "/messages",
		body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
