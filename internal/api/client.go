// Package api is the thin HTTP client for the remote marketplace service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	apperrors "jobmarket-client/internal/common/errors"
	apphttp "jobmarket-client/internal/common/http"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/models"
	"jobmarket-client/internal/session"

	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"

	maxErrorBody = 1 << 20
)

// Client issues authenticated requests. The bearer token is read from the
// session context on every call, so sign-in and sign-out take effect at once.
type Client struct {
	baseURL   string
	transport *apphttp.Client
	session   session.Context
	logger    logger.Logger
}

func NewClient(baseURL string, transport *apphttp.Client, sess session.Context, log logger.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
		session:   sess,
		logger:    log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// ListParams selects one server-side page.
type ListParams struct {
	Page  int
	Limit int
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// call describes one request. route is the path pattern used for metrics.
type call struct {
	method string
	route  string
	path   string
	query  url.Values
	body   interface{}
	upload *upload
}

type upload struct {
	field string
	file  models.Upload
}

func (c *Client) do(ctx context.Context, cl call, out interface{}) error {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return err
	}

	requestID := req.Header.Get(HeaderRequestID)
	log := c.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
		"method":    cl.method,
		"route":     cl.route,
	})

	resp, err := c.transport.Do(req, cl.route)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", cl.method, cl.route, ctx.Err())
		}
		log.Warn("request failed", map[string]interface{}{"error": err.Error()})
		return apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		reqErr := parseError(resp.StatusCode, raw)
		log.Info("request rejected", map[string]interface{}{
			"status": resp.StatusCode,
			"kind":   reqErr.Kind,
		})
		return reqErr
	}

	log.Debug("request succeeded", map[string]interface{}{"status": resp.StatusCode})

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkError(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewDecodeError(err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case cl.upload != nil:
		buf, ct, err := encodeMultipart(cl.upload)
		if err != nil {
			return nil, fmt.Errorf("encode %s upload: %w", cl.upload.field, err)
		}
		body, contentType = buf, ct
	case cl.body != nil:
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.session != nil {
		s, err := c.session.GetSession(ctx)
		if err != nil {
			return nil, err
		}
		if !s.IsZero() {
			req.Header.Set("Authorization", "Bearer "+s.AccessToken)
		}
	}

	return req, nil
}

func encodeMultipart(u *upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreatePart(partHeader(u.field, u.file))
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(u.file.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func partHeader(field string, f models.Upload) textproto.MIMEHeader {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.FileName)},
		"Content-Type":        {contentType},
	}
}

// errorBody covers the shapes the server is known to send.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

type fieldErrorEntry struct {
	Path    string `json:"path"`
	Field   string `json:"field"`
	Param   string `json:"param"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

func parseError(status int, raw []byte) *apperrors.RequestError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		var text string
		if json.Unmarshal(raw, &text) == nil {
			return apperrors.NewMessageError(status, text)
		}
		return apperrors.NewMessageError(status, "")
	}

	var entries []fieldErrorEntry
	if len(body.Errors) > 0 && json.Unmarshal(body.Errors, &entries) == nil {
		fields := make([]apperrors.FieldError, 0, len(entries))
		for _, e := range entries {
			fe := apperrors.FieldError{Path: firstNonEmpty(e.Path, e.Field, e.Param), Message: firstNonEmpty(e.Message, e.Msg)}
			if fe.Message == "" {
				continue
			}
			fields = append(fields, fe)
		}
		if len(fields) > 0 {
			return apperrors.NewFieldErrors(status, fields)
		}
	}

	var errorsText string
	if len(body.Errors) > 0 {
		_ = json.Unmarshal(body.Errors, &errorsText)
	}

	return apperrors.NewMessageError(status, firstNonEmpty(body.Message, body.Error, errorsText))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
