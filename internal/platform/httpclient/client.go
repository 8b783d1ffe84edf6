// Package httpclient wraps outbound calls to the coaching backend. Every
// request carries cookies and a JSON content type; a 401 response triggers
// exactly one silent refresh followed by one retry of the original request.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fitcoach/internal/platform/id"
)

const refreshPath = "/api/auth/refresh"

// Response is the buffered view of a backend reply. Callers branch on
// status before decoding.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the buffered body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty response body")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Message extracts the server-provided message or error field, falling
// back to the given default. The backend is inconsistent about which key
// it uses, so both are checked.
func (r *Response) Message(fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

// Client issues credentialed JSON requests against a single base URL.
type Client struct {
	base string
	http *http.Client
	ids  id.Generator
}

// New builds a client around the given cookie jar. The jar is the session
// source of truth: the backend issues auth cookies and the client replays
// them on every call.
func New(baseURL string, jar http.CookieJar, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Jar: jar, Timeout: timeout},
		ids:  id.UUID{},
	}
}

// Get issues a GET request to path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// Do performs one request. body is marshaled to JSON once and the bytes
// are reused verbatim if the request is retried after a refresh. Caller
// headers are merged over the defaults.
func (c *Client) Do(ctx context.Context, method, path string, body any, headers http.Header) (*Response, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	reqID := c.ids.New()
	start := time.Now()

	resp, err := c.send(ctx, method, path, payload, headers, reqID)
	if err != nil {
		slog.Warn("request failed", "request_id", reqID, "method", method, "path", path, "error", err)
		return nil, err
	}

	refreshed := false
	if resp.StatusCode == http.StatusUnauthorized && path != refreshPath {
		refreshResp, refreshErr := c.send(ctx, http.MethodPost, refreshPath, nil, nil, reqID)
		if refreshErr == nil && refreshResp.OK() {
			refreshed = true
			retried, retryErr := c.send(ctx, method, path, payload, headers, reqID)
			if retryErr != nil {
				return nil, retryErr
			}
			resp = retried
		}
		// A failed refresh returns the original 401 untouched; the
		// caller decides whether to redirect to login.
	}

	slog.Info("request",
		"request_id", reqID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"refreshed", refreshed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, headers http.Header, reqID string) (*Response, error) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = c.base + path
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	for k, vs := range headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}
