// Package api is the only place that talks HTTP to the back-office server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for each request.
type TokenSource interface {
	Token() string
}

// Response is a completed HTTP exchange. OK is true for 2xx statuses.
type Response struct {
	OK         bool
	StatusCode int
	Body       []byte
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Client sends authenticated JSON requests to <baseURL>/api<path>.
// It does not retry and sets no overall timeout; callers cancel through ctx.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	observer Observer
}

// NewClient creates a Client for the API origin baseURL.
func NewClient(baseURL string, tokens TokenSource, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens:   tokens,
		observer: observer,
	}
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends one request. A nil body sends no payload. Non-2xx responses are
// returned with OK=false and a nil error; only transport failures error.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	start := time.Now()
	resp, err := c.do(ctx, method, path, body)

	event := RequestEvent{
		Method:    method,
		Path:      path,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil && resp.OK,
	}
	if resp != nil {
		event.StatusCode = resp.StatusCode
	}
	switch {
	case err != nil:
		event.ErrorCode = errorCode(err)
	case !resp.OK:
		event.ErrorCode = "STATUS"
	}
	c.observer.OnRequest(ctx, event)

	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token())

	httpResp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	return &Response{
		OK:         httpResp.StatusCode >= 200 && httpResp.StatusCode < 300,
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
	}, nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, body)
}
