package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tenement/internal/schema"
)

// None is the payload type of calls whose response data is ignored.
type None struct{}

// Fetch sends a request and decodes the enveloped response data into T
// after checking it against shape. Non-2xx responses become *StatusError.
func Fetch[T any](ctx context.Context, c *Client, method, path string, body any, shape schema.Shape) (T, error) {
	var zero T

	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	if !resp.OK {
		return zero, statusError(method, path, resp)
	}

	res, err := schema.Decode[T](shape, resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return res.Data, nil
}

// Send performs a request whose only interesting outcome is success.
func Send(ctx context.Context, c *Client, method, path string, body any) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if !resp.OK {
		return statusError(method, path, resp)
	}
	return nil
}

// maxErrorBody caps, in runes, the server text kept on a StatusError.
const maxErrorBody = 200

func statusError(method, path string, resp *Response) error {
	body := strings.TrimSpace(string(resp.Body))
	if r := []rune(body); len(r) > maxErrorBody {
		body = string(r[:maxErrorBody])
	}
	return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: body}
}
