package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// TypedResponse wraps a response with a decoded body of type T.
type TypedResponse[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, path string) (*TypedResponse[T], error) {
	return doTyped[T](ctx, c, Request{Method: http.MethodGet, Path: path})
}

// Post performs a POST request with the given body and decodes the response into type T.
// The body follows Request.Body encoding rules (JSON, multipart, raw).
func Post[T any](ctx context.Context, c *Client, path string, body any) (*TypedResponse[T], error) {
	return doTyped[T](ctx, c, Request{Method: http.MethodPost, Path: path, Body: body})
}

// doTyped executes a typed REST request and decodes the JSON response.
func doTyped[T any](ctx context.Context, c *Client, req Request) (*TypedResponse[T], error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var data T
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return nil, fmt.Errorf("httpclient: decode response: %w", err)
		}
	}

	return &TypedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       data,
	}, nil
}
